package store

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// NotesStore persists the notepad texts.
type NotesStore struct {
	backend Backend
}

func NewNotesStore(backend Backend) *NotesStore {
	return &NotesStore{backend: backend}
}

// Load returns the stored notes, or NotepadCount empty ones if none were saved.
func (s *NotesStore) Load(ctx context.Context) (domain.Notes, error) {
	data, err := s.backend.Read(ctx, DocNotes)
	if errors.Is(err, ErrNotFound) {
		return domain.DefaultNotes(), nil
	}
	if err != nil {
		return domain.Notes{}, errs.NewStorageError("read notes", err)
	}

	notes, err := domain.ParseNotes(data)
	if err != nil {
		return domain.Notes{}, errs.NewStorageError("decode notes", err)
	}
	return notes, nil
}

func (s *NotesStore) Save(ctx context.Context, notes domain.Notes) error {
	if notes.Notes == nil {
		notes.Notes = []string{}
	}
	data, err := encodeJSON(notes, defaultIndent)
	if err != nil {
		return errs.NewStorageError("encode notes", err)
	}
	if err := s.backend.Write(ctx, DocNotes, data); err != nil {
		return errs.NewStorageError("write notes", err)
	}
	return nil
}
