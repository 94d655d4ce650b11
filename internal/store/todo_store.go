package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// TodoStore persists the date-keyed to-do document.
type TodoStore struct {
	backend Backend
}

func NewTodoStore(backend Backend) *TodoStore {
	return &TodoStore{backend: backend}
}

type todosFile struct {
	Todos domain.TodoDocument `json:"todos"`
}

// Load returns the stored document, empty if none was saved.
func (s *TodoStore) Load(ctx context.Context) (domain.TodoDocument, error) {
	data, err := s.backend.Read(ctx, DocTodos)
	if errors.Is(err, ErrNotFound) {
		return domain.TodoDocument{}, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("read todos", err)
	}

	todos, err := domain.ParseTodos(data)
	if err != nil {
		return nil, errs.NewStorageError("decode todos", err)
	}
	return todos, nil
}

// Save prunes empty days and replaces the stored document.
func (s *TodoStore) Save(ctx context.Context, todos domain.TodoDocument) error {
	if todos == nil {
		todos = domain.TodoDocument{}
	}
	todos.Prune()

	data, err := encodeJSON(todosFile{Todos: todos}, defaultIndent)
	if err != nil {
		return errs.NewStorageError("encode todos", err)
	}
	if err := s.backend.Write(ctx, DocTodos, data); err != nil {
		return errs.NewStorageError("write todos", err)
	}
	return nil
}

// OpenDay returns the editable rows of date.
func (s *TodoStore) OpenDay(ctx context.Context, date string) ([domain.MaxTodoRows]domain.TodoRow, error) {
	todos, err := s.Load(ctx)
	if err != nil {
		return [domain.MaxTodoRows]domain.TodoRow{}, err
	}
	return todos.OpenDay(date), nil
}

// SaveDay replaces the rows of date and writes the whole document back.
func (s *TodoStore) SaveDay(ctx context.Context, date string, rows []domain.TodoRow) error {
	todos, err := s.Load(ctx)
	if err != nil {
		return err
	}
	todos.SaveDay(date, rows)
	return s.Save(ctx, todos)
}

func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
