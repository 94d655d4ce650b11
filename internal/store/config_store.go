package store

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
	"github.com/MrSnakeDoc/startpage/internal/logger"
)

// ConfigStore loads and saves the bookmarks document.
type ConfigStore struct {
	backend  Backend
	template Template
	log      logger.Logger
}

func NewConfigStore(backend Backend, template Template, log logger.Logger) *ConfigStore {
	return &ConfigStore{
		backend:  backend,
		template: template,
		log:      log,
	}
}

// Load returns the stored document. On first access it is seeded from the
// template, and the seed is written back so later loads read the same thing.
func (s *ConfigStore) Load(ctx context.Context) (*domain.ConfigDocument, error) {
	data, err := s.backend.Read(ctx, DocBookmarks)
	if errors.Is(err, ErrNotFound) {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, errs.NewStorageError("read bookmarks", err)
	}

	doc, err := domain.ParseDocument(data)
	if err != nil {
		return nil, errs.NewStorageError("decode bookmarks", err)
	}
	return doc, nil
}

// Save normalizes doc and replaces the stored document with it. The
// normalized document is returned.
func (s *ConfigStore) Save(ctx context.Context, doc *domain.ConfigDocument) (*domain.ConfigDocument, error) {
	normalized := domain.Normalize(doc)

	data, err := domain.EncodeDocument(normalized, bookmarksIndent)
	if err != nil {
		return nil, errs.NewStorageError("encode bookmarks", err)
	}
	if err := s.backend.Write(ctx, DocBookmarks, data); err != nil {
		return nil, errs.NewStorageError("write bookmarks", err)
	}

	s.log.Info("bookmarks saved",
		logger.Int("categories", normalized.Categories.Len()),
		logger.String("kind", normalized.Kind.String()))
	return normalized, nil
}

func (s *ConfigStore) seed(ctx context.Context) (*domain.ConfigDocument, error) {
	doc, err := s.template.Load(ctx)
	if err != nil {
		return nil, errs.NewStorageError("load default bookmarks", err)
	}

	data, err := domain.EncodeDocument(doc, bookmarksIndent)
	if err == nil {
		err = s.backend.Write(ctx, DocBookmarks, data)
	}
	if err != nil {
		s.log.Warn("failed to persist default bookmarks", logger.Error(err))
	} else {
		s.log.Info("bookmarks seeded from template",
			logger.Int("categories", doc.Categories.Len()))
	}

	return doc, nil
}
