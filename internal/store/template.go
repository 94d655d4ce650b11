package store

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/MrSnakeDoc/startpage/internal/domain"
)

// Template provides the document served before anything was saved.
type Template interface {
	Load(ctx context.Context) (*domain.ConfigDocument, error)
}

//go:embed defaults/bookmarks.default.json
var defaultBookmarks []byte

// EmbeddedTemplate is the default document shipped with the binary.
type EmbeddedTemplate struct{}

func (EmbeddedTemplate) Load(context.Context) (*domain.ConfigDocument, error) {
	return domain.ParseDocument(defaultBookmarks)
}

// FileTemplate reads a JSON document from disk on every seed.
type FileTemplate struct {
	Path string
}

func (t FileTemplate) Load(context.Context) (*domain.ConfigDocument, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", t.Path, err)
	}
	return domain.ParseDocument(data)
}
