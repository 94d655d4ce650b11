package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when a document was never written.
var ErrNotFound = errors.New("document not found")

// Document names, one per persisted resource.
const (
	DocBookmarks = "bookmarks"
	DocNotes     = "notes"
	DocTodos     = "todos"
)

// Backend stores whole documents as raw JSON bytes under a name.
// Writes replace the previous document; a failed write must leave it intact.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	// Ping reports whether the backend can serve requests.
	Ping(ctx context.Context) error
	Close() error
}

// Indentation of the stored documents.
const (
	bookmarksIndent = "    "
	defaultIndent   = "  "
)
