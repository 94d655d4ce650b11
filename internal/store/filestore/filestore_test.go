package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/startpage/internal/store"
)

func TestReadMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Read(context.Background(), store.DocBookmarks)

	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestWriteReplacesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, store.DocNotes, []byte("first")))
	require.NoError(t, s.Write(ctx, store.DocNotes, []byte("second")))

	data, err := s.Read(ctx, store.DocNotes)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	onDisk, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(onDisk))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestFailedWriteKeepsNothingBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	// a directory where the document file should be makes the rename fail
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "todos.json", "child"), 0o755))

	err = s.Write(context.Background(), store.DocTodos, []byte(`{"todos":{}}`))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todos.json", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestInvalidNames(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../etc", "a/b", ".hidden"} {
		assert.Error(t, s.Write(context.Background(), name, nil), name)
		_, err := s.Read(context.Background(), name)
		assert.Error(t, err, name)
	}
}

func TestPing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, s.Ping(context.Background()))
}
