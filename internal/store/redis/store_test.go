package redis

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/startpage/internal/store"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewStore(client)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStoreReadMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Read(context.Background(), store.DocNotes)

	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestStoreWriteThenRead(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, store.DocNotes, []byte(`{"notes":["a"]}`)))
	require.NoError(t, s.Write(ctx, store.DocNotes, []byte(`{"notes":["b"]}`)))

	data, err := s.Read(ctx, store.DocNotes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":["b"]}`, string(data))

	raw, err := mr.Get("startpage:doc:notes")
	require.NoError(t, err)
	assert.Equal(t, `{"notes":["b"]}`, raw)
	assert.Zero(t, mr.TTL("startpage:doc:notes"), "documents never expire")
}

func TestStoreNames(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, store.DocBookmarks, []byte(`{}`)))
	require.NoError(t, s.Write(ctx, store.DocTodos, []byte(`{}`)))
	require.NoError(t, mr.Set("other:key", "x"))

	names, err := s.Names(ctx)
	require.NoError(t, err)
	sort.Strings(names)

	assert.Equal(t, []string{store.DocBookmarks, store.DocTodos}, names)
}

func TestStorePing(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	mr.Close()
	assert.Error(t, s.Ping(ctx))
}

func TestDocumentName(t *testing.T) {
	name, err := DocumentName(DocumentKey("todos"))
	require.NoError(t, err)
	assert.Equal(t, "todos", name)

	_, err = DocumentName("startpage:doc:")
	assert.Error(t, err)
	_, err = DocumentName("jump:service:x")
	assert.Error(t, err)
}
