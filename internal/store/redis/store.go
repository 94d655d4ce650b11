package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/startpage/internal/store"
)

// Store keeps each document as one Redis string
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis document store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Read returns the raw document, or store.ErrNotFound if the key is absent
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, DocumentKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the document. SET is atomic, so readers see either the old
// or the new bytes.
func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, DocumentKey(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document %s: %w", name, err)
	}
	return nil
}

// Names lists the documents present in Redis
func (s *Store) Names(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, KeyPrefixDocument+"*", 0).Iterator()
	for iter.Next(ctx) {
		name, err := DocumentName(iter.Val())
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
