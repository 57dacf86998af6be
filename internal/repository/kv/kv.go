// Package kv persists plans and profiles as encoded blobs in a key-value
// store. Each write replaces one key, which is atomic in every backend.
package kv

import (
	"context"
	"encoding/json"
	"errors"

	"pathly/run-planner/internal/repository"
)

// ErrKeyNotFound is returned by a Store when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal blob store. Implementations must make Put atomic for a
// single key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

func load[T any](ctx context.Context, store Store, key string, what string) (*T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("read "+what, err)
	}
	var v T
	if err = json.Unmarshal(data, &v); err != nil {
		return nil, repository.Wrap("decode "+what, err)
	}
	return &v, nil
}

func save(ctx context.Context, store Store, key string, what string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return repository.Wrap("encode "+what, err)
	}
	return repository.Wrap("write "+what, store.Put(ctx, key, data))
}

func remove(ctx context.Context, store Store, key string, what string) error {
	if err := store.Delete(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return repository.Wrap("delete "+what, err)
	}
	return nil
}
