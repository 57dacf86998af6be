// Package kvtest holds behaviour checks shared by every kv.Store backend.
package kvtest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"pathly/run-planner/internal/repository/kv"
)

// RunStoreTests exercises the Store contract against a fresh, empty store.
func RunStoreTests(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrKeyNotFound", err)
	}

	if err := store.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("two")) {
		t.Errorf("Get = %q, want %q", got, "two")
	}

	if err = store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err = store.Get(ctx, "k"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrKeyNotFound", err)
	}
	if err = store.Delete(ctx, "k"); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("Delete(absent) error = %v", err)
	}
}
