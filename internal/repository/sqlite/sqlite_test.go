package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
	"pathly/run-planner/internal/repository/kv"
	"pathly/run-planner/internal/repository/kv/kvtest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "pathly.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore(t *testing.T) {
	kvtest.RunStoreTests(t, newTestStore(t))
}

func TestPlanSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pathly.db")

	store, err := New(ctx, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	owner := uuid.New()
	plan := &domain.Plan{
		ID:          uuid.New(),
		OwnerUserID: owner,
		CreatedAt:   time.Date(2025, 4, 1, 7, 0, 0, 0, time.UTC),
		Weeks:       []domain.Week{{ID: uuid.New(), WeekNumber: 1, Workouts: []domain.Workout{}}},
	}
	if err = kv.NewPlanRepository(store).Save(ctx, plan); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = store.Close()

	reopened := newTestStoreAt(t, path)
	got, err := kv.NewPlanRepository(reopened).GetByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("GetByOwner: %v", err)
	}
	if diff := cmp.Diff(plan, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if _, err = kv.NewPlanRepository(reopened).GetByOwner(ctx, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByOwner(other) error = %v, want ErrNotFound", err)
	}
}

func newTestStoreAt(t *testing.T, path string) *Store {
	t.Helper()
	store, err := New(context.Background(), path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}
