package service

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/repository"
)

var testNow = time.Date(2025, 3, 10, 8, 15, 30, 123456789, time.UTC)

// testRuntime returns a Runtime with a fixed clock and sequential ids.
func testRuntime() Runtime {
	var n uint64
	return Runtime{
		Now: func() time.Time { return testNow },
		NewID: func() uuid.UUID {
			n++
			var id uuid.UUID
			binary.BigEndian.PutUint64(id[8:], n)
			return id
		},
		Log: logger.NewNop(),
	}
}

// fakePlanRepository records saves and can be told to fail.
type fakePlanRepository struct {
	saved   map[uuid.UUID]*domain.Plan
	saves   int
	saveErr error
	getErr  error
}

func newFakePlanRepository() *fakePlanRepository {
	return &fakePlanRepository{saved: make(map[uuid.UUID]*domain.Plan)}
}

func (r *fakePlanRepository) Save(_ context.Context, plan *domain.Plan) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[plan.OwnerUserID] = plan.Clone()
	return nil
}

func (r *fakePlanRepository) GetByOwner(_ context.Context, ownerID uuid.UUID) (*domain.Plan, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	plan, ok := r.saved[ownerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return plan.Clone(), nil
}

func (r *fakePlanRepository) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	delete(r.saved, ownerID)
	return nil
}

type fakeFileStorage struct {
	keys []string
	err  error
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return "", f.err
	}
	return "https://media.example.com/" + key + "?sig=1", nil
}

var errDiskFull = &repository.StorageError{Op: "write plan", Err: errors.New("disk full")}
