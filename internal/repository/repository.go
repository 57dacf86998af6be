package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
)

// ErrNotFound marks an absent read result. It is a normal outcome, distinct
// from a StorageError raised while reading or decoding.
var ErrNotFound = errors.New("not found")

// StorageError wraps any failure of the underlying store: encoding, decoding,
// reading or writing.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Wrap returns nil for a nil err and a *StorageError otherwise.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// PlanRepository stores at most one plan per owner. Save overwrites the
// owner's previous plan atomically.
type PlanRepository interface {
	Save(ctx context.Context, plan *domain.Plan) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Plan, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// ProfileRepository stores the single current user profile.
type ProfileRepository interface {
	Save(ctx context.Context, profile *domain.UserProfile) error
	GetCurrent(ctx context.Context) (*domain.UserProfile, error)
	Delete(ctx context.Context) error
}
