package kv

import (
	"context"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
)

const currentProfileKey = "profile:current"

type profileRepository struct {
	store Store
}

// NewProfileRepository stores the single current profile under a fixed key.
func NewProfileRepository(store Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	return save(ctx, r.store, currentProfileKey, "profile", profile)
}

func (r *profileRepository) GetCurrent(ctx context.Context) (*domain.UserProfile, error) {
	return load[domain.UserProfile](ctx, r.store, currentProfileKey, "profile")
}

func (r *profileRepository) Delete(ctx context.Context) error {
	return remove(ctx, r.store, currentProfileKey, "profile")
}
