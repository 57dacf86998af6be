package kv

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
)

const planKeyPrefix = "plan:"

type planRepository struct {
	store Store
}

// NewPlanRepository stores each owner's plan under its own key.
func NewPlanRepository(store Store) repository.PlanRepository {
	return &planRepository{store: store}
}

func planKey(ownerID uuid.UUID) string {
	return planKeyPrefix + ownerID.String()
}

func (r *planRepository) Save(ctx context.Context, plan *domain.Plan) error {
	if plan.OwnerUserID == uuid.Nil {
		return repository.Wrap("save plan", errors.New("plan requires an owner"))
	}
	return save(ctx, r.store, planKey(plan.OwnerUserID), "plan", plan)
}

func (r *planRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Plan, error) {
	plan, err := load[domain.Plan](ctx, r.store, planKey(ownerID), "plan")
	if err != nil {
		return nil, err
	}
	// A blob under another owner's key is never handed out.
	if plan.OwnerUserID != ownerID {
		return nil, repository.ErrNotFound
	}
	return plan, nil
}

func (r *planRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return remove(ctx, r.store, planKey(ownerID), "plan")
}
