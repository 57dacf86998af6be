package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
	"pathly/run-planner/internal/training"
)

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// PlanService is the Plan Builder: it expands a profile into a plan and owns
// the plan's persistence.
type PlanService interface {
	BuildPlan(profile domain.UserProfile, ref time.Time) domain.Plan
	GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.Plan, error)
	GetPlan(ctx context.Context, ownerID uuid.UUID) (*domain.Plan, error)
	SetWorkoutCompleted(ctx context.Context, ownerID, workoutID uuid.UUID, completed bool) (*domain.Workout, error)
}

type planService struct {
	rt    Runtime
	plans repository.PlanRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(rt Runtime, plans repository.PlanRepository) PlanService {
	return &planService{rt: rt, plans: plans}
}

// BuildPlan lays out domain.PlanWeeks weeks of profile.Frequency workouts.
// Workout (week, day) falls on ref + (week-1)*7 + day calendar days, so the
// workouts of a week sit on consecutive days starting the day after the
// week begins.
func (s *planService) BuildPlan(profile domain.UserProfile, ref time.Time) domain.Plan {
	days := profile.Frequency.DaysPerWeek()
	weeks := make([]domain.Week, 0, domain.PlanWeeks)
	for week := 1; week <= domain.PlanWeeks; week++ {
		workouts := make([]domain.Workout, 0, days)
		for day := 1; day <= days; day++ {
			date := ref.AddDate(0, 0, (week-1)*7+day)
			workouts = append(workouts,
				training.SynthesizeWorkout(s.rt.NewID(), profile.Experience, profile.Goal, week, date))
		}
		weeks = append(weeks, domain.Week{
			ID:         s.rt.NewID(),
			WeekNumber: week,
			Workouts:   workouts,
		})
	}
	return domain.Plan{
		ID:          s.rt.NewID(),
		OwnerUserID: profile.ID,
		Weeks:       weeks,
		CreatedAt:   s.rt.timestamp(),
	}
}

// GeneratePlan builds a plan starting from now and stores it, replacing the
// owner's previous plan. Storage errors are returned unchanged.
func (s *planService) GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.Plan, error) {
	ctx, span := tracer.Start(ctx, "plan.generate")
	defer span.End()

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	plan := s.BuildPlan(*profile, s.rt.timestamp())
	span.SetAttributes(
		attribute.String("plan.id", plan.ID.String()),
		attribute.String("plan.owner", plan.OwnerUserID.String()),
	)

	if err := s.plans.Save(ctx, &plan); err != nil {
		span.RecordError(err)
		s.rt.Log.Error("failed to save plan", "owner_id", profile.ID, "plan_id", plan.ID, "error", err)
		return nil, err
	}
	s.rt.Log.Info("plan generated", "owner_id", profile.ID, "plan_id", plan.ID,
		"weeks", len(plan.Weeks), "workouts", len(plan.Workouts()))
	return &plan, nil
}

func (s *planService) GetPlan(ctx context.Context, ownerID uuid.UUID) (*domain.Plan, error) {
	plan, err := s.plans.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// SetWorkoutCompleted flips the completion flag of one workout and stores
// the whole plan again.
func (s *planService) SetWorkoutCompleted(ctx context.Context, ownerID, workoutID uuid.UUID, completed bool) (*domain.Workout, error) {
	current, err := s.GetPlan(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	plan := current.Clone()
	workout, _, ok := plan.FindWorkout(workoutID)
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	if workout.Completed == completed {
		return workout, nil
	}
	workout.Completed = completed

	if err = s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}
	s.rt.Log.Debug("workout completion updated", "owner_id", ownerID, "workout_id", workoutID, "completed", completed)
	return workout, nil
}
