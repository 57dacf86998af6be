package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
)

var (
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileService is the Profile Intake boundary plus the onboarding state
// derived from the profile store.
type ProfileService interface {
	BuildProfile(goal domain.Goal, frequency domain.Frequency, experience domain.Experience) (domain.UserProfile, error)
	CreateProfile(ctx context.Context, goal domain.Goal, frequency domain.Frequency, experience domain.Experience) (*domain.UserProfile, error)
	GetCurrentProfile(ctx context.Context) (*domain.UserProfile, error)
	NeedsOnboarding(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

type profileService struct {
	rt       Runtime
	profiles repository.ProfileRepository
	plans    repository.PlanRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(rt Runtime, profiles repository.ProfileRepository, plans repository.PlanRepository) ProfileService {
	return &profileService{rt: rt, profiles: profiles, plans: plans}
}

// BuildProfile validates the three answers and stamps a fresh id and time.
// It touches no storage.
func (s *profileService) BuildProfile(goal domain.Goal, frequency domain.Frequency, experience domain.Experience) (domain.UserProfile, error) {
	profile := domain.UserProfile{
		Goal:       goal,
		Frequency:  frequency,
		Experience: experience,
	}
	if err := profile.Validate(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	profile.ID = s.rt.NewID()
	profile.CreatedAt = s.rt.timestamp()
	return profile, nil
}

// CreateProfile builds a profile and stores it as the current one, replacing
// any previous profile.
func (s *profileService) CreateProfile(ctx context.Context, goal domain.Goal, frequency domain.Frequency, experience domain.Experience) (*domain.UserProfile, error) {
	ctx, span := tracer.Start(ctx, "profile.create")
	defer span.End()

	profile, err := s.BuildProfile(goal, frequency, experience)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("profile.id", profile.ID.String()))

	if err = s.profiles.Save(ctx, &profile); err != nil {
		s.rt.Log.Error("failed to save profile", "profile_id", profile.ID, "error", err)
		return nil, err
	}
	s.rt.Log.Info("profile created", "profile_id", profile.ID, "goal", profile.Goal,
		"frequency", profile.Frequency.DaysPerWeek(), "experience", profile.Experience)
	return &profile, nil
}

func (s *profileService) GetCurrentProfile(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// NeedsOnboarding reports whether no profile has been stored yet.
func (s *profileService) NeedsOnboarding(ctx context.Context) (bool, error) {
	_, err := s.GetCurrentProfile(ctx)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrProfileNotFound):
		return true, nil
	default:
		return false, err
	}
}

// Reset removes the current profile and the plan it owns, returning the app
// to the onboarding state.
func (s *profileService) Reset(ctx context.Context) error {
	profile, err := s.GetCurrentProfile(ctx)
	if errors.Is(err, ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = s.plans.DeleteByOwner(ctx, profile.ID); err != nil {
		return err
	}
	if err = s.profiles.Delete(ctx); err != nil {
		return err
	}
	s.rt.Log.Info("profile reset", "profile_id", profile.ID)
	return nil
}
