package service

import (
	"context"

	"pathly/run-planner/internal/domain"
)

// OnboardingService completes onboarding: it stores the new profile and
// then generates its first plan.
type OnboardingService interface {
	Complete(ctx context.Context, goal domain.Goal, frequency domain.Frequency, experience domain.Experience) (*domain.UserProfile, *domain.Plan, error)
}

type onboardingService struct {
	profiles ProfileService
	plans    PlanService
}

func NewOnboardingService(profiles ProfileService, plans PlanService) OnboardingService {
	return &onboardingService{profiles: profiles, plans: plans}
}

// Complete returns the stored profile even when plan generation fails, so the
// caller can retry generation without repeating intake.
func (s *onboardingService) Complete(ctx context.Context, goal domain.Goal, frequency domain.Frequency, experience domain.Experience) (*domain.UserProfile, *domain.Plan, error) {
	profile, err := s.profiles.CreateProfile(ctx, goal, frequency, experience)
	if err != nil {
		return nil, nil, err
	}
	plan, err := s.plans.GeneratePlan(ctx, profile)
	if err != nil {
		return profile, nil, err
	}
	return profile, plan, nil
}
