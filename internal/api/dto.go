package api

import (
	"context"
	"time"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/service"
	"pathly/run-planner/internal/training"
)

// --- Request Structs ---

type OnboardingRequest struct {
	Goal       string `json:"goal" binding:"required"`
	Frequency  int    `json:"frequency" binding:"required"`
	Experience string `json:"experience" binding:"required"`
}

type UpdateWorkoutRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// --- Response Structs ---

type OptionResponse struct {
	Value       any    `json:"value"`
	DisplayName string `json:"displayName"`
}

type OptionsResponse struct {
	Goals       []OptionResponse `json:"goals"`
	Frequencies []OptionResponse `json:"frequencies"`
	Experiences []OptionResponse `json:"experiences"`
}

type ProfileResponse struct {
	ID         string    `json:"id"`
	Goal       string    `json:"goal"`
	GoalName   string    `json:"goalName"`
	Frequency  int       `json:"frequency"`
	Experience string    `json:"experience"`
	CreatedAt  time.Time `json:"createdAt"`
}

type IntervalResponse struct {
	Kind            string  `json:"kind"`
	DurationSeconds float64 `json:"durationSeconds"`
}

type ExerciseResponse struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationSeconds float64 `json:"durationSeconds"`
	MediaURL        *string `json:"mediaUrl,omitempty"`
}

// WorkoutSummaryResponse is a workout as listed inside a plan.
type WorkoutSummaryResponse struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Summary    string    `json:"summary"`
	RunSeconds float64   `json:"runSegmentSeconds"`
	Completed  bool      `json:"completed"`
}

// WorkoutResponse is the detailed view of a single workout.
type WorkoutResponse struct {
	ID         string             `json:"id"`
	WeekNumber int                `json:"weekNumber"`
	Date       time.Time          `json:"date"`
	Summary    string             `json:"summary"`
	WarmUp     []ExerciseResponse `json:"warmUp"`
	Intervals  []IntervalResponse `json:"intervals"`
	CoolDown   []ExerciseResponse `json:"coolDown"`
	Completed  bool               `json:"completed"`
}

type WeekResponse struct {
	ID         string                   `json:"id"`
	WeekNumber int                      `json:"weekNumber"`
	Workouts   []WorkoutSummaryResponse `json:"workouts"`
}

type PlanResponse struct {
	ID          string         `json:"id"`
	OwnerUserID string         `json:"ownerUserId"`
	CreatedAt   time.Time      `json:"createdAt"`
	Weeks       []WeekResponse `json:"weeks"`
}

type OnboardingResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
	Plan    PlanResponse    `json:"plan"`
}

// --- Mappers ---

func buildOptionsResponse() OptionsResponse {
	var resp OptionsResponse
	for _, g := range domain.AllGoals() {
		resp.Goals = append(resp.Goals, OptionResponse{Value: g, DisplayName: g.DisplayName()})
	}
	for _, f := range domain.AllFrequencies() {
		resp.Frequencies = append(resp.Frequencies, OptionResponse{Value: f.DaysPerWeek(), DisplayName: f.DisplayName()})
	}
	for _, e := range domain.AllExperiences() {
		resp.Experiences = append(resp.Experiences, OptionResponse{Value: e, DisplayName: e.DisplayName()})
	}
	return resp
}

func MapProfileToResponse(p *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID.String(),
		Goal:       string(p.Goal),
		GoalName:   p.Goal.DisplayName(),
		Frequency:  p.Frequency.DaysPerWeek(),
		Experience: string(p.Experience),
		CreatedAt:  p.CreatedAt,
	}
}

func MapPlanToResponse(p *domain.Plan) PlanResponse {
	weeks := make([]WeekResponse, 0, len(p.Weeks))
	for _, w := range p.Weeks {
		workouts := make([]WorkoutSummaryResponse, 0, len(w.Workouts))
		for _, wo := range w.Workouts {
			workouts = append(workouts, WorkoutSummaryResponse{
				ID:         wo.ID.String(),
				Date:       wo.Date,
				Summary:    training.Summarize(wo.Run),
				RunSeconds: wo.Run.TotalDuration(),
				Completed:  wo.Completed,
			})
		}
		weeks = append(weeks, WeekResponse{ID: w.ID.String(), WeekNumber: w.WeekNumber, Workouts: workouts})
	}
	return PlanResponse{
		ID:          p.ID.String(),
		OwnerUserID: p.OwnerUserID.String(),
		CreatedAt:   p.CreatedAt,
		Weeks:       weeks,
	}
}

func mapExercises(ctx context.Context, media service.MediaService, exercises []domain.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		resp := ExerciseResponse{Name: e.Name, Description: e.Description, DurationSeconds: e.DurationSeconds}
		if url, ok := media.ResolveURL(ctx, e); ok {
			resp.MediaURL = &url
		}
		out = append(out, resp)
	}
	return out
}

func MapWorkoutToResponse(ctx context.Context, media service.MediaService, w *domain.Workout, weekNumber int) WorkoutResponse {
	intervals := make([]IntervalResponse, 0, len(w.Run.Intervals))
	for _, iv := range w.Run.Intervals {
		intervals = append(intervals, IntervalResponse{Kind: string(iv.Kind), DurationSeconds: iv.DurationSeconds})
	}
	return WorkoutResponse{
		ID:         w.ID.String(),
		WeekNumber: weekNumber,
		Date:       w.Date,
		Summary:    training.Summarize(w.Run),
		WarmUp:     mapExercises(ctx, media, w.WarmUp),
		Intervals:  intervals,
		CoolDown:   mapExercises(ctx, media, w.CoolDown),
		Completed:  w.Completed,
	}
}
