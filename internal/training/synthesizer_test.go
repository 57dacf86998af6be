package training

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
)

func TestCatalogHasThreeExercisesPerTier(t *testing.T) {
	for _, exp := range domain.AllExperiences() {
		if n := len(WarmUp(exp)); n != 3 {
			t.Errorf("WarmUp(%s) has %d exercises, want 3", exp, n)
		}
		if n := len(CoolDown(exp)); n != 3 {
			t.Errorf("CoolDown(%s) has %d exercises, want 3", exp, n)
		}
		for _, ex := range append(WarmUp(exp), CoolDown(exp)...) {
			if ex.MediaRef == nil || *ex.MediaRef == "" {
				t.Errorf("%s: exercise %q has no media reference", exp, ex.Name)
			}
		}
	}
}

func TestCatalogReturnsFreshSlices(t *testing.T) {
	a := WarmUp(domain.ExperienceBeginner)
	a[0].Name = "mutated"
	*a[1].MediaRef = "mutated"

	b := WarmUp(domain.ExperienceBeginner)
	if b[0].Name == "mutated" || *b[1].MediaRef == "mutated" {
		t.Fatal("WarmUp returned shared state")
	}
}

func TestSynthesizeWorkout(t *testing.T) {
	id := uuid.New()
	date := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	got := SynthesizeWorkout(id, domain.ExperienceIntermediate, domain.GoalRun10K, 2, date)
	want := domain.Workout{
		ID:       id,
		Date:     date,
		WarmUp:   WarmUp(domain.ExperienceIntermediate),
		Run:      BuildRunSegment(domain.ExperienceIntermediate, domain.GoalRun10K, 2),
		CoolDown: CoolDown(domain.ExperienceIntermediate),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SynthesizeWorkout mismatch (-want +got):\n%s", diff)
	}
	if got.Completed {
		t.Error("new workout is marked completed")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		seg  domain.RunSegment
		want string
	}{
		{
			name: "beginner 5k week 1",
			seg:  BuildRunSegment(domain.ExperienceBeginner, domain.GoalRun5K, 1),
			want: "Walk 2 min, Run 1 min, Repeat 4x",
		},
		{
			name: "advanced marathon week 1",
			seg:  BuildRunSegment(domain.ExperienceAdvanced, domain.GoalMarathon, 1),
			want: "Walk 1 min, Run 3 min, Repeat 7x",
		},
		{
			name: "single pair",
			seg: domain.RunSegment{Intervals: []domain.Interval{
				{DurationSeconds: 30, Kind: domain.IntervalWalk},
				{DurationSeconds: 300, Kind: domain.IntervalRun},
			}},
			want: "Run 5 min",
		},
		{
			name: "no run",
			seg:  domain.RunSegment{Intervals: []domain.Interval{{DurationSeconds: 60, Kind: domain.IntervalWalk}}},
			want: "Run Segment",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.seg); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}
