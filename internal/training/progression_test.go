package training

import (
	"math"
	"testing"

	"pathly/run-planner/internal/domain"
)

const epsilon = 1e-9

func TestBaseWalk(t *testing.T) {
	tests := []struct {
		exp  domain.Experience
		want float64
	}{
		{domain.ExperienceBeginner, 120},
		{domain.ExperienceIntermediate, 90},
		{domain.ExperienceAdvanced, 60},
	}
	for _, tt := range tests {
		t.Run(string(tt.exp), func(t *testing.T) {
			if got := BaseWalk(tt.exp); got != tt.want {
				t.Errorf("BaseWalk(%s) = %v, want %v", tt.exp, got, tt.want)
			}
		})
	}
}

func TestBaseRun(t *testing.T) {
	tests := []struct {
		name string
		exp  domain.Experience
		week int
		want float64
	}{
		{"beginner week 1", domain.ExperienceBeginner, 1, 72},
		{"beginner week 4", domain.ExperienceBeginner, 4, 108},
		{"intermediate week 2", domain.ExperienceIntermediate, 2, 168},
		{"advanced week 1", domain.ExperienceAdvanced, 1, 216},
		{"advanced week 3", domain.ExperienceAdvanced, 3, 288},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseRun(tt.exp, tt.week)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("BaseRun(%s, %d) = %v, want %v", tt.exp, tt.week, got, tt.want)
			}
		})
	}
}

func TestBaseRunIncreasesEveryWeek(t *testing.T) {
	for _, exp := range domain.AllExperiences() {
		for week := 1; week < domain.PlanWeeks; week++ {
			if BaseRun(exp, week+1) <= BaseRun(exp, week) {
				t.Errorf("BaseRun(%s, %d) = %v, not greater than week %d (%v)",
					exp, week+1, BaseRun(exp, week+1), week, BaseRun(exp, week))
			}
		}
	}
}

func TestRepeatCount(t *testing.T) {
	tests := []struct {
		goal domain.Goal
		base int
	}{
		{domain.GoalBuildEndurance, 4},
		{domain.GoalLoseWeight, 4},
		{domain.GoalRun5K, 4},
		{domain.GoalRun10K, 5},
		{domain.GoalHalfMarathon, 6},
		{domain.GoalMarathon, 7},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			if got := BaseRepeatCount(tt.goal); got != tt.base {
				t.Fatalf("BaseRepeatCount(%s) = %d, want %d", tt.goal, got, tt.base)
			}
			prev := 0
			for week := 1; week <= domain.PlanWeeks; week++ {
				got := RepeatCount(tt.goal, week)
				if want := tt.base + week - 1; got != want {
					t.Errorf("RepeatCount(%s, %d) = %d, want %d", tt.goal, week, got, want)
				}
				if got < tt.base || got > tt.base+3 {
					t.Errorf("RepeatCount(%s, %d) = %d, outside [%d, %d]", tt.goal, week, got, tt.base, tt.base+3)
				}
				if got < prev {
					t.Errorf("RepeatCount(%s, %d) = %d decreased from %d", tt.goal, week, got, prev)
				}
				prev = got
			}
			if got := RepeatCount(tt.goal, 10); got != tt.base+3 {
				t.Errorf("RepeatCount(%s, 10) = %d, want cap %d", tt.goal, got, tt.base+3)
			}
		})
	}
}

func TestBuildRunSegmentShape(t *testing.T) {
	for _, exp := range domain.AllExperiences() {
		for _, goal := range domain.AllGoals() {
			for week := 1; week <= domain.PlanWeeks; week++ {
				seg := BuildRunSegment(exp, goal, week)
				repeats := RepeatCount(goal, week)
				if len(seg.Intervals) != 2*repeats+1 {
					t.Fatalf("%s/%s week %d: %d intervals, want %d", exp, goal, week, len(seg.Intervals), 2*repeats+1)
				}
				for i, iv := range seg.Intervals {
					want := domain.IntervalWalk
					if i%2 == 1 {
						want = domain.IntervalRun
					}
					if iv.Kind != want {
						t.Errorf("%s/%s week %d: interval %d is %s, want %s", exp, goal, week, i, iv.Kind, want)
					}
				}
				if last := seg.Intervals[len(seg.Intervals)-1]; last.Kind != domain.IntervalWalk {
					t.Errorf("%s/%s week %d: last interval is %s, want walk", exp, goal, week, last.Kind)
				}
			}
		}
	}
}

func TestBuildRunSegmentScenarios(t *testing.T) {
	tests := []struct {
		name      string
		exp       domain.Experience
		goal      domain.Goal
		week      int
		intervals int
		walk      float64
		run       float64
		total     float64
	}{
		{"5k beginner week 1", domain.ExperienceBeginner, domain.GoalRun5K, 1, 9, 120, 72, 888},
		{"5k beginner week 4", domain.ExperienceBeginner, domain.GoalRun5K, 4, 15, 120, 108, 7*(120+108) + 120},
		{"marathon advanced week 1", domain.ExperienceAdvanced, domain.GoalMarathon, 1, 15, 60, 216, 1992},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := BuildRunSegment(tt.exp, tt.goal, tt.week)
			if len(seg.Intervals) != tt.intervals {
				t.Fatalf("got %d intervals, want %d", len(seg.Intervals), tt.intervals)
			}
			if got := seg.Intervals[0].DurationSeconds; got != tt.walk {
				t.Errorf("walk = %v, want %v", got, tt.walk)
			}
			if got := seg.Intervals[1].DurationSeconds; math.Abs(got-tt.run) > epsilon {
				t.Errorf("run = %v, want %v", got, tt.run)
			}
			if got := seg.TotalDuration(); math.Abs(got-tt.total) > epsilon {
				t.Errorf("total = %v, want %v", got, tt.total)
			}
		})
	}
}
