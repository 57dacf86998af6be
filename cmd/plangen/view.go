package main

import (
	"time"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/training"
)

type planView struct {
	Goal       string     `json:"goal" yaml:"goal"`
	Frequency  string     `json:"frequency" yaml:"frequency"`
	Experience string     `json:"experience" yaml:"experience"`
	Weeks      []weekView `json:"weeks" yaml:"weeks"`
}

type weekView struct {
	Week     int           `json:"week" yaml:"week"`
	Workouts []workoutView `json:"workouts" yaml:"workouts"`
}

type workoutView struct {
	Date      string         `json:"date" yaml:"date"`
	Summary   string         `json:"summary" yaml:"summary"`
	WarmUp    []string       `json:"warmUp" yaml:"warm_up"`
	Intervals []intervalView `json:"intervals" yaml:"intervals"`
	CoolDown  []string       `json:"coolDown" yaml:"cool_down"`
}

type intervalView struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

func newPlanView(profile *domain.UserProfile, plan *domain.Plan) planView {
	view := planView{
		Goal:       profile.Goal.DisplayName(),
		Frequency:  profile.Frequency.DisplayName(),
		Experience: profile.Experience.DisplayName(),
	}
	for _, w := range plan.Weeks {
		wv := weekView{Week: w.WeekNumber}
		for _, wo := range w.Workouts {
			item := workoutView{
				Date:     wo.Date.Format(time.DateOnly),
				Summary:  training.Summarize(wo.Run),
				WarmUp:   exerciseNames(wo.WarmUp),
				CoolDown: exerciseNames(wo.CoolDown),
			}
			for _, iv := range wo.Run.Intervals {
				item.Intervals = append(item.Intervals, intervalView{Kind: string(iv.Kind), Seconds: iv.DurationSeconds})
			}
			wv.Workouts = append(wv.Workouts, item)
		}
		view.Weeks = append(view.Weeks, wv)
	}
	return view
}

func exerciseNames(exercises []domain.Exercise) []string {
	names := make([]string, 0, len(exercises))
	for _, e := range exercises {
		names = append(names, e.Name)
	}
	return names
}
