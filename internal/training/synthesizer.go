package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
)

// SynthesizeWorkout builds one workout for the given profile inputs and plan
// week. It is deterministic apart from the id the caller supplies.
func SynthesizeWorkout(id uuid.UUID, exp domain.Experience, goal domain.Goal, week int, date time.Time) domain.Workout {
	return domain.Workout{
		ID:       id,
		Date:     date,
		WarmUp:   WarmUp(exp),
		Run:      BuildRunSegment(exp, goal, week),
		CoolDown: CoolDown(exp),
	}
}

// Summarize renders a run segment as e.g. "Walk 2 min, Run 1 min, Repeat 4x".
// Durations are whole minutes, truncated.
func Summarize(seg domain.RunSegment) string {
	run, okRun := seg.First(domain.IntervalRun)
	walk, okWalk := seg.First(domain.IntervalWalk)
	if !okRun || !okWalk {
		return "Run Segment"
	}

	var parts []string
	if m := int(walk.DurationSeconds / 60); m > 0 {
		parts = append(parts, fmt.Sprintf("Walk %d min", m))
	}
	if m := int(run.DurationSeconds / 60); m > 0 {
		parts = append(parts, fmt.Sprintf("Run %d min", m))
	}
	if n := seg.Count(domain.IntervalRun); n > 1 {
		parts = append(parts, fmt.Sprintf("Repeat %dx", n))
	}
	if len(parts) == 0 {
		return "Run Segment"
	}
	return strings.Join(parts, ", ")
}
