package domain

import (
	"errors"
	"fmt"
)

// Goal is the fitness goal chosen during onboarding. It drives how many
// walk/run repeats a workout contains.
type Goal string

const (
	GoalBuildEndurance Goal = "build_endurance"
	GoalLoseWeight     Goal = "lose_weight"
	GoalRun5K          Goal = "run_5k"
	GoalRun10K         Goal = "run_10k"
	GoalHalfMarathon   Goal = "half_marathon"
	GoalMarathon       Goal = "marathon"
)

var ErrInvalidGoal = errors.New("invalid goal")

var goalDisplayNames = map[Goal]string{
	GoalBuildEndurance: "Build Endurance",
	GoalLoseWeight:     "Lose Weight",
	GoalRun5K:          "Run 5K",
	GoalRun10K:         "Run 10K",
	GoalHalfMarathon:   "Half Marathon",
	GoalMarathon:       "Marathon",
}

// AllGoals returns every goal in presentation order.
func AllGoals() []Goal {
	return []Goal{GoalBuildEndurance, GoalLoseWeight, GoalRun5K, GoalRun10K, GoalHalfMarathon, GoalMarathon}
}

// ParseGoal converts raw input into a Goal.
func ParseGoal(s string) (Goal, error) {
	g := Goal(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
	}
	return g, nil
}

func (g Goal) Valid() bool {
	_, ok := goalDisplayNames[g]
	return ok
}

func (g Goal) DisplayName() string {
	return goalDisplayNames[g]
}
