package training

import "pathly/run-planner/internal/domain"

const (
	// weeklyRunGrowth is the fraction by which run intervals grow each week.
	weeklyRunGrowth = 0.2
	// maxExtraRepeats caps repeat progression above the goal's base count.
	maxExtraRepeats = 3
)

// BaseWalk is the walk interval length in seconds for an experience tier.
func BaseWalk(exp domain.Experience) float64 {
	switch tier(exp) {
	case domain.ExperienceIntermediate:
		return 90
	case domain.ExperienceAdvanced:
		return 60
	default:
		return 120
	}
}

// BaseRun is the run interval length in seconds for a tier at a 1-based week.
// It grows linearly by 20% of the tier base per week and is not rounded.
func BaseRun(exp domain.Experience, week int) float64 {
	var base float64
	switch tier(exp) {
	case domain.ExperienceIntermediate:
		base = 120
	case domain.ExperienceAdvanced:
		base = 180
	default:
		base = 60
	}
	return base * (1 + float64(week)*weeklyRunGrowth)
}

// BaseRepeatCount is the number of walk/run pairs a goal starts from.
func BaseRepeatCount(goal domain.Goal) int {
	switch goal {
	case domain.GoalRun10K:
		return 5
	case domain.GoalHalfMarathon:
		return 6
	case domain.GoalMarathon:
		return 7
	default:
		return 4
	}
}

// RepeatCount adds one pair per week after the first, capped at three extra.
func RepeatCount(goal domain.Goal, week int) int {
	base := BaseRepeatCount(goal)
	return min(base+week-1, base+maxExtraRepeats)
}

// BuildRunSegment alternates walk→run pairs and closes with a trailing walk,
// yielding 2*RepeatCount+1 intervals.
func BuildRunSegment(exp domain.Experience, goal domain.Goal, week int) domain.RunSegment {
	walk := BaseWalk(exp)
	run := BaseRun(exp, week)
	repeats := RepeatCount(goal, week)

	intervals := make([]domain.Interval, 0, 2*repeats+1)
	for range repeats {
		intervals = append(intervals,
			domain.Interval{DurationSeconds: walk, Kind: domain.IntervalWalk},
			domain.Interval{DurationSeconds: run, Kind: domain.IntervalRun},
		)
	}
	intervals = append(intervals, domain.Interval{DurationSeconds: walk, Kind: domain.IntervalWalk})
	return domain.RunSegment{Intervals: intervals}
}
