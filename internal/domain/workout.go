package domain

import (
	"time"

	"github.com/google/uuid"
)

// IntervalKind tells whether an interval is walked or run.
type IntervalKind string

const (
	IntervalWalk IntervalKind = "walk"
	IntervalRun  IntervalKind = "run"
)

// Interval is one contiguous walk or run stretch.
type Interval struct {
	DurationSeconds float64      `bson:"durationSeconds" json:"durationSeconds"`
	Kind            IntervalKind `bson:"kind" json:"kind"`
}

// RunSegment is the ordered walk/run alternation at the core of a workout.
// It always ends with a trailing walk.
type RunSegment struct {
	Intervals []Interval `bson:"intervals" json:"intervals"`
}

// TotalDuration sums every interval in seconds.
func (s RunSegment) TotalDuration() float64 {
	var total float64
	for _, iv := range s.Intervals {
		total += iv.DurationSeconds
	}
	return total
}

// Count returns how many intervals are of the given kind.
func (s RunSegment) Count(kind IntervalKind) int {
	n := 0
	for _, iv := range s.Intervals {
		if iv.Kind == kind {
			n++
		}
	}
	return n
}

// First returns the first interval of the given kind.
func (s RunSegment) First(kind IntervalKind) (Interval, bool) {
	for _, iv := range s.Intervals {
		if iv.Kind == kind {
			return iv, true
		}
	}
	return Interval{}, false
}

// Workout is a single training session within a plan week.
type Workout struct {
	ID        uuid.UUID  `bson:"id" json:"id"`
	Date      time.Time  `bson:"date" json:"date"`
	WarmUp    []Exercise `bson:"warmUp" json:"warmUp"`
	Run       RunSegment `bson:"run" json:"run"`
	CoolDown  []Exercise `bson:"coolDown" json:"coolDown"`
	Completed bool       `bson:"completed" json:"completed"`
}
