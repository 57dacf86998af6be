package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanWeeks is the fixed horizon of every generated plan.
const PlanWeeks = 4

// Week groups the workouts of one plan week.
type Week struct {
	ID         uuid.UUID `bson:"id" json:"id"`
	WeekNumber int       `bson:"weekNumber" json:"weekNumber"` // 1-based
	Workouts   []Workout `bson:"workouts" json:"workouts"`
}

// Plan is the full training schedule for one owner. A regenerated plan
// replaces the previous one entirely.
type Plan struct {
	ID          uuid.UUID `bson:"id" json:"id"`
	OwnerUserID uuid.UUID `bson:"ownerUserId" json:"ownerUserId"`
	Weeks       []Week    `bson:"weeks" json:"weeks"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Workouts returns every workout in week/day order.
func (p *Plan) Workouts() []Workout {
	var out []Workout
	for _, w := range p.Weeks {
		out = append(out, w.Workouts...)
	}
	return out
}

// FindWorkout returns the workout with the given id and the week it belongs to.
func (p *Plan) FindWorkout(id uuid.UUID) (*Workout, *Week, bool) {
	for wi := range p.Weeks {
		week := &p.Weeks[wi]
		for i := range week.Workouts {
			if week.Workouts[i].ID == id {
				return &week.Workouts[i], week, true
			}
		}
	}
	return nil, nil, false
}

// Clone returns a deep copy of the plan.
func (p *Plan) Clone() *Plan {
	out := *p
	out.Weeks = make([]Week, len(p.Weeks))
	for wi, w := range p.Weeks {
		w.Workouts = append([]Workout(nil), w.Workouts...)
		for i := range w.Workouts {
			wo := &w.Workouts[i]
			wo.WarmUp = append([]Exercise(nil), wo.WarmUp...)
			wo.CoolDown = append([]Exercise(nil), wo.CoolDown...)
			wo.Run.Intervals = append([]Interval(nil), wo.Run.Intervals...)
		}
		out.Weeks[wi] = w
	}
	return &out
}
