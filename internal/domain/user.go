package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the three onboarding answers. It is created once when
// onboarding completes and replaced wholesale on reset, never edited.
type UserProfile struct {
	ID         uuid.UUID  `bson:"id" json:"id"`
	Goal       Goal       `bson:"goal" json:"goal"`
	Frequency  Frequency  `bson:"frequency" json:"frequency"`
	Experience Experience `bson:"experience" json:"experience"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}

// Validate reports every onboarding answer that falls outside its closed set.
func (p *UserProfile) Validate() error {
	var errs []error
	if !p.Goal.Valid() {
		errs = append(errs, ErrInvalidGoal)
	}
	if !p.Frequency.Valid() {
		errs = append(errs, ErrInvalidFrequency)
	}
	if !p.Experience.Valid() {
		errs = append(errs, ErrInvalidExperience)
	}
	return errors.Join(errs...)
}
