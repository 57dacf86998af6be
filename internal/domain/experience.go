package domain

import (
	"errors"
	"fmt"
)

// Experience is the runner's self-reported level. It selects base interval
// durations and the warm-up/cool-down routines.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

var ErrInvalidExperience = errors.New("invalid experience")

// AllExperiences returns every experience tier, lowest first.
func AllExperiences() []Experience {
	return []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
}

// ParseExperience converts raw input into an Experience.
func ParseExperience(s string) (Experience, error) {
	e := Experience(s)
	if !e.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidExperience, s)
	}
	return e, nil
}

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

func (e Experience) DisplayName() string {
	switch e {
	case ExperienceBeginner:
		return "Beginner"
	case ExperienceIntermediate:
		return "Intermediate"
	case ExperienceAdvanced:
		return "Advanced"
	}
	return ""
}
