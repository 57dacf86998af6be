package domain

import (
	"errors"
	"fmt"
)

// Frequency is the number of training days per week, 1 through 6.
type Frequency int

const (
	FrequencyOneDay Frequency = iota + 1
	FrequencyTwoDays
	FrequencyThreeDays
	FrequencyFourDays
	FrequencyFiveDays
	FrequencySixDays
)

var ErrInvalidFrequency = errors.New("invalid frequency")

// AllFrequencies returns every frequency in ascending order.
func AllFrequencies() []Frequency {
	return []Frequency{
		FrequencyOneDay, FrequencyTwoDays, FrequencyThreeDays,
		FrequencyFourDays, FrequencyFiveDays, FrequencySixDays,
	}
}

// ParseFrequency converts a days-per-week count into a Frequency.
func ParseFrequency(days int) (Frequency, error) {
	f := Frequency(days)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d days per week", ErrInvalidFrequency, days)
	}
	return f, nil
}

func (f Frequency) Valid() bool {
	return f >= FrequencyOneDay && f <= FrequencySixDays
}

// DaysPerWeek is the number of workouts generated for each plan week.
func (f Frequency) DaysPerWeek() int {
	return int(f)
}

func (f Frequency) DisplayName() string {
	if f == FrequencyOneDay {
		return "1 day per week"
	}
	return fmt.Sprintf("%d days per week", int(f))
}
