package domain

// Exercise is one warm-up or cool-down movement. Exercise content is static
// lookup data, not a user-editable library.
type Exercise struct {
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description" json:"description"`
	DurationSeconds float64 `bson:"durationSeconds" json:"durationSeconds"`
	MediaRef        *string `bson:"mediaRef,omitempty" json:"mediaRef,omitempty"` // asset name of the demo animation
}

// ExerciseKey identifies an exercise by name and duration only. Stored data
// written by earlier clients treats exercises with the same key as the same
// exercise even when descriptions differ.
type ExerciseKey struct {
	Name            string
	DurationSeconds float64
}

func (e Exercise) Key() ExerciseKey {
	return ExerciseKey{Name: e.Name, DurationSeconds: e.DurationSeconds}
}

// Equal compares every field, including the description and media reference.
func (e Exercise) Equal(o Exercise) bool {
	if e.Key() != o.Key() || e.Description != o.Description {
		return false
	}
	if e.MediaRef == nil || o.MediaRef == nil {
		return e.MediaRef == nil && o.MediaRef == nil
	}
	return *e.MediaRef == *o.MediaRef
}
