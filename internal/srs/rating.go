// Package srs implements the spaced-repetition review scheduler: given a
// review outcome it updates the mastery ledger and computes when the
// concept must be seen again.
package srs

import "github.com/avalder/pathwise/internal/errs"

// Rating is a learner's self-reported review performance.
type Rating string

const (
	RatingEasy   Rating = "easy"
	RatingMedium Rating = "medium"
	RatingHard   Rating = "hard"
)

// ParseRating validates a rating string.
func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingEasy, RatingMedium, RatingHard:
		return Rating(s), nil
	}
	return "", errs.Invalid("unknown performance rating %q", s)
}

func (r Rating) String() string { return string(r) }

// masteryDelta is the level adjustment each rating applies.
func masteryDelta(r Rating) int {
	switch r {
	case RatingEasy:
		return 10
	case RatingMedium:
		return 5
	default: // hard
		return -5
	}
}
