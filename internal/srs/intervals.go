package srs

import "time"

// reviewIntervals are the expanding review schedules per rating, indexed
// by the retention streak going into the review. Streaks past the end of
// a table stay on the last entry.
var reviewIntervals = map[Rating][]time.Duration{
	RatingHard:   {12 * time.Hour, 24 * time.Hour, 72 * time.Hour, 168 * time.Hour},
	RatingMedium: {24 * time.Hour, 72 * time.Hour, 168 * time.Hour, 336 * time.Hour},
	RatingEasy:   {48 * time.Hour, 96 * time.Hour, 168 * time.Hour, 336 * time.Hour, 672 * time.Hour},
}

// NextInterval returns the review interval for a rating given the streak
// going into the review.
func NextInterval(r Rating, streakBefore int) time.Duration {
	table := reviewIntervals[r]
	idx := streakBefore
	if idx > len(table)-1 {
		idx = len(table) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return table[idx]
}

// Score bands for outcomes derived from a numeric quiz score instead of
// a self-report. This is a deliberately coarser policy than the rating
// tables above and is kept separate from them.
const (
	EasyScoreThreshold   = 90
	MediumScoreThreshold = 70
)

// scoredIntervals are the fixed offsets used when an outcome is derived
// from a score (review-node completion in a learning path).
var scoredIntervals = map[Rating]time.Duration{
	RatingEasy:   96 * time.Hour, // 4 days
	RatingMedium: 48 * time.Hour, // 2 days
	RatingHard:   24 * time.Hour, // 1 day
}

// RatingForScore maps a 0-100 score onto the equivalent rating.
func RatingForScore(score int) Rating {
	switch {
	case score >= EasyScoreThreshold:
		return RatingEasy
	case score >= MediumScoreThreshold:
		return RatingMedium
	default:
		return RatingHard
	}
}

// ScoredInterval returns the fixed review offset for a score-derived
// outcome.
func ScoredInterval(score int) time.Duration {
	return scoredIntervals[RatingForScore(score)]
}
