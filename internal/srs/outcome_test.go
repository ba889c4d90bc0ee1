package srs

import (
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/mastery"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func freshRecord() *mastery.Record {
	return mastery.NewRecord("u1", "algebra", testNow.Add(-48*time.Hour))
}

func TestApplyOutcome_MasteryDeltas(t *testing.T) {
	tests := []struct {
		rating Rating
		level  int
		want   int
	}{
		{RatingEasy, 50, 60},
		{RatingMedium, 50, 55},
		{RatingHard, 50, 45},
		{RatingEasy, 95, 100},  // clamped high
		{RatingHard, 3, 0},     // clamped low
		{RatingHard, 0, 0},     // stays at floor
		{RatingEasy, 100, 100}, // stays at ceiling
	}
	for _, tt := range tests {
		rec := freshRecord()
		rec.Level = tt.level
		got := ApplyOutcome(rec, tt.rating, testNow)
		if got.Level != tt.want {
			t.Errorf("%s from %d: got level %d, want %d", tt.rating, tt.level, got.Level, tt.want)
		}
		if got.Level < mastery.MinLevel || got.Level > mastery.MaxLevel {
			t.Errorf("%s from %d: level %d outside [0,100]", tt.rating, tt.level, got.Level)
		}
	}
}

func TestApplyOutcome_StreakRules(t *testing.T) {
	rec := freshRecord()
	rec.RetentionStreak = 3

	easy := ApplyOutcome(rec, RatingEasy, testNow)
	if easy.RetentionStreak != 4 {
		t.Errorf("easy: got streak %d, want 4", easy.RetentionStreak)
	}
	medium := ApplyOutcome(rec, RatingMedium, testNow)
	if medium.RetentionStreak != 4 {
		t.Errorf("medium: got streak %d, want 4", medium.RetentionStreak)
	}
	hard := ApplyOutcome(rec, RatingHard, testNow)
	if hard.RetentionStreak != 0 {
		t.Errorf("hard: got streak %d, want 0", hard.RetentionStreak)
	}
}

func TestApplyOutcome_IntervalUsesIncomingStreak(t *testing.T) {
	tests := []struct {
		rating Rating
		streak int
		want   time.Duration
	}{
		{RatingHard, 0, 12 * time.Hour},
		{RatingHard, 2, 72 * time.Hour},
		{RatingHard, 9, 168 * time.Hour}, // past table end
		{RatingMedium, 0, 24 * time.Hour},
		{RatingMedium, 3, 336 * time.Hour},
		{RatingEasy, 0, 48 * time.Hour},
		{RatingEasy, 4, 672 * time.Hour},
		{RatingEasy, 40, 672 * time.Hour},
	}
	for _, tt := range tests {
		rec := freshRecord()
		rec.RetentionStreak = tt.streak
		got := ApplyOutcome(rec, tt.rating, testNow)
		if got.NextReviewAt == nil {
			t.Fatalf("%s streak %d: nil NextReviewAt", tt.rating, tt.streak)
		}
		if interval := got.NextReviewAt.Sub(testNow); interval != tt.want {
			t.Errorf("%s streak %d: got interval %v, want %v", tt.rating, tt.streak, interval, tt.want)
		}
	}
}

func TestApplyOutcome_NextAlwaysAfterLast(t *testing.T) {
	for _, rating := range []Rating{RatingEasy, RatingMedium, RatingHard} {
		for streak := 0; streak < 8; streak++ {
			rec := freshRecord()
			rec.RetentionStreak = streak
			got := ApplyOutcome(rec, rating, testNow)
			if !got.LastReviewedAt.Equal(testNow) {
				t.Fatalf("%s: lastReviewedAt not updated", rating)
			}
			if got.NextReviewAt == nil || !got.NextReviewAt.After(got.LastReviewedAt) {
				t.Errorf("%s streak %d: nextReviewAt not after lastReviewedAt", rating, streak)
			}
		}
	}
}

func TestApplyOutcome_AppendsHistoryWithoutMutatingInput(t *testing.T) {
	rec := freshRecord()
	rec.History = []mastery.HistoryEntry{{At: testNow.Add(-24 * time.Hour), Rating: "medium"}}
	rec.Level = 20

	got := ApplyOutcome(rec, RatingEasy, testNow)
	if len(got.History) != 2 {
		t.Fatalf("got %d history entries, want 2", len(got.History))
	}
	if got.History[1].Rating != "easy" || !got.History[1].At.Equal(testNow) {
		t.Errorf("got tail entry %+v", got.History[1])
	}
	// Input untouched.
	if len(rec.History) != 1 || rec.Level != 20 || rec.RetentionStreak != 0 {
		t.Error("ApplyOutcome mutated its input record")
	}
}

// Spec scenario: unseen concept, hard then easy.
func TestOutcomeSequence_HardThenEasy(t *testing.T) {
	rec := mastery.NewRecord("u1", "c1", testNow)

	afterHard := ApplyOutcome(rec, RatingHard, testNow)
	if afterHard.Level != 0 {
		t.Errorf("after hard: got level %d, want 0 (clamped)", afterHard.Level)
	}
	if afterHard.RetentionStreak != 0 {
		t.Errorf("after hard: got streak %d, want 0", afterHard.RetentionStreak)
	}
	if interval := afterHard.NextReviewAt.Sub(testNow); interval != 12*time.Hour {
		t.Errorf("after hard: got interval %v, want 12h", interval)
	}

	later := testNow.Add(13 * time.Hour)
	afterEasy := ApplyOutcome(afterHard, RatingEasy, later)
	if afterEasy.Level != 10 {
		t.Errorf("after easy: got level %d, want 10", afterEasy.Level)
	}
	if afterEasy.RetentionStreak != 1 {
		t.Errorf("after easy: got streak %d, want 1", afterEasy.RetentionStreak)
	}
	if interval := afterEasy.NextReviewAt.Sub(later); interval != 48*time.Hour {
		t.Errorf("after easy: got interval %v, want 48h (easy table at streak 0)", interval)
	}
}

func TestApplyScoredOutcome_Bands(t *testing.T) {
	tests := []struct {
		score        int
		wantInterval time.Duration
		wantDelta    int
		wantStreak   int
	}{
		{95, 96 * time.Hour, 10, 1}, // easy-equivalent, 4 days
		{90, 96 * time.Hour, 10, 1},
		{80, 48 * time.Hour, 5, 1}, // medium-equivalent, 2 days
		{70, 48 * time.Hour, 5, 1},
		{69, 24 * time.Hour, -5, 0}, // hard-equivalent, 1 day
		{0, 24 * time.Hour, -5, 0},
	}
	for _, tt := range tests {
		rec := freshRecord()
		rec.Level = 50
		got := ApplyScoredOutcome(rec, tt.score, testNow)
		if interval := got.NextReviewAt.Sub(testNow); interval != tt.wantInterval {
			t.Errorf("score %d: got interval %v, want %v", tt.score, interval, tt.wantInterval)
		}
		if got.Level != 50+tt.wantDelta {
			t.Errorf("score %d: got level %d, want %d", tt.score, got.Level, 50+tt.wantDelta)
		}
		if got.RetentionStreak != tt.wantStreak {
			t.Errorf("score %d: got streak %d, want %d", tt.score, got.RetentionStreak, tt.wantStreak)
		}
	}
}

func TestParseRating(t *testing.T) {
	for _, ok := range []string{"easy", "medium", "hard"} {
		if _, err := ParseRating(ok); err != nil {
			t.Errorf("ParseRating(%q): unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"", "EASY", "good", "again"} {
		if _, err := ParseRating(bad); err == nil {
			t.Errorf("ParseRating(%q): expected error", bad)
		}
	}
}
