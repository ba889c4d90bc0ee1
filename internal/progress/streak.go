package progress

import "time"

// Streak milestones trigger celebration moments in the client. After
// the fixed list, every 50 days counts as a milestone.
var streakMilestones = []int{3, 7, 14, 30, 60, 100}

// IsStreakMilestone reports whether days is a milestone worth surfacing.
func IsStreakMilestone(days int) bool {
	for _, m := range streakMilestones {
		if days == m {
			return true
		}
	}
	return days > 100 && days%50 == 0
}

// NextStreakMilestone returns the next milestone strictly above days.
func NextStreakMilestone(days int) int {
	for _, m := range streakMilestones {
		if m > days {
			return m
		}
	}
	next := (days/50 + 1) * 50
	if next <= days {
		next += 50
	}
	return next
}

// UpdateStreak computes the new streak given the previous activity
// timestamp. Activity on the same calendar day (UTC) keeps the streak,
// the next day extends it, any gap resets it to 1.
func UpdateStreak(lastActivity time.Time, streak int, now time.Time) int {
	if lastActivity.IsZero() || streak <= 0 {
		return 1
	}
	last := dayOf(lastActivity)
	today := dayOf(now)
	switch days := int(today.Sub(last).Hours() / 24); {
	case days <= 0:
		return streak
	case days == 1:
		return streak + 1
	default:
		return 1
	}
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
