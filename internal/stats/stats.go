// Package stats computes streaks and completion summaries over daily goals.
package stats

import (
	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
)

// DayLoader fetches the goals for one date. exists reports whether a goals
// file was present; err reports a file that was present but unreadable.
type DayLoader func(date domain.Date) (goals *domain.DailyGoals, exists bool, err error)

// Streak counts consecutive days ending at today with at least one
// completed, non-empty action. The walk stops at the first missing day, the
// first day with no completion, or the first unreadable file; an unreadable
// file ends the streak rather than failing the caller. The count is capped
// at one year.
func Streak(today domain.Date, load DayLoader) int {
	streak := 0
	date := today
	for streak < constants.MaxStreakDays {
		goals, exists, err := load(date)
		if err != nil || !exists {
			break
		}
		if !goals.HasCompletedAction() {
			break
		}
		streak++
		date = date.Prev()
	}
	return streak
}

// DayStats summarizes one day's completion.
func DayStats(goals *domain.DailyGoals) domain.CompletionStats {
	return goals.Stats()
}
