package streak

import (
	"github.com/civics-prep/backend/internal/dates"
	"github.com/civics-prep/backend/internal/models"
)

// Advance applies one activity event to the streak ledger and returns the
// new state. today is a device-local "2006-01-02" key; count must be >= 1.
//
// The streak counter only moves on the first activity of a calendar day:
// consecutive-day activity extends it, a gap of one or more full days
// restarts it at 1, and repeat activity on the same day just accumulates
// into that day's tally.
func Advance(state models.StreakState, activity models.ActivityType, count int, today string) models.StreakState {
	if today != state.LastActiveDate {
		switch {
		case state.LastActiveDate == "":
			state.CurrentStreak = 1
		case state.LastActiveDate == dates.AddDays(today, -1):
			state.CurrentStreak++
		default:
			state.CurrentStreak = 1
		}
		state.TotalDaysStudied++
		state.LastActiveDate = today
		if state.CurrentStreak > state.LongestStreak {
			state.LongestStreak = state.CurrentStreak
		}
	}

	day := state.Day(today)
	if day == nil {
		state.History = append(state.History, models.DailyProgress{Date: today})
		day = &state.History[len(state.History)-1]
	}
	switch activity {
	case models.ActivityStudy:
		day.QuestionsStudied += count
	case models.ActivityTest:
		day.TestsCompleted += count
	case models.ActivityFlashcard:
		day.FlashcardsReviewed += count
	}

	// History is oldest-first; evict from the front past the retention
	// window.
	if len(state.History) > models.HistoryDays {
		state.History = state.History[len(state.History)-models.HistoryDays:]
	}

	return state
}

// Alive reports whether the current streak can still be extended: the
// last active day is today or yesterday. A state with no activity ever is
// never alive.
func Alive(state *models.StreakState, today string) bool {
	if state.LastActiveDate == "" {
		return false
	}
	return state.LastActiveDate == today || state.LastActiveDate == dates.AddDays(today, -1)
}

// EffectiveStreak is the streak length as of today: the stored counter if
// the streak is alive, otherwise 0. The stored counter is only rewritten
// on the next activity, so a lapsed streak must read as broken before
// then.
func EffectiveStreak(state *models.StreakState, today string) int {
	if !Alive(state, today) {
		return 0
	}
	return state.CurrentStreak
}
