package streak

import (
	"fmt"
	"testing"

	"github.com/civics-prep/backend/internal/models"
)

func TestAdvance_FirstEverActivity(t *testing.T) {
	state := models.StreakState{DailyGoal: 10}

	got := Advance(state, models.ActivityStudy, 1, "2026-04-01")

	if got.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", got.CurrentStreak)
	}
	if got.LongestStreak != 1 {
		t.Errorf("expected longest streak 1, got %d", got.LongestStreak)
	}
	if got.TotalDaysStudied != 1 {
		t.Errorf("expected 1 day studied, got %d", got.TotalDaysStudied)
	}
	if got.LastActiveDate != "2026-04-01" {
		t.Errorf("expected last active 2026-04-01, got %s", got.LastActiveDate)
	}
}

func TestAdvance_ConsecutiveDaysExtend(t *testing.T) {
	state := models.StreakState{DailyGoal: 10}
	state = Advance(state, models.ActivityStudy, 1, "2026-04-01")
	state = Advance(state, models.ActivityStudy, 1, "2026-04-02")

	if state.CurrentStreak != 2 {
		t.Errorf("expected streak 2, got %d", state.CurrentStreak)
	}
}

func TestAdvance_GapResetsToOne(t *testing.T) {
	state := models.StreakState{DailyGoal: 10}
	state = Advance(state, models.ActivityStudy, 1, "2026-04-01")
	state = Advance(state, models.ActivityStudy, 1, "2026-04-02")
	state = Advance(state, models.ActivityStudy, 1, "2026-04-05")

	if state.CurrentStreak != 1 {
		t.Errorf("expected streak reset to 1 after a gap, got %d", state.CurrentStreak)
	}
	if state.LongestStreak != 2 {
		t.Errorf("expected longest streak to stay 2, got %d", state.LongestStreak)
	}
	if state.TotalDaysStudied != 3 {
		t.Errorf("expected 3 total days studied, got %d", state.TotalDaysStudied)
	}
}

func TestAdvance_SameDayAccumulatesWithoutExtending(t *testing.T) {
	state := models.StreakState{DailyGoal: 10}
	state = Advance(state, models.ActivityStudy, 3, "2026-04-01")
	state = Advance(state, models.ActivityFlashcard, 2, "2026-04-01")
	state = Advance(state, models.ActivityTest, 1, "2026-04-01")

	if state.CurrentStreak != 1 {
		t.Errorf("expected streak to stay 1 within a day, got %d", state.CurrentStreak)
	}
	if state.TotalDaysStudied != 1 {
		t.Errorf("expected 1 day studied, got %d", state.TotalDaysStudied)
	}

	day := state.Day("2026-04-01")
	if day == nil {
		t.Fatal("expected a history entry for 2026-04-01")
	}
	if day.QuestionsStudied != 3 || day.FlashcardsReviewed != 2 || day.TestsCompleted != 1 {
		t.Errorf("unexpected tally: %+v", *day)
	}
}

func TestDailyProgress_UnitsWeighting(t *testing.T) {
	day := models.DailyProgress{QuestionsStudied: 3, TestsCompleted: 1, FlashcardsReviewed: 2}
	// 3*1 + 1*10 + 2*1
	if got := day.Units(); got != 15 {
		t.Errorf("expected 15 units, got %d", got)
	}
}

func TestAdvance_HistoryEvictsOldestPastThirtyDays(t *testing.T) {
	state := models.StreakState{DailyGoal: 10}
	for d := 1; d <= models.HistoryDays+5; d++ {
		key := fmt.Sprintf("2026-03-%02d", d)
		if d > 31 {
			key = fmt.Sprintf("2026-04-%02d", d-31)
		}
		state = Advance(state, models.ActivityStudy, 1, key)
	}

	if len(state.History) != models.HistoryDays {
		t.Fatalf("expected history capped at %d entries, got %d", models.HistoryDays, len(state.History))
	}
	if state.History[0].Date != "2026-03-06" {
		t.Errorf("expected oldest retained day 2026-03-06, got %s", state.History[0].Date)
	}
	if state.History[len(state.History)-1].Date != "2026-04-04" {
		t.Errorf("expected newest day 2026-04-04, got %s", state.History[len(state.History)-1].Date)
	}
}

func TestAliveAndEffectiveStreak(t *testing.T) {
	state := &models.StreakState{CurrentStreak: 4, LastActiveDate: "2026-04-01"}

	if !Alive(state, "2026-04-01") {
		t.Error("streak should be alive on the active day")
	}
	if !Alive(state, "2026-04-02") {
		t.Error("streak should be alive the day after activity")
	}
	if Alive(state, "2026-04-03") {
		t.Error("streak should be broken after a missed day")
	}

	if got := EffectiveStreak(state, "2026-04-02"); got != 4 {
		t.Errorf("expected effective streak 4, got %d", got)
	}
	if got := EffectiveStreak(state, "2026-04-03"); got != 0 {
		t.Errorf("expected effective streak 0 once lapsed, got %d", got)
	}
}

func TestAlive_NeverActive(t *testing.T) {
	if Alive(&models.StreakState{}, "2026-04-01") {
		t.Error("a ledger with no activity should not be alive")
	}
}
