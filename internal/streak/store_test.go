package streak

import (
	"testing"

	"github.com/civics-prep/backend/internal/database"
	"github.com/civics-prep/backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.ConnectInMemory()
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(db)
}

func TestStore_LoadDefaults(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.CurrentStreak != 0 || state.LastActiveDate != "" {
		t.Errorf("expected pristine state, got %+v", state)
	}
	if state.DailyGoal != models.DefaultDailyGoal {
		t.Errorf("expected default goal %d, got %d", models.DefaultDailyGoal, state.DailyGoal)
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	updated := Advance(*state, models.ActivityTest, 1, "2026-04-01")
	if err := store.Save(&updated, "2026-04-01"); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CurrentStreak != 1 || reloaded.LastActiveDate != "2026-04-01" {
		t.Errorf("unexpected reloaded state: %+v", reloaded)
	}

	day := reloaded.Day("2026-04-01")
	if day == nil {
		t.Fatal("expected a persisted daily progress row")
	}
	if day.TestsCompleted != 1 {
		t.Errorf("expected 1 test completed, got %d", day.TestsCompleted)
	}
}

func TestStore_SavePrunesEvictedHistory(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s := *state
	days := []string{
		"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05",
		"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10",
		"2026-03-11", "2026-03-12", "2026-03-13", "2026-03-14", "2026-03-15",
		"2026-03-16", "2026-03-17", "2026-03-18", "2026-03-19", "2026-03-20",
		"2026-03-21", "2026-03-22", "2026-03-23", "2026-03-24", "2026-03-25",
		"2026-03-26", "2026-03-27", "2026-03-28", "2026-03-29", "2026-03-30",
		"2026-03-31", "2026-04-01",
	}
	for _, d := range days {
		s = Advance(s, models.ActivityStudy, 1, d)
		if err := store.Save(&s, d); err != nil {
			t.Fatalf("save %s: %v", d, err)
		}
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.History) != models.HistoryDays {
		t.Fatalf("expected %d retained days, got %d", models.HistoryDays, len(reloaded.History))
	}
	if reloaded.Day("2026-03-01") != nil || reloaded.Day("2026-03-02") != nil {
		t.Error("expected the oldest days to be pruned")
	}
	if reloaded.History[0].Date != "2026-03-03" {
		t.Errorf("expected oldest retained day 2026-03-03, got %s", reloaded.History[0].Date)
	}
}

func TestStore_UpdateGoal(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpdateGoal(25); err != nil {
		t.Fatalf("update goal: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.DailyGoal != 25 {
		t.Errorf("expected goal 25, got %d", state.DailyGoal)
	}
}
