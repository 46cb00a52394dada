package streak

import (
	"fmt"
	"sync"
	"time"

	"github.com/civics-prep/backend/internal/dates"
	"github.com/civics-prep/backend/internal/models"
)

// Service guards the streak ledger. All mutations go through RecordActivity
// under a single mutex so two near-simultaneous events on a day boundary
// cannot double-extend the streak.
type Service struct {
	mu    sync.Mutex
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordActivity folds one activity event into the ledger and returns the
// resulting status. A non-positive count is treated as 1.
func (s *Service) RecordActivity(activity models.ActivityType, count int) (*models.StreakStatus, error) {
	if !models.ValidActivityTypes[activity] {
		return nil, fmt.Errorf("unknown activity type %q", activity)
	}
	if count <= 0 {
		count = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	today := dates.DayKey(time.Now())
	updated := Advance(*state, activity, count, today)
	if err := s.store.Save(&updated, today); err != nil {
		return nil, err
	}
	return s.status(&updated, today), nil
}

// Status reports the streak as of now without recording anything.
func (s *Service) Status() (*models.StreakStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return s.status(state, dates.DayKey(time.Now())), nil
}

// State returns the raw ledger for achievement signal assembly.
func (s *Service) State() (*models.StreakState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load()
}

// SetDailyGoal changes the goal target. Values outside the allowed band
// are rejected, not clamped.
func (s *Service) SetDailyGoal(target int) error {
	if target < models.MinDailyGoal || target > models.MaxDailyGoal {
		return fmt.Errorf("daily goal must be between %d and %d, got %d",
			models.MinDailyGoal, models.MaxDailyGoal, target)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.UpdateGoal(target)
}

func (s *Service) status(state *models.StreakState, today string) *models.StreakStatus {
	var todayProgress models.DailyProgress
	todayProgress.Date = today
	if day := state.Day(today); day != nil {
		todayProgress = *day
	}

	units := todayProgress.Units()
	percent := units * 100 / state.DailyGoal
	if percent > 100 {
		percent = 100
	}

	history := state.History
	if history == nil {
		history = []models.DailyProgress{}
	}

	return &models.StreakStatus{
		CurrentStreak:    EffectiveStreak(state, today),
		LongestStreak:    state.LongestStreak,
		StreakAlive:      Alive(state, today),
		TotalDaysStudied: state.TotalDaysStudied,
		DailyGoal:        state.DailyGoal,
		TodayUnits:       units,
		GoalPercent:      percent,
		GoalMet:          units >= state.DailyGoal,
		TodayProgress:    todayProgress,
		History:          history,
	}
}
