package streak

import (
	"database/sql"
	"fmt"

	"github.com/civics-prep/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load assembles the singleton streak state plus its retained daily
// history, oldest-first.
func (s *Store) Load() (*models.StreakState, error) {
	var state models.StreakState
	err := s.db.QueryRow(
		`SELECT current_streak, longest_streak, last_active_date, total_days_studied, daily_goal
		 FROM streak_state WHERE id = 1`,
	).Scan(&state.CurrentStreak, &state.LongestStreak, &state.LastActiveDate,
		&state.TotalDaysStudied, &state.DailyGoal)
	if err != nil {
		return nil, fmt.Errorf("load streak state: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT date, questions_studied, tests_completed, flashcards_reviewed
		 FROM (SELECT * FROM daily_progress ORDER BY date DESC LIMIT ?)
		 ORDER BY date ASC`,
		models.HistoryDays,
	)
	if err != nil {
		return nil, fmt.Errorf("load daily progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.DailyProgress
		if err := rows.Scan(&d.Date, &d.QuestionsStudied, &d.TestsCompleted, &d.FlashcardsReviewed); err != nil {
			return nil, fmt.Errorf("scan daily progress: %w", err)
		}
		state.History = append(state.History, d)
	}
	return &state, rows.Err()
}

// Save writes the streak counters, upserts today's tally, and evicts
// history rows that fell out of the retention window. today must be the
// day key whose tally changed.
func (s *Store) Save(state *models.StreakState, today string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin streak save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE streak_state SET
		    current_streak = ?, longest_streak = ?, last_active_date = ?,
		    total_days_studied = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = 1`,
		state.CurrentStreak, state.LongestStreak, state.LastActiveDate, state.TotalDaysStudied,
	)
	if err != nil {
		return fmt.Errorf("save streak state: %w", err)
	}

	if day := state.Day(today); day != nil {
		_, err = tx.Exec(
			`INSERT INTO daily_progress (date, questions_studied, tests_completed, flashcards_reviewed)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (date) DO UPDATE SET
			    questions_studied = excluded.questions_studied,
			    tests_completed = excluded.tests_completed,
			    flashcards_reviewed = excluded.flashcards_reviewed`,
			day.Date, day.QuestionsStudied, day.TestsCompleted, day.FlashcardsReviewed,
		)
		if err != nil {
			return fmt.Errorf("save daily progress: %w", err)
		}
	}

	if len(state.History) > 0 {
		if _, err := tx.Exec(`DELETE FROM daily_progress WHERE date < ?`, state.History[0].Date); err != nil {
			return fmt.Errorf("prune daily progress: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) UpdateGoal(target int) error {
	_, err := s.db.Exec(
		`UPDATE streak_state SET daily_goal = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
		target,
	)
	if err != nil {
		return fmt.Errorf("update daily goal: %w", err)
	}
	return nil
}
