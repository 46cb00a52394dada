package difficulty

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

// RecordAttempt lazily creates the record and folds one attempt into it as
// a single atomic update.
func (s *Store) RecordAttempt(questionNumber int, correct bool, timeSpentMs int64) error {
	correctInc := 0
	incorrectInc := 0
	if correct {
		correctInc = 1
	} else {
		incorrectInc = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO difficulty_records
		    (question_number, times_correct, times_incorrect, total_response_time_ms, attempts)
		 VALUES (?, ?, ?, ?, 1)
		 ON CONFLICT (question_number) DO UPDATE SET
		    times_correct = times_correct + excluded.times_correct,
		    times_incorrect = times_incorrect + excluded.times_incorrect,
		    total_response_time_ms = total_response_time_ms + excluded.total_response_time_ms,
		    attempts = attempts + 1,
		    updated_at = CURRENT_TIMESTAMP`,
		questionNumber, correctInc, incorrectInc, timeSpentMs,
	)
	if err != nil {
		return fmt.Errorf("record attempt for question %d: %w", questionNumber, err)
	}
	return nil
}

// Get returns the record for a question, or nil if the question has never
// been attempted.
func (s *Store) Get(questionNumber int) (*models.DifficultyRecord, error) {
	var r models.DifficultyRecord
	err := s.db.QueryRow(
		`SELECT question_number, times_correct, times_incorrect, total_response_time_ms, attempts
		 FROM difficulty_records WHERE question_number = ?`,
		questionNumber,
	).Scan(&r.QuestionNumber, &r.TimesCorrect, &r.TimesIncorrect, &r.TotalResponseTimeMs, &r.Attempts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get difficulty record: %w", err)
	}
	return &r, nil
}

func (s *Store) GetAll() ([]models.DifficultyRecord, error) {
	rows, err := s.db.Query(
		`SELECT question_number, times_correct, times_incorrect, total_response_time_ms, attempts
		 FROM difficulty_records ORDER BY question_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("get difficulty records: %w", err)
	}
	defer rows.Close()

	var records []models.DifficultyRecord
	for rows.Next() {
		var r models.DifficultyRecord
		if err := rows.Scan(&r.QuestionNumber, &r.TimesCorrect, &r.TimesIncorrect,
			&r.TotalResponseTimeMs, &r.Attempts); err != nil {
			return nil, fmt.Errorf("scan difficulty record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// TotalAttempts sums attempts across all records (used as the
// questions-studied signal for achievements).
func (s *Store) TotalAttempts() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COALESCE(SUM(attempts), 0) FROM difficulty_records`).Scan(&n)
	return n, err
}

// CountStudied returns how many distinct questions have been attempted.
func (s *Store) CountStudied() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM difficulty_records`).Scan(&n)
	return n, err
}

// Reset wipes all records. Individual records are never deleted.
func (s *Store) Reset() error {
	_, err := s.db.Exec(`DELETE FROM difficulty_records`)
	return err
}
