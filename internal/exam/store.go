package exam

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/civics-prep/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveResult appends one graded test to the result history. The
// per-question outcome lists are stored as JSON arrays.
func (s *Store) SaveResult(rec *models.TestRecord) error {
	correctJSON, err := json.Marshal(rec.CorrectQuestions)
	if err != nil {
		return fmt.Errorf("encode correct questions: %w", err)
	}
	incorrectJSON, err := json.Marshal(rec.IncorrectQuestions)
	if err != nil {
		return fmt.Errorf("encode incorrect questions: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO test_results (id, mode, correct, total, passed, time_spent_ms, correct_questions, incorrect_questions, taken_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Mode, rec.Correct, rec.Total, rec.Passed, rec.TimeSpentMs,
		string(correctJSON), string(incorrectJSON), rec.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("save test result: %w", err)
	}
	return nil
}

// History returns the most recent test records, newest first.
func (s *Store) History(limit int) ([]models.TestRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, correct, total, passed, time_spent_ms, correct_questions, incorrect_questions, taken_at
		 FROM test_results ORDER BY taken_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("load test history: %w", err)
	}
	defer rows.Close()

	var out []models.TestRecord
	for rows.Next() {
		var rec models.TestRecord
		var correctJSON, incorrectJSON string
		if err := rows.Scan(&rec.ID, &rec.Mode, &rec.Correct, &rec.Total, &rec.Passed,
			&rec.TimeSpentMs, &correctJSON, &incorrectJSON, &rec.TakenAt); err != nil {
			return nil, fmt.Errorf("scan test record: %w", err)
		}
		if err := json.Unmarshal([]byte(correctJSON), &rec.CorrectQuestions); err != nil {
			return nil, fmt.Errorf("decode correct questions: %w", err)
		}
		if err := json.Unmarshal([]byte(incorrectJSON), &rec.IncorrectQuestions); err != nil {
			return nil, fmt.Errorf("decode incorrect questions: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Stats aggregates the whole result history. Scores are compared as
// percentages so standard and senior tests rank on the same scale.
func (s *Store) Stats() (*models.TestStats, error) {
	var stats models.TestStats
	err := s.db.QueryRow(
		`SELECT
		    COUNT(*),
		    COALESCE(SUM(passed), 0),
		    COALESCE(SUM(CASE WHEN correct = total THEN 1 ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN mode = 'senior' AND passed = 1 THEN 1 ELSE 0 END), 0),
		    COALESCE(MAX(correct * 100 / total), 0),
		    COALESCE(AVG(correct * 100.0 / total), 0)
		 FROM test_results`,
	).Scan(&stats.TestsCompleted, &stats.TestsPassed, &stats.PerfectTests,
		&stats.SeniorTestsPassed, &stats.BestScore, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("aggregate test stats: %w", err)
	}
	return &stats, nil
}
