package scheduler

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

// Get returns a question's card, or nil if it has never been reviewed.
func (s *Store) Get(questionNumber int) (*models.ReviewCard, error) {
	var c models.ReviewCard
	err := s.db.QueryRow(
		`SELECT question_number, ease_factor, interval_days, repetitions,
		        next_review_date, last_review_date
		 FROM review_cards WHERE question_number = ?`,
		questionNumber,
	).Scan(&c.QuestionNumber, &c.EaseFactor, &c.IntervalDays, &c.Repetitions,
		&c.NextReviewDate, &c.LastReviewDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review card: %w", err)
	}
	return &c, nil
}

// Save upserts a card after a review.
func (s *Store) Save(c models.ReviewCard) error {
	_, err := s.db.Exec(
		`INSERT INTO review_cards
		    (question_number, ease_factor, interval_days, repetitions, next_review_date, last_review_date)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (question_number) DO UPDATE SET
		    ease_factor = excluded.ease_factor,
		    interval_days = excluded.interval_days,
		    repetitions = excluded.repetitions,
		    next_review_date = excluded.next_review_date,
		    last_review_date = excluded.last_review_date`,
		c.QuestionNumber, c.EaseFactor, c.IntervalDays, c.Repetitions,
		c.NextReviewDate, c.LastReviewDate,
	)
	if err != nil {
		return fmt.Errorf("save review card: %w", err)
	}
	return nil
}

// Due returns due cards (next review on or before today) hardest-first:
// lowest ease factor wins, question number breaks ties. limit <= 0 means
// no limit.
func (s *Store) Due(today string, limit int) ([]models.ReviewCard, error) {
	query := `SELECT question_number, ease_factor, interval_days, repetitions,
	                 next_review_date, last_review_date
	          FROM review_cards
	          WHERE next_review_date <= ?
	          ORDER BY ease_factor ASC, question_number ASC`
	args := []interface{}{today}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("due cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

func (s *Store) GetAll() ([]models.ReviewCard, error) {
	rows, err := s.db.Query(
		`SELECT question_number, ease_factor, interval_days, repetitions,
		        next_review_date, last_review_date
		 FROM review_cards ORDER BY question_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("get review cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

func scanCards(rows *sql.Rows) ([]models.ReviewCard, error) {
	var cards []models.ReviewCard
	for rows.Next() {
		var c models.ReviewCard
		if err := rows.Scan(&c.QuestionNumber, &c.EaseFactor, &c.IntervalDays, &c.Repetitions,
			&c.NextReviewDate, &c.LastReviewDate); err != nil {
			return nil, fmt.Errorf("scan review card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (s *Store) CountDue(today string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM review_cards WHERE next_review_date <= ?`, today,
	).Scan(&n)
	return n, err
}

func (s *Store) CountCards() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM review_cards`).Scan(&n)
	return n, err
}

// ── Lifetime Review Counter ──────────────────────────────

func (s *Store) IncrementReviews() error {
	_, err := s.db.Exec(`UPDATE review_stats SET total_reviews = total_reviews + 1 WHERE id = 1`)
	return err
}

func (s *Store) TotalReviews() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT total_reviews FROM review_stats WHERE id = 1`).Scan(&n)
	return n, err
}
