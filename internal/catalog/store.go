package catalog

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

// ── Catalog Rows ─────────────────────────────────────────

func (s *Store) CountQuestions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}

// LoadAll reads the full catalog, answers included, ordered by question
// number. The result is treated as immutable by everything downstream.
func (s *Store) LoadAll() ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT question_number, category, question_en, question_vi, is_65_20, is_dynamic
		 FROM questions ORDER BY question_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	index := make(map[int]int)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.QuestionNumber, &q.Category, &q.QuestionEN, &q.QuestionVI,
			&q.Is6520, &q.IsDynamic); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		index[q.QuestionNumber] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	answerRows, err := s.db.Query(
		`SELECT question_number, locale, answer
		 FROM question_answers ORDER BY question_number, locale, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	defer answerRows.Close()

	for answerRows.Next() {
		var number int
		var locale, answer string
		if err := answerRows.Scan(&number, &locale, &answer); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		i, ok := index[number]
		if !ok {
			continue
		}
		if models.Locale(locale) == models.LocaleEnglish {
			questions[i].AnswersEN = append(questions[i].AnswersEN, answer)
		} else {
			questions[i].AnswersVI = append(questions[i].AnswersVI, answer)
		}
	}
	return questions, answerRows.Err()
}

// Seed inserts the full catalog in one transaction. Called once, when the
// questions table is empty.
func (s *Store) Seed(questions []models.Question) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	insertQuestion, err := tx.Prepare(
		`INSERT INTO questions (question_number, category, question_en, question_vi, is_65_20, is_dynamic)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare question insert: %w", err)
	}
	defer insertQuestion.Close()

	insertAnswer, err := tx.Prepare(
		`INSERT INTO question_answers (question_number, locale, position, answer)
		 VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare answer insert: %w", err)
	}
	defer insertAnswer.Close()

	for _, q := range questions {
		if _, err := insertQuestion.Exec(q.QuestionNumber, q.Category, q.QuestionEN, q.QuestionVI,
			q.Is6520, q.IsDynamic); err != nil {
			return fmt.Errorf("insert question %d: %w", q.QuestionNumber, err)
		}
		for i, a := range q.AnswersEN {
			if _, err := insertAnswer.Exec(q.QuestionNumber, models.LocaleEnglish, i, a); err != nil {
				return fmt.Errorf("insert answer for question %d: %w", q.QuestionNumber, err)
			}
		}
		for i, a := range q.AnswersVI {
			if _, err := insertAnswer.Exec(q.QuestionNumber, models.LocaleVietnamese, i, a); err != nil {
				return fmt.Errorf("insert answer for question %d: %w", q.QuestionNumber, err)
			}
		}
	}

	return tx.Commit()
}

// ReplaceAnswers swaps out one question's answer list for a locale.
// Only the dynamic-answer refresher calls this; the rest of the catalog
// stays immutable.
func (s *Store) ReplaceAnswers(questionNumber int, locale models.Locale, answers []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace answers: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM question_answers WHERE question_number = ? AND locale = ?`,
		questionNumber, locale,
	); err != nil {
		return fmt.Errorf("clear answers for question %d: %w", questionNumber, err)
	}

	for i, a := range answers {
		if _, err := tx.Exec(
			`INSERT INTO question_answers (question_number, locale, position, answer)
			 VALUES (?, ?, ?, ?)`,
			questionNumber, locale, i, a,
		); err != nil {
			return fmt.Errorf("insert answer for question %d: %w", questionNumber, err)
		}
	}

	return tx.Commit()
}

// ── Bookmarks ────────────────────────────────────────────

func (s *Store) AddBookmark(questionNumber int, note string) error {
	_, err := s.db.Exec(
		`INSERT INTO bookmarks (question_number, note) VALUES (?, ?)
		 ON CONFLICT (question_number) DO UPDATE SET note = excluded.note`,
		questionNumber, note,
	)
	return err
}

func (s *Store) RemoveBookmark(questionNumber int) error {
	_, err := s.db.Exec(`DELETE FROM bookmarks WHERE question_number = ?`, questionNumber)
	return err
}

func (s *Store) ListBookmarks() ([]models.Bookmark, error) {
	rows, err := s.db.Query(
		`SELECT question_number, COALESCE(note, ''), created_at
		 FROM bookmarks ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.QuestionNumber, &b.Note, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}
