package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/civics-prep/backend/internal/models"
)

// ErrNotFound is returned when a question number is not in the catalog.
var ErrNotFound = errors.New("question not found")

// Service serves the immutable question catalog from memory. The backing
// rows are read once at startup (seeding them first if the table is
// empty) and revalidated against the catalog invariants.
type Service struct {
	store     *Store
	questions []models.Question
	byNumber  map[int]int
}

func NewService(store *Store) (*Service, error) {
	count, err := store.CountQuestions()
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	if count == 0 {
		seed, err := LoadSeed()
		if err != nil {
			return nil, err
		}
		if err := ValidateCatalog(seed); err != nil {
			return nil, fmt.Errorf("seed data: %w", err)
		}
		if err := store.Seed(seed); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		log.Printf("[catalog] seeded %d questions", len(seed))
	}

	s := &Service{store: store}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) reload() error {
	questions, err := s.store.LoadAll()
	if err != nil {
		return err
	}
	if err := ValidateCatalog(questions); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	byNumber := make(map[int]int, len(questions))
	for i, q := range questions {
		byNumber[q.QuestionNumber] = i
	}

	s.questions = questions
	s.byNumber = byNumber
	return nil
}

// ── Queries ──────────────────────────────────────────────

// All returns the full catalog in question-number order.
func (s *Service) All() []models.Question {
	return s.questions
}

func (s *Service) ByCategory(category models.Category) []models.Question {
	var out []models.Question
	for _, q := range s.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// Senior returns exactly the 20 canonical 65/20 questions.
func (s *Service) Senior() []models.Question {
	var out []models.Question
	for _, q := range s.questions {
		if q.Is6520 {
			out = append(out, q)
		}
	}
	return out
}

func (s *Service) ByNumber(number int) (*models.Question, error) {
	i, ok := s.byNumber[number]
	if !ok {
		return nil, ErrNotFound
	}
	return &s.questions[i], nil
}

func (s *Service) Dynamic() []models.Question {
	var out []models.Question
	for _, q := range s.questions {
		if q.IsDynamic {
			out = append(out, q)
		}
	}
	return out
}

// Search does a case-insensitive substring match over question and answer
// text in the given locale.
func (s *Service) Search(query string, locale models.Locale) []models.Question {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var out []models.Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Text(locale)), needle) {
			out = append(out, q)
			continue
		}
		for _, a := range q.Answers(locale) {
			if strings.Contains(strings.ToLower(a), needle) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// ── Dynamic Answers ──────────────────────────────────────

// UpdateDynamicAnswers replaces both locales' answers for a dynamic
// question and reloads the in-memory catalog. Non-dynamic questions are
// refused: the rest of the catalog is immutable.
func (s *Service) UpdateDynamicAnswers(questionNumber int, answersEN, answersVI []string) error {
	q, err := s.ByNumber(questionNumber)
	if err != nil {
		return err
	}
	if !q.IsDynamic {
		return fmt.Errorf("question %d is not dynamic", questionNumber)
	}
	if len(answersEN) == 0 || len(answersVI) == 0 {
		return fmt.Errorf("question %d: empty replacement answers", questionNumber)
	}

	if err := s.store.ReplaceAnswers(questionNumber, models.LocaleEnglish, answersEN); err != nil {
		return err
	}
	if err := s.store.ReplaceAnswers(questionNumber, models.LocaleVietnamese, answersVI); err != nil {
		return err
	}
	return s.reload()
}

// ── Bookmarks ────────────────────────────────────────────

func (s *Service) AddBookmark(questionNumber int, note string) error {
	if _, err := s.ByNumber(questionNumber); err != nil {
		return err
	}
	return s.store.AddBookmark(questionNumber, note)
}

func (s *Service) RemoveBookmark(questionNumber int) error {
	return s.store.RemoveBookmark(questionNumber)
}

func (s *Service) Bookmarks() ([]models.Bookmark, error) {
	return s.store.ListBookmarks()
}
