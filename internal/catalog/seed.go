package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/civics-prep/backend/internal/models"
)

//go:embed data/questions.json
var seedFS embed.FS

type seedFile struct {
	Questions []models.Question `json:"questions"`
}

// LoadSeed parses the embedded 2020 civics catalog.
func LoadSeed() ([]models.Question, error) {
	raw, err := seedFS.ReadFile("data/questions.json")
	if err != nil {
		return nil, fmt.Errorf("read seed data: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return f.Questions, nil
}

// ValidateCatalog enforces the catalog invariants: the full 2020 item
// bank, stable unique question numbers, exactly the fixed 65/20 set, a
// known category and at least one answer per locale on every question.
func ValidateCatalog(questions []models.Question) error {
	if len(questions) != models.CatalogSize {
		return fmt.Errorf("catalog has %d questions, want %d", len(questions), models.CatalogSize)
	}

	seen := make(map[int]bool, len(questions))
	senior := 0
	for _, q := range questions {
		if q.QuestionNumber < 1 || q.QuestionNumber > models.CatalogSize {
			return fmt.Errorf("question number %d out of range 1..%d", q.QuestionNumber, models.CatalogSize)
		}
		if seen[q.QuestionNumber] {
			return fmt.Errorf("duplicate question number %d", q.QuestionNumber)
		}
		seen[q.QuestionNumber] = true

		if !models.ValidCategories[q.Category] {
			return fmt.Errorf("question %d has unknown category %q", q.QuestionNumber, q.Category)
		}
		if len(q.AnswersEN) == 0 || len(q.AnswersVI) == 0 {
			return fmt.Errorf("question %d is missing answers", q.QuestionNumber)
		}
		if q.Is6520 {
			senior++
		}
	}

	if senior != models.SeniorSetSize {
		return fmt.Errorf("catalog flags %d senior questions, want %d", senior, models.SeniorSetSize)
	}
	return nil
}
