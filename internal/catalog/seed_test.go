package catalog

import (
	"testing"

	"github.com/civics-prep/backend/internal/models"
)

func TestLoadSeed_CatalogInvariants(t *testing.T) {
	questions, err := LoadSeed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateCatalog(questions); err != nil {
		t.Fatalf("embedded catalog is invalid: %v", err)
	}
}

func TestLoadSeed_DynamicQuestionsHavePlaceholders(t *testing.T) {
	questions, err := LoadSeed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dynamic := 0
	for _, q := range questions {
		if q.IsDynamic {
			dynamic++
		}
	}
	if dynamic == 0 {
		t.Error("expected the catalog to flag officeholder questions as dynamic")
	}
}

func TestValidateCatalog_RejectsWrongCount(t *testing.T) {
	questions, err := LoadSeed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateCatalog(questions[:100]); err == nil {
		t.Error("expected a truncated catalog to fail validation")
	}
}

func TestValidateCatalog_RejectsDuplicateNumber(t *testing.T) {
	questions, err := LoadSeed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mutated := make([]models.Question, len(questions))
	copy(mutated, questions)
	mutated[1].QuestionNumber = mutated[0].QuestionNumber

	if err := ValidateCatalog(mutated); err == nil {
		t.Error("expected duplicate question numbers to fail validation")
	}
}

func TestValidateCatalog_RejectsWrongSeniorCount(t *testing.T) {
	questions, err := LoadSeed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mutated := make([]models.Question, len(questions))
	copy(mutated, questions)
	for i := range mutated {
		if !mutated[i].Is6520 {
			mutated[i].Is6520 = true
			break
		}
	}

	if err := ValidateCatalog(mutated); err == nil {
		t.Error("expected an oversized senior set to fail validation")
	}
}
