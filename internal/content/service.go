package content

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/civics-prep/backend/internal/catalog"
)

// RefreshResult summarizes one refresh run.
type RefreshResult struct {
	Model        string    `json:"model"`
	Updated      []int     `json:"updated"`
	Skipped      []int     `json:"skipped"`
	PromptTokens int       `json:"prompt_tokens"`
	OutputTokens int       `json:"output_tokens"`
	RefreshedAt  time.Time `json:"refreshed_at"`
}

// Service refreshes the time-sensitive (officeholder) answers of the
// catalog's dynamic questions. Only questions flagged dynamic can ever be
// rewritten; the rest of the catalog is immutable.
type Service struct {
	llm     LLMClient
	model   string
	catalog *catalog.Service
}

func NewService(cat *catalog.Service) *Service {
	llm, model := NewClient()
	return &Service{llm: llm, model: model, catalog: cat}
}

// Refresh asks the model for the current answers to every dynamic
// question and writes back the ones it returned. A question the model
// omitted keeps its previous answers.
func (s *Service) Refresh(ctx context.Context) (*RefreshResult, error) {
	dynamic := s.catalog.Dynamic()
	result := &RefreshResult{
		Model:       s.model,
		Updated:     []int{},
		Skipped:     []int{},
		RefreshedAt: time.Now(),
	}
	if len(dynamic) == 0 {
		return result, nil
	}

	resp, err := s.llm.Generate(ctx, RefreshSystemPrompt(), BuildRefreshPrompt(dynamic))
	if err != nil {
		return nil, fmt.Errorf("refresh dynamic answers: %w", err)
	}
	result.PromptTokens = resp.PromptTokens
	result.OutputTokens = resp.OutputTokens

	parsed, err := ParseResponse(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("refresh dynamic answers: %w", err)
	}

	byNumber := make(map[int]bool, len(dynamic))
	for i := range dynamic {
		byNumber[dynamic[i].QuestionNumber] = true
	}

	returned := make(map[int]bool, len(parsed.Answers))
	for _, entry := range parsed.Answers {
		if !byNumber[entry.QuestionNumber] {
			log.Printf("[content] refresh returned non-dynamic question %d, ignoring", entry.QuestionNumber)
			continue
		}
		if err := s.catalog.UpdateDynamicAnswers(entry.QuestionNumber, entry.AnswersEN, entry.AnswersVI); err != nil {
			return result, fmt.Errorf("update question %d: %w", entry.QuestionNumber, err)
		}
		returned[entry.QuestionNumber] = true
		result.Updated = append(result.Updated, entry.QuestionNumber)
	}

	for i := range dynamic {
		if !returned[dynamic[i].QuestionNumber] {
			result.Skipped = append(result.Skipped, dynamic[i].QuestionNumber)
		}
	}

	log.Printf("[content] refreshed %d of %d dynamic questions", len(result.Updated), len(dynamic))
	return result, nil
}
