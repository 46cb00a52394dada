package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RefreshedAnswers is the parsed model response.
type RefreshedAnswers struct {
	Answers []RefreshedEntry `json:"answers"`
}

// RefreshedEntry carries the current answers for one dynamic question,
// in both locales.
type RefreshedEntry struct {
	QuestionNumber int      `json:"question_number"`
	AnswersEN      []string `json:"answers_en"`
	AnswersVI      []string `json:"answers_vi"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseResponse decodes and validates a refresh response. An empty answer
// list is valid; the model omits questions it is unsure about.
func ParseResponse(responseBody string) (*RefreshedAnswers, error) {
	cleaned := stripCodeFences(responseBody)

	var parsed RefreshedAnswers
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateAnswers(&parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func validateAnswers(parsed *RefreshedAnswers) error {
	var errs []string
	seen := make(map[int]bool)

	for i, entry := range parsed.Answers {
		if entry.QuestionNumber <= 0 {
			errs = append(errs, fmt.Sprintf("entry %d: missing question_number", i))
			continue
		}
		if seen[entry.QuestionNumber] {
			errs = append(errs, fmt.Sprintf("question %d: duplicate entry", entry.QuestionNumber))
		}
		seen[entry.QuestionNumber] = true

		if len(entry.AnswersEN) == 0 {
			errs = append(errs, fmt.Sprintf("question %d: no English answers", entry.QuestionNumber))
		}
		if len(entry.AnswersVI) == 0 {
			errs = append(errs, fmt.Sprintf("question %d: no Vietnamese answers", entry.QuestionNumber))
		}
		for _, a := range entry.AnswersEN {
			if strings.TrimSpace(a) == "" {
				errs = append(errs, fmt.Sprintf("question %d: blank English answer", entry.QuestionNumber))
				break
			}
		}
		for _, a := range entry.AnswersVI {
			if strings.TrimSpace(a) == "" {
				errs = append(errs, fmt.Sprintf("question %d: blank Vietnamese answer", entry.QuestionNumber))
				break
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
