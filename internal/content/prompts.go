package content

import (
	"fmt"
	"strings"

	"github.com/civics-prep/backend/internal/models"
)

// RefreshSystemPrompt instructs the model to act as a factual lookup for
// current U.S. officeholders and return strict JSON.
func RefreshSystemPrompt() string {
	return `You are a factual research assistant maintaining a study guide for the U.S. naturalization civics test (2020 version). Some civics questions have answers that change over time: the current President, Vice President, Speaker of the House, Chief Justice, the user's state governor and senators, and similar officeholder questions.

Your job is to provide the CURRENT correct answers for the questions you are given, exactly as a USCIS officer would accept them today.

Rules:
- Give the answer as it would be spoken in the interview: the person's name, or the standard short phrasing USCIS publishes.
- Provide each answer in English AND in Vietnamese. The Vietnamese translation must keep proper names unchanged and translate only the surrounding phrasing.
- If a question lists multiple acceptable answers, include all of them.
- If you are not certain of the current answer, omit that question entirely rather than guessing.

You must respond with valid JSON only, in this exact shape. No markdown, no explanation outside the JSON:

{"answers": [{"question_number": 28, "answers_en": ["..."], "answers_vi": ["..."]}]}`
}

// BuildRefreshPrompt lists the dynamic questions needing current answers.
func BuildRefreshPrompt(questions []models.Question) string {
	var b strings.Builder
	b.WriteString("Provide the current answers for these civics questions:\n\n")
	for i := range questions {
		q := &questions[i]
		fmt.Fprintf(&b, "Question %d: %s\n", q.QuestionNumber, q.QuestionEN)
		fmt.Fprintf(&b, "  (Vietnamese: %s)\n", q.QuestionVI)
	}
	b.WriteString("\nReturn JSON with one entry per question you are certain about.")
	return b.String()
}
