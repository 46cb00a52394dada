package exam

import (
	"strings"

	"github.com/civics-prep/backend/internal/models"
)

// normalizeAnswer folds an answer for comparison: surrounding whitespace
// is ignored and matching is case-insensitive. Diacritics are significant;
// Vietnamese answers must keep their marks.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsAnswerCorrect reports whether the answer matches any accepted answer
// for the question in the given locale. Every listed answer is equally
// acceptable.
func IsAnswerCorrect(q *models.Question, answer string, locale models.Locale) bool {
	got := normalizeAnswer(answer)
	if got == "" {
		return false
	}
	for _, accepted := range q.Answers(locale) {
		if normalizeAnswer(accepted) == got {
			return true
		}
	}
	return false
}

// IsCorrect grades an answer against both locales' accepted lists. The
// real interview accepts an answer in either language, so a test taker
// switching languages mid-test is never marked wrong for it.
func IsCorrect(q *models.Question, answer string) bool {
	return IsAnswerCorrect(q, answer, models.LocaleEnglish) ||
		IsAnswerCorrect(q, answer, models.LocaleVietnamese)
}

// Grade scores a session against its own question set. An unanswered
// question counts as incorrect. Grading is pure; it never mutates the
// session.
func Grade(session *models.TestSession, timeSpentMs int64) models.TestResult {
	result := models.TestResult{
		Total:              len(session.Questions),
		TimeSpentMs:        timeSpentMs,
		CorrectQuestions:   []int{},
		IncorrectQuestions: []int{},
	}

	for i := range session.Questions {
		q := &session.Questions[i]
		answer, answered := session.Answers[q.QuestionNumber]
		if answered && IsCorrect(q, answer) {
			result.Correct++
			result.CorrectQuestions = append(result.CorrectQuestions, q.QuestionNumber)
		} else {
			result.IncorrectQuestions = append(result.IncorrectQuestions, q.QuestionNumber)
		}
	}

	result.Passed = result.Correct >= session.Mode.PassThreshold()
	return result
}
