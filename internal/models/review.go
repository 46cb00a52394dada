package models

// ── Spaced-Repetition Cards ──────────────────────────────

// Quality grade bounds for a review (SM-2 self-assessment scale).
const (
	QualityMin = 0
	QualityMax = 5
	// QualityPassThreshold separates a passing recall (>= 3) from a lapse.
	QualityPassThreshold = 3
)

// Ease factor bounds. The factor never leaves this band regardless of the
// quality sequence applied.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	InitialEaseFactor = 2.5
)

// ReviewCard is the per-question spaced-repetition state. One card exists
// per reviewed question; the repetitions/interval/ease triple is the whole
// state machine, with no explicit status enum. Dates are calendar-day
// keys ("2006-01-02", device-local).
type ReviewCard struct {
	QuestionNumber int     `json:"question_number"`
	EaseFactor     float64 `json:"ease_factor"`
	IntervalDays   int     `json:"interval_days"`
	Repetitions    int     `json:"repetitions"`
	NextReviewDate string  `json:"next_review_date"`
	LastReviewDate string  `json:"last_review_date"`
}

// ── Request/Response Types ───────────────────────────────

type ReviewRequest struct {
	QuestionNumber int `json:"question_number"`
	Quality        int `json:"quality"`
}

type ReviewResponse struct {
	Card                 ReviewCard `json:"card"`
	AchievementsUnlocked []string   `json:"achievements_unlocked"`
}

type ReviewStats struct {
	TotalCards    int `json:"total_cards"`
	DueToday      int `json:"due_today"`
	MasteredCards int `json:"mastered_cards"`
	TotalReviews  int `json:"total_reviews"`
}
