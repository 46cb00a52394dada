package models

// ── Difficulty Classification ────────────────────────────

type DifficultyLevel string

const (
	DifficultyUnrated DifficultyLevel = "unrated"
	DifficultyEasy    DifficultyLevel = "easy"
	DifficultyMedium  DifficultyLevel = "medium"
	DifficultyHard    DifficultyLevel = "hard"
)

// DifficultyRecord is the per-question rolling attempt statistics. Records
// are created lazily on first attempt and only removed by a bulk reset.
// Invariant: Attempts == TimesCorrect + TimesIncorrect.
type DifficultyRecord struct {
	QuestionNumber      int   `json:"question_number"`
	TimesCorrect        int   `json:"times_correct"`
	TimesIncorrect      int   `json:"times_incorrect"`
	TotalResponseTimeMs int64 `json:"total_response_time_ms"`
	Attempts            int   `json:"attempts"`
}

// ── Request/Response Types ───────────────────────────────

type AttemptRequest struct {
	QuestionNumber int   `json:"question_number"`
	Correct        bool  `json:"correct"`
	TimeSpentMs    int64 `json:"time_spent_ms,omitempty"`
}

type DifficultyEntry struct {
	Record DifficultyRecord `json:"record"`
	Level  DifficultyLevel  `json:"level"`
	Score  float64          `json:"score"`
}

type StudyAttemptResponse struct {
	Entry                DifficultyEntry `json:"entry"`
	CurrentStreak        int             `json:"current_streak"`
	AchievementsUnlocked []string        `json:"achievements_unlocked"`
}
