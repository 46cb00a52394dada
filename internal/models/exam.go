package models

import "time"

// ── Test Modes ───────────────────────────────────────────

type TestMode string

const (
	// ModeStandard draws 20 questions from the full catalog; pass is 12/20.
	ModeStandard TestMode = "standard"
	// ModeSenior is the 65/20 variant: 10 questions drawn from the 20
	// flagged senior questions; pass is 6/10.
	ModeSenior TestMode = "senior"
)

const (
	StandardTestSize      = 20
	StandardPassThreshold = 12
	SeniorTestSize        = 10
	SeniorPassThreshold   = 6
)

// TestSize returns how many questions a test in the given mode contains.
func (m TestMode) TestSize() int {
	if m == ModeSenior {
		return SeniorTestSize
	}
	return StandardTestSize
}

// PassThreshold returns the minimum correct count for a passing result.
func (m TestMode) PassThreshold() int {
	if m == ModeSenior {
		return SeniorPassThreshold
	}
	return StandardPassThreshold
}

// ── Test Session ─────────────────────────────────────────

// TestSession is the in-memory state of one test attempt. The question
// order is fixed at generation time. Once IsComplete is set by submission
// the session is frozen and further answer mutations are rejected.
type TestSession struct {
	ID           string         `json:"id"`
	Mode         TestMode       `json:"mode"`
	Questions    []Question     `json:"questions"`
	CurrentIndex int            `json:"current_index"`
	Answers      map[int]string `json:"answers"` // question_number → answer text
	// ResponseTimes accumulates per-question answer time for the
	// difficulty engine; keyed like Answers.
	ResponseTimes map[int]int64 `json:"-"`
	StartTime     time.Time     `json:"start_time"`
	IsComplete    bool          `json:"is_complete"`
}

// TestResult is the graded outcome of a completed session. It is derived,
// not stored as an entity; the exam store folds it into result history.
type TestResult struct {
	Correct            int   `json:"correct"`
	Total              int   `json:"total"`
	Passed             bool  `json:"passed"`
	TimeSpentMs        int64 `json:"time_spent_ms"`
	CorrectQuestions   []int `json:"correct_questions"`
	IncorrectQuestions []int `json:"incorrect_questions"`
}

// ── Persisted Result History ─────────────────────────────

type TestRecord struct {
	ID                 string    `json:"id"`
	Mode               TestMode  `json:"mode"`
	Correct            int       `json:"correct"`
	Total              int       `json:"total"`
	Passed             bool      `json:"passed"`
	TimeSpentMs        int64     `json:"time_spent_ms"`
	CorrectQuestions   []int     `json:"correct_questions"`
	IncorrectQuestions []int     `json:"incorrect_questions"`
	TakenAt            time.Time `json:"taken_at"`
}

type TestStats struct {
	TestsCompleted    int     `json:"tests_completed"`
	TestsPassed       int     `json:"tests_passed"`
	PerfectTests      int     `json:"perfect_tests"`
	SeniorTestsPassed int     `json:"senior_tests_passed"`
	BestScore         int     `json:"best_score"`
	AverageScore      float64 `json:"average_score"`
}

// ── Request/Response Types ───────────────────────────────

type StartTestRequest struct {
	Mode   TestMode `json:"mode"`
	Locale string   `json:"locale,omitempty"`
}

type AnswerRequest struct {
	QuestionNumber int    `json:"question_number"`
	Answer         string `json:"answer"`
	TimeSpentMs    int64  `json:"time_spent_ms,omitempty"`
}

type NavigateRequest struct {
	Index int `json:"index"`
}

type SubmitTestResponse struct {
	Result               TestResult `json:"result"`
	AchievementsUnlocked []string   `json:"achievements_unlocked"`
	XPAwarded            int        `json:"xp_awarded"`
	CurrentStreak        int        `json:"current_streak"`
}
