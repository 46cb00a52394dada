package models

// ── Activity Types ───────────────────────────────────────

type ActivityType string

const (
	ActivityStudy     ActivityType = "study"
	ActivityTest      ActivityType = "test"
	ActivityFlashcard ActivityType = "flashcard"
)

var ValidActivityTypes = map[ActivityType]bool{
	ActivityStudy:     true,
	ActivityTest:      true,
	ActivityFlashcard: true,
}

// Daily-goal weighting: one studied question and one flashcard each count
// one unit, a completed test counts ten.
const (
	StudyUnitWeight     = 1
	TestUnitWeight      = 10
	FlashcardUnitWeight = 1
)

// Daily goal bounds (in units).
const (
	MinDailyGoal     = 1
	MaxDailyGoal     = 50
	DefaultDailyGoal = 10
)

// HistoryDays is how many calendar days of DailyProgress are retained;
// the oldest entry is evicted on overflow.
const HistoryDays = 30

// ── Daily Progress ───────────────────────────────────────

// DailyProgress is one calendar day's activity tally. Date is a
// device-local "2006-01-02" key; there is at most one entry per day.
type DailyProgress struct {
	Date               string `json:"date"`
	QuestionsStudied   int    `json:"questions_studied"`
	TestsCompleted     int    `json:"tests_completed"`
	FlashcardsReviewed int    `json:"flashcards_reviewed"`
}

// Units returns the weighted goal units this day's activity is worth.
func (d *DailyProgress) Units() int {
	return d.QuestionsStudied*StudyUnitWeight +
		d.TestsCompleted*TestUnitWeight +
		d.FlashcardsReviewed*FlashcardUnitWeight
}

// ── Streak State ─────────────────────────────────────────

// StreakState is the singleton persisted streak ledger. LastActiveDate is
// "" until the first-ever activity. History holds the most recent
// HistoryDays entries ordered oldest-first; the entry for today doubles as
// todayProgress.
type StreakState struct {
	CurrentStreak    int             `json:"current_streak"`
	LongestStreak    int             `json:"longest_streak"`
	LastActiveDate   string          `json:"last_active_date"`
	TotalDaysStudied int             `json:"total_days_studied"`
	DailyGoal        int             `json:"daily_goal"`
	History          []DailyProgress `json:"history"`
}

// Day returns the history entry for the given date key, or nil.
func (s *StreakState) Day(date string) *DailyProgress {
	for i := range s.History {
		if s.History[i].Date == date {
			return &s.History[i]
		}
	}
	return nil
}

// ── Request/Response Types ───────────────────────────────

type ActivityRequest struct {
	Type  ActivityType `json:"type"`
	Count int          `json:"count"`
}

type SetGoalRequest struct {
	Target int `json:"target"`
}

type StreakStatus struct {
	CurrentStreak    int             `json:"current_streak"`
	LongestStreak    int             `json:"longest_streak"`
	StreakAlive      bool            `json:"streak_alive"`
	TotalDaysStudied int             `json:"total_days_studied"`
	DailyGoal        int             `json:"daily_goal"`
	TodayUnits       int             `json:"today_units"`
	GoalPercent      int             `json:"goal_percent"`
	GoalMet          bool            `json:"goal_met"`
	TodayProgress    DailyProgress   `json:"today_progress"`
	History          []DailyProgress `json:"history"`
}
