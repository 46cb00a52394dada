package models

import "time"

// ── Progress Signals ─────────────────────────────────────

// ProgressSignals is the aggregate bundle the achievement rules evaluate.
// Callers assemble it from the difficulty, exam, scheduler and streak
// stores before invoking the achievement rules.
type ProgressSignals struct {
	QuestionsStudied   int                  `json:"questions_studied"`
	TestsCompleted     int                  `json:"tests_completed"`
	TestsPassed        int                  `json:"tests_passed"`
	PerfectTests       int                  `json:"perfect_tests"`
	SeniorTestsPassed  int                  `json:"senior_tests_passed"`
	FlashcardsReviewed int                  `json:"flashcards_reviewed"`
	CurrentStreak      int                  `json:"current_streak"`
	LongestStreak      int                  `json:"longest_streak"`
	CategoryMastery    map[Category]float64 `json:"category_mastery"` // percent 0-100
}

// ── Achievement State ────────────────────────────────────

type UnlockedAchievement struct {
	ID       string    `json:"id"`
	EarnedAt time.Time `json:"earned_at"`
	Viewed   bool      `json:"viewed"`
}

// AchievementStatus is the singleton gamification snapshot: the monotonic
// unlocked set, monotonically non-decreasing XP, and the level derived
// from XP via the fixed threshold table.
type AchievementStatus struct {
	Unlocked        []UnlockedAchievement `json:"unlocked"`
	NewAchievements []string              `json:"new_achievements"`
	TotalXP         int                   `json:"total_xp"`
	Level           int                   `json:"level"`
	LevelProgress   int                   `json:"level_progress"` // percent toward next level
}
