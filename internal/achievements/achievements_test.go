package achievements

import (
	"testing"

	"github.com/civics-prep/backend/internal/models"
)

func TestQualified_EmptyProgress(t *testing.T) {
	if got := Qualified(&models.ProgressSignals{}); len(got) != 0 {
		t.Errorf("no progress should qualify for nothing, got %v", got)
	}
}

func TestQualified_StudyMilestones(t *testing.T) {
	got := Qualified(&models.ProgressSignals{QuestionsStudied: 50})

	want := map[string]bool{"first_question": true, "questions_50": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d achievements, got %v", len(want), got)
	}
	for _, key := range got {
		if !want[key] {
			t.Errorf("unexpected achievement %s", key)
		}
	}
}

func TestQualified_FullCatalogStudied(t *testing.T) {
	got := Qualified(&models.ProgressSignals{QuestionsStudied: models.CatalogSize})
	if !contains(got, "all_questions") {
		t.Errorf("studying all %d questions should unlock all_questions, got %v", models.CatalogSize, got)
	}
}

func TestQualified_TestMilestones(t *testing.T) {
	sig := &models.ProgressSignals{
		TestsCompleted:    10,
		TestsPassed:       3,
		PerfectTests:      1,
		SeniorTestsPassed: 1,
	}
	got := Qualified(sig)

	for _, key := range []string{"first_test", "tests_10", "first_pass", "perfect_test", "senior_pass"} {
		if !contains(got, key) {
			t.Errorf("expected %s in %v", key, got)
		}
	}
}

func TestQualified_StreakTiers(t *testing.T) {
	got := Qualified(&models.ProgressSignals{CurrentStreak: 7})
	if !contains(got, "streak_3") || !contains(got, "streak_7") {
		t.Errorf("a 7-day streak should unlock both lower tiers, got %v", got)
	}
	if contains(got, "streak_30") {
		t.Errorf("a 7-day streak should not unlock streak_30, got %v", got)
	}
}

func TestQualified_CategoryMastery(t *testing.T) {
	sig := &models.ProgressSignals{
		CategoryMastery: map[models.Category]float64{
			models.CategoryGovernment: 92.5,
			models.CategoryHistory:    89.9,
		},
	}
	got := Qualified(sig)

	if !contains(got, "gov_master") {
		t.Errorf("92.5%% government mastery should unlock gov_master, got %v", got)
	}
	if contains(got, "history_master") {
		t.Errorf("89.9%% history mastery is below the threshold, got %v", got)
	}
}

func TestQualified_KeysAllDefined(t *testing.T) {
	sig := &models.ProgressSignals{
		QuestionsStudied:   1000,
		TestsCompleted:     1000,
		TestsPassed:        1000,
		PerfectTests:       1000,
		SeniorTestsPassed:  1000,
		FlashcardsReviewed: 1000,
		CurrentStreak:      1000,
		CategoryMastery: map[models.Category]float64{
			models.CategoryGovernment: 100,
			models.CategoryHistory:    100,
			models.CategorySymbols:    100,
		},
	}
	got := Qualified(sig)

	if len(got) != len(Defs) {
		t.Errorf("maxed progress should qualify for all %d achievements, got %d", len(Defs), len(got))
	}
	for _, key := range got {
		if _, ok := Defs[key]; !ok {
			t.Errorf("Qualified returned undefined key %s", key)
		}
	}
}

func TestTotalXPFor(t *testing.T) {
	got := TotalXPFor([]string{"first_question", "first_test"})
	want := Defs["first_question"].XP + Defs["first_test"].XP
	if got != want {
		t.Errorf("TotalXPFor = %d, want %d", got, want)
	}

	if TotalXPFor([]string{"no_such_key"}) != 0 {
		t.Error("unknown keys should award nothing")
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
