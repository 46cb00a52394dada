package scheduler

import (
	"testing"

	"github.com/civics-prep/backend/internal/models"
)

func TestUpdateEaseFactor_NeverLeavesBounds(t *testing.T) {
	for _, ef := range []float64{1.3, 1.7, 2.0, 2.5} {
		for q := 0; q <= 5; q++ {
			got := UpdateEaseFactor(ef, q)
			if got < models.MinEaseFactor || got > models.MaxEaseFactor {
				t.Errorf("UpdateEaseFactor(%.2f, %d) = %.4f, outside [%.1f, %.1f]",
					ef, q, got, models.MinEaseFactor, models.MaxEaseFactor)
			}
		}
	}
}

func TestUpdateEaseFactor_PerfectRecallCapsAtMax(t *testing.T) {
	got := UpdateEaseFactor(2.5, 5)
	if got != models.MaxEaseFactor {
		t.Errorf("expected ease factor capped at %.1f, got %.4f", models.MaxEaseFactor, got)
	}
}

func TestUpdateEaseFactor_RepeatedFailuresFloorAtMin(t *testing.T) {
	ef := 2.5
	for i := 0; i < 20; i++ {
		ef = UpdateEaseFactor(ef, 0)
	}
	if ef != models.MinEaseFactor {
		t.Errorf("expected ease factor floored at %.1f, got %.4f", models.MinEaseFactor, ef)
	}
}

func TestNewCard_FirstReviewPass(t *testing.T) {
	card := NewCard(7, 4, "2026-03-10")

	if card.EaseFactor != models.InitialEaseFactor {
		t.Errorf("expected initial ease factor %.1f, got %.4f", models.InitialEaseFactor, card.EaseFactor)
	}
	if card.IntervalDays != 1 {
		t.Errorf("expected interval 1, got %d", card.IntervalDays)
	}
	if card.Repetitions != 1 {
		t.Errorf("expected repetitions 1, got %d", card.Repetitions)
	}
	if card.NextReviewDate != "2026-03-11" {
		t.Errorf("expected next review 2026-03-11, got %s", card.NextReviewDate)
	}
}

func TestNewCard_FirstReviewFail(t *testing.T) {
	card := NewCard(7, 2, "2026-03-10")

	if card.Repetitions != 0 {
		t.Errorf("expected repetitions 0 after failed first review, got %d", card.Repetitions)
	}
	if card.IntervalDays != 1 {
		t.Errorf("expected interval 1, got %d", card.IntervalDays)
	}
}

func TestApply_FailResetsRepetitions(t *testing.T) {
	card := models.ReviewCard{
		QuestionNumber: 3,
		EaseFactor:     2.5,
		IntervalDays:   30,
		Repetitions:    5,
		NextReviewDate: "2026-03-10",
		LastReviewDate: "2026-02-08",
	}

	updated := Apply(card, 1, "2026-03-10")

	if updated.Repetitions != 0 {
		t.Errorf("expected repetitions reset to 0, got %d", updated.Repetitions)
	}
	if updated.IntervalDays != 1 {
		t.Errorf("expected interval reset to 1, got %d", updated.IntervalDays)
	}
	if updated.NextReviewDate != "2026-03-11" {
		t.Errorf("expected next review tomorrow, got %s", updated.NextReviewDate)
	}
	if updated.EaseFactor >= card.EaseFactor {
		t.Errorf("expected ease factor to drop after a lapse, got %.4f", updated.EaseFactor)
	}
}

func TestApply_ConsecutivePassesGrowIntervalMonotonically(t *testing.T) {
	card := NewCard(1, 5, "2026-01-01")
	date := "2026-01-01"

	prev := card.IntervalDays
	for i := 0; i < 10; i++ {
		date = card.NextReviewDate
		card = Apply(card, 5, date)
		if card.IntervalDays < prev {
			t.Fatalf("interval shrank on pass %d: %d -> %d", i, prev, card.IntervalDays)
		}
		prev = card.IntervalDays
	}

	if card.Repetitions != 11 {
		t.Errorf("expected 11 repetitions, got %d", card.Repetitions)
	}
}

func TestApply_EarlySpacingIsFixed(t *testing.T) {
	// A card climbing back from a lapse takes the fixed 3-day step no
	// matter how low its ease factor is.
	card := models.ReviewCard{QuestionNumber: 1, EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0}
	updated := Apply(card, 3, "2026-05-01")
	if updated.IntervalDays != 3 {
		t.Errorf("expected interval 3 after first pass, got %d", updated.IntervalDays)
	}
}

func TestIsPass(t *testing.T) {
	tests := []struct {
		quality int
		want    bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{5, true},
	}
	for _, tt := range tests {
		if got := IsPass(tt.quality); got != tt.want {
			t.Errorf("IsPass(%d) = %v, want %v", tt.quality, got, tt.want)
		}
	}
}

func TestIsMastered(t *testing.T) {
	mastered := &models.ReviewCard{Repetitions: 5, IntervalDays: 30}
	if !IsMastered(mastered) {
		t.Error("expected card with 5 repetitions and 30 day interval to be mastered")
	}

	young := &models.ReviewCard{Repetitions: 5, IntervalDays: 14}
	if IsMastered(young) {
		t.Error("card with a short interval should not be mastered")
	}

	fresh := &models.ReviewCard{Repetitions: 2, IntervalDays: 60}
	if IsMastered(fresh) {
		t.Error("card with few repetitions should not be mastered")
	}
}

func TestClampQuality(t *testing.T) {
	if got := ClampQuality(-3); got != models.QualityMin {
		t.Errorf("ClampQuality(-3) = %d, want %d", got, models.QualityMin)
	}
	if got := ClampQuality(9); got != models.QualityMax {
		t.Errorf("ClampQuality(9) = %d, want %d", got, models.QualityMax)
	}
	if got := ClampQuality(4); got != 4 {
		t.Errorf("ClampQuality(4) = %d, want 4", got)
	}
}
