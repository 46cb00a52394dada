package scheduler

import (
	"math"

	"github.com/civics-prep/backend/internal/dates"
	"github.com/civics-prep/backend/internal/models"
)

// intervalProgression is the fixed base interval (days) looked up by the
// repetition count after a passing review; past the end the last entry is
// reused. Entries 0 and 1 (1 and 3 days) are applied as-is; later entries
// are scaled by the ease factor.
var intervalProgression = []int{1, 3, 7, 14, 30, 60, 120, 240}

// ClampQuality forces a grade into the 0..5 scale; out-of-range input is
// never stored.
func ClampQuality(quality int) int {
	if quality < models.QualityMin {
		return models.QualityMin
	}
	if quality > models.QualityMax {
		return models.QualityMax
	}
	return quality
}

// IsPass reports whether a grade counts as a successful recall.
func IsPass(quality int) bool {
	return quality >= models.QualityPassThreshold
}

// UpdateEaseFactor applies the SM-2 ease delta for a grade. The result is
// clamped to [MinEaseFactor, MaxEaseFactor] so no quality sequence can
// push the factor out of the band.
func UpdateEaseFactor(ef float64, quality int) float64 {
	q := float64(ClampQuality(quality))
	ef += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Min(math.Max(ef, models.MinEaseFactor), models.MaxEaseFactor)
}

// NextInterval returns the review interval (days) for a card that has
// reached the given repetition count with the given ease factor.
func NextInterval(repetitions int, ef float64) int {
	idx := repetitions
	if idx >= len(intervalProgression) {
		idx = len(intervalProgression) - 1
	}
	base := intervalProgression[idx]
	if repetitions <= 1 {
		// Fixed 1-day and 3-day steps while the card is young,
		// regardless of ease.
		return base
	}

	interval := int(math.Round(float64(base) * ef))
	if interval < 1 {
		interval = 1
	}
	return interval
}

// NewCard creates a question's card from its first-ever review: ease
// starts at the SM-2 default and the first interval is one day whether or
// not the recall passed.
func NewCard(questionNumber, quality int, today string) models.ReviewCard {
	repetitions := 0
	if IsPass(quality) {
		repetitions = 1
	}
	return models.ReviewCard{
		QuestionNumber: questionNumber,
		EaseFactor:     models.InitialEaseFactor,
		IntervalDays:   1,
		Repetitions:    repetitions,
		LastReviewDate: today,
		NextReviewDate: dates.AddDays(today, 1),
	}
}

// Apply folds one graded review into an existing card. The ease factor is
// updated on every review; a lapse (quality < 3) hard-resets repetitions
// and interval while keeping the updated ease.
func Apply(card models.ReviewCard, quality int, today string) models.ReviewCard {
	quality = ClampQuality(quality)
	card.EaseFactor = UpdateEaseFactor(card.EaseFactor, quality)

	if IsPass(quality) {
		card.Repetitions++
		card.IntervalDays = NextInterval(card.Repetitions, card.EaseFactor)
	} else {
		card.Repetitions = 0
		card.IntervalDays = 1
	}

	card.LastReviewDate = today
	card.NextReviewDate = dates.AddDays(today, card.IntervalDays)
	return card
}

// IsMastered reports whether a card has settled into long-interval
// territory: at least five successful repetitions and a month-plus
// interval.
func IsMastered(card *models.ReviewCard) bool {
	return card.Repetitions >= 5 && card.IntervalDays >= 30
}
