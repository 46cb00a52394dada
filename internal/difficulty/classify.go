package difficulty

import (
	"sort"

	"github.com/civics-prep/backend/internal/models"
)

// Classification bands on the incorrect-answer ratio:
//
//	score <  0.25        → easy
//	0.25 <= score <= 0.6 → medium
//	score >  0.6         → hard
//
// A ratio of exactly 0.25 (e.g. 3 correct, 1 incorrect) is medium; the
// easy comparison is strict.
const (
	easyUpperBound   = 0.25
	mediumUpperBound = 0.6
)

// Score returns the incorrect-answer ratio for a record, 0 when unseen.
func Score(r *models.DifficultyRecord) float64 {
	total := r.TimesCorrect + r.TimesIncorrect
	if total == 0 {
		return 0
	}
	return float64(r.TimesIncorrect) / float64(total)
}

// Classify maps a record to its difficulty tier. A nil record or one with
// no attempts is unrated, never an error.
func Classify(r *models.DifficultyRecord) models.DifficultyLevel {
	if r == nil || r.TimesCorrect+r.TimesIncorrect == 0 {
		return models.DifficultyUnrated
	}

	score := Score(r)
	switch {
	case score < easyUpperBound:
		return models.DifficultyEasy
	case score <= mediumUpperBound:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// SortHardestFirst orders records by descending difficulty score for
// remediation queues. Ties keep the lower question number first so the
// ordering is stable across calls.
func SortHardestFirst(records []models.DifficultyRecord) {
	sort.Slice(records, func(i, j int) bool {
		si, sj := Score(&records[i]), Score(&records[j])
		if si != sj {
			return si > sj
		}
		return records[i].QuestionNumber < records[j].QuestionNumber
	})
}
