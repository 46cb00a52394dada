package difficulty

import (
	"fmt"
	"log"

	"github.com/civics-prep/backend/internal/achievements"
	"github.com/civics-prep/backend/internal/models"
	"github.com/civics-prep/backend/internal/streak"
)

// A question counts as mastered once it has at least this many attempts
// and classifies easy. Category mastery percentages feed the achievement
// rules.
const masteryMinAttempts = 2

type Service struct {
	store        *Store
	streaks      *streak.Service
	achievements *achievements.Service
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SetStreakService injects the streak tracker so standalone study attempts
// count as study activity.
func (s *Service) SetStreakService(ss *streak.Service) {
	s.streaks = ss
}

// SetAchievementService injects the achievement engine checked after each
// study attempt.
func (s *Service) SetAchievementService(as *achievements.Service) {
	s.achievements = as
}

// RecordAttempt folds one graded attempt into the question's rolling
// statistics. Callers that run their own streak and achievement fan-out
// (test submission) use this directly.
func (s *Service) RecordAttempt(questionNumber int, correct bool, timeSpentMs int64) error {
	if timeSpentMs < 0 {
		timeSpentMs = 0
	}
	return s.store.RecordAttempt(questionNumber, correct, timeSpentMs)
}

// RecordStudyAttempt records one standalone study answer and fans it out
// to the streak tracker and the achievement engine. Side-effect failures
// are logged; the recorded attempt stands.
func (s *Service) RecordStudyAttempt(questionNumber int, correct bool, timeSpentMs int64) (*models.StudyAttemptResponse, error) {
	if err := s.RecordAttempt(questionNumber, correct, timeSpentMs); err != nil {
		return nil, err
	}

	entry, err := s.Entry(questionNumber)
	if err != nil {
		return nil, err
	}

	resp := &models.StudyAttemptResponse{
		Entry:                *entry,
		AchievementsUnlocked: []string{},
	}

	if s.streaks != nil {
		status, err := s.streaks.RecordActivity(models.ActivityStudy, 1)
		if err != nil {
			log.Printf("[difficulty] failed to record study activity: %v", err)
		} else {
			resp.CurrentStreak = status.CurrentStreak
		}
	}

	if s.achievements != nil {
		unlocked, err := s.achievements.CheckProgress()
		if err != nil {
			log.Printf("[difficulty] achievement check failed: %v", err)
		}
		if unlocked != nil {
			resp.AchievementsUnlocked = unlocked
		}
	}

	return resp, nil
}

// Entry returns the record plus derived classification for one question.
// Unseen questions get a zero record classified unrated.
func (s *Service) Entry(questionNumber int) (*models.DifficultyEntry, error) {
	record, err := s.store.Get(questionNumber)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &models.DifficultyRecord{QuestionNumber: questionNumber}
	}
	return &models.DifficultyEntry{
		Record: *record,
		Level:  Classify(record),
		Score:  Score(record),
	}, nil
}

func (s *Service) Entries() ([]models.DifficultyEntry, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]models.DifficultyEntry, 0, len(records))
	for i := range records {
		entries = append(entries, models.DifficultyEntry{
			Record: records[i],
			Level:  Classify(&records[i]),
			Score:  Score(&records[i]),
		})
	}
	return entries, nil
}

// Hardest returns up to limit attempted questions ranked hardest-first.
func (s *Service) Hardest(limit int) ([]models.DifficultyEntry, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	SortHardestFirst(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	entries := make([]models.DifficultyEntry, 0, len(records))
	for i := range records {
		entries = append(entries, models.DifficultyEntry{
			Record: records[i],
			Level:  Classify(&records[i]),
			Score:  Score(&records[i]),
		})
	}
	return entries, nil
}

// MasteryByCategory computes, per category, the percentage of its
// questions currently mastered.
func (s *Service) MasteryByCategory(catalog []models.Question) (map[models.Category]float64, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	byNumber := make(map[int]*models.DifficultyRecord, len(records))
	for i := range records {
		byNumber[records[i].QuestionNumber] = &records[i]
	}

	total := make(map[models.Category]int)
	mastered := make(map[models.Category]int)
	for _, q := range catalog {
		total[q.Category]++
		r := byNumber[q.QuestionNumber]
		if r != nil && r.Attempts >= masteryMinAttempts && Classify(r) == models.DifficultyEasy {
			mastered[q.Category]++
		}
	}

	mastery := make(map[models.Category]float64, len(total))
	for category, n := range total {
		if n == 0 {
			continue
		}
		mastery[category] = float64(mastered[category]) / float64(n) * 100
	}
	return mastery, nil
}

// StudySignals reports the aggregate study counters for achievements.
func (s *Service) StudySignals() (questionsStudied, totalAttempts int, err error) {
	questionsStudied, err = s.store.CountStudied()
	if err != nil {
		return 0, 0, fmt.Errorf("count studied: %w", err)
	}
	totalAttempts, err = s.store.TotalAttempts()
	if err != nil {
		return 0, 0, fmt.Errorf("total attempts: %w", err)
	}
	return questionsStudied, totalAttempts, nil
}

// Reset performs the bulk reset; there is no per-question delete.
func (s *Service) Reset() error {
	return s.store.Reset()
}
