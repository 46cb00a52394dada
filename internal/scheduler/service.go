package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/civics-prep/backend/internal/achievements"
	"github.com/civics-prep/backend/internal/catalog"
	"github.com/civics-prep/backend/internal/dates"
	"github.com/civics-prep/backend/internal/models"
	"github.com/civics-prep/backend/internal/streak"
)

// Service runs the SM-2 review loop over the persisted card collection.
// The SM-2 math itself lives in sm2.go as pure functions; this layer owns
// load/save plus the streak and achievement side effects of a review.
type Service struct {
	store        *Store
	catalog      *catalog.Service
	streaks      *streak.Service
	achievements *achievements.Service
}

func NewService(store *Store, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

// SetStreakService injects the streak tracker so reviews count as
// flashcard activity.
func (s *Service) SetStreakService(ss *streak.Service) {
	s.streaks = ss
}

// SetAchievementService injects the achievement engine checked after each
// review.
func (s *Service) SetAchievementService(as *achievements.Service) {
	s.achievements = as
}

// ReviewQuestion grades one flashcard recall. The first review of a
// question creates its card; out-of-range quality is clamped at this
// boundary so an out-of-invariant grade is never stored.
func (s *Service) ReviewQuestion(questionNumber, quality int) (*models.ReviewResponse, error) {
	if _, err := s.catalog.ByNumber(questionNumber); err != nil {
		return nil, fmt.Errorf("review question %d: %w", questionNumber, err)
	}
	quality = ClampQuality(quality)
	today := dates.DayKey(time.Now())

	card, err := s.store.Get(questionNumber)
	if err != nil {
		return nil, err
	}

	var updated models.ReviewCard
	if card == nil {
		updated = NewCard(questionNumber, quality, today)
	} else {
		updated = Apply(*card, quality, today)
	}

	if err := s.store.Save(updated); err != nil {
		return nil, err
	}
	if err := s.store.IncrementReviews(); err != nil {
		log.Printf("[scheduler] failed to count review: %v", err)
	}

	if s.streaks != nil {
		if _, err := s.streaks.RecordActivity(models.ActivityFlashcard, 1); err != nil {
			log.Printf("[scheduler] failed to record flashcard activity: %v", err)
		}
	}

	var unlocked []string
	if s.achievements != nil {
		unlocked, err = s.achievements.CheckProgress()
		if err != nil {
			log.Printf("[scheduler] achievement check failed: %v", err)
		}
	}
	if unlocked == nil {
		unlocked = []string{}
	}

	return &models.ReviewResponse{Card: updated, AchievementsUnlocked: unlocked}, nil
}

// Card returns a question's review card, or nil if it has never been
// reviewed. An unseen question is not an error.
func (s *Service) Card(questionNumber int) (*models.ReviewCard, error) {
	return s.store.Get(questionNumber)
}

// DueCards returns up to limit due cards, lowest ease factor first, so the
// weakest material comes up earliest in a capped review session.
func (s *Service) DueCards(limit int) ([]models.ReviewCard, error) {
	return s.store.Due(dates.DayKey(time.Now()), limit)
}

func (s *Service) Stats() (*models.ReviewStats, error) {
	today := dates.DayKey(time.Now())

	total, err := s.store.CountCards()
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	due, err := s.store.CountDue(today)
	if err != nil {
		return nil, fmt.Errorf("count due: %w", err)
	}
	reviews, err := s.store.TotalReviews()
	if err != nil {
		return nil, fmt.Errorf("total reviews: %w", err)
	}

	cards, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	mastered := 0
	for i := range cards {
		if IsMastered(&cards[i]) {
			mastered++
		}
	}

	return &models.ReviewStats{
		TotalCards:    total,
		DueToday:      due,
		MasteredCards: mastered,
		TotalReviews:  reviews,
	}, nil
}

// TotalReviews exposes the lifetime review counter for achievement
// signals.
func (s *Service) TotalReviews() (int, error) {
	return s.store.TotalReviews()
}
