package achievements

import (
	"fmt"
	"log"
	"sync"

	"github.com/civics-prep/backend/internal/models"
)

// SignalSource assembles the current progress bundle from the other
// engines. It is wired in at startup so this package depends only on the
// models.
type SignalSource func() (*models.ProgressSignals, error)

// Service owns the unlocked-achievement set and the XP ledger. Unlocks are
// one-way and XP only ever grows.
type Service struct {
	mu      sync.Mutex
	store   *Store
	signals SignalSource
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) SetSignalSource(src SignalSource) {
	s.signals = src
}

// CheckProgress evaluates the achievement rules against the current
// progress signals and unlocks anything newly qualified. Returns the keys
// unlocked by this call, in definition-check order.
func (s *Service) CheckProgress() ([]string, error) {
	if s.signals == nil {
		return nil, fmt.Errorf("achievement signal source not configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sig, err := s.signals()
	if err != nil {
		return nil, fmt.Errorf("assemble progress signals: %w", err)
	}

	var unlocked []string
	for _, key := range Qualified(sig) {
		inserted, err := s.store.Unlock(key)
		if err != nil {
			return unlocked, err
		}
		if !inserted {
			continue
		}
		if err := s.store.AddXP(Defs[key].XP); err != nil {
			log.Printf("[achievements] failed to award xp for %s: %v", key, err)
		}
		unlocked = append(unlocked, key)
	}
	return unlocked, nil
}

// Status returns the full gamification snapshot, including the queue of
// unlocks the client has not yet shown.
func (s *Service) Status() (*models.AchievementStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []models.UnlockedAchievement{}
	}

	unviewed, err := s.store.Unviewed()
	if err != nil {
		return nil, err
	}
	if unviewed == nil {
		unviewed = []string{}
	}

	xp, err := s.store.TotalXP()
	if err != nil {
		return nil, err
	}

	return &models.AchievementStatus{
		Unlocked:        all,
		NewAchievements: unviewed,
		TotalXP:         xp,
		Level:           LevelForXP(xp),
		LevelProgress:   LevelProgress(xp),
	}, nil
}

// AcknowledgeNew drains the new-achievement queue after the client has
// shown the unlock notifications.
func (s *Service) AcknowledgeNew() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.MarkAllViewed()
}
