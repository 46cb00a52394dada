package exam

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/civics-prep/backend/internal/achievements"
	"github.com/civics-prep/backend/internal/catalog"
	"github.com/civics-prep/backend/internal/difficulty"
	"github.com/civics-prep/backend/internal/models"
	"github.com/civics-prep/backend/internal/streak"
	"github.com/google/uuid"
)

var (
	ErrNoSession       = errors.New("test session not found")
	ErrSessionComplete = errors.New("test session already submitted")
	ErrNotInTest       = errors.New("question is not part of this test")
)

// Service runs test sessions. Sessions live in memory until submission;
// only the graded outcome is persisted. A restart abandons in-flight
// sessions, which matches how a paused interview restarts.
type Service struct {
	mu           sync.Mutex
	sessions     map[string]*models.TestSession
	catalog      *catalog.Service
	store        *Store
	difficulty   *difficulty.Service
	streaks      *streak.Service
	achievements *achievements.Service
}

func NewService(store *Store, cat *catalog.Service, diff *difficulty.Service) *Service {
	return &Service{
		sessions:   make(map[string]*models.TestSession),
		catalog:    cat,
		store:      store,
		difficulty: diff,
	}
}

func (s *Service) SetStreakService(ss *streak.Service) {
	s.streaks = ss
}

func (s *Service) SetAchievementService(as *achievements.Service) {
	s.achievements = as
}

// StartTest generates a fresh session for the given mode. The senior
// variant draws only from the flagged 65/20 subset.
func (s *Service) StartTest(mode models.TestMode) (*models.TestSession, error) {
	var pool []models.Question
	switch mode {
	case models.ModeStandard:
		pool = s.catalog.All()
	case models.ModeSenior:
		pool = s.catalog.Senior()
	default:
		return nil, fmt.Errorf("unknown test mode %q", mode)
	}

	size := mode.TestSize()
	if len(pool) < size {
		return nil, fmt.Errorf("question pool too small for %s test: %d < %d", mode, len(pool), size)
	}

	session := &models.TestSession{
		ID:            uuid.NewString(),
		Mode:          mode,
		Questions:     Draw(pool, size),
		Answers:       make(map[int]string),
		ResponseTimes: make(map[int]int64),
		StartTime:     time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return snapshot(session), nil
}

// snapshot copies a session so callers can read or encode it after the
// lock is released. The question list is fixed once generated and safe to
// share; the mutable maps are copied.
func snapshot(session *models.TestSession) *models.TestSession {
	out := *session
	out.Answers = make(map[int]string, len(session.Answers))
	for k, v := range session.Answers {
		out.Answers[k] = v
	}
	out.ResponseTimes = make(map[int]int64, len(session.ResponseTimes))
	for k, v := range session.ResponseTimes {
		out.ResponseTimes[k] = v
	}
	return &out
}

// Session returns a point-in-time copy of the session by ID.
func (s *Service) Session(id string) (*models.TestSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return snapshot(session), nil
}

// Answer records (or overwrites) the answer for one question of an open
// session. Time spent accumulates across revisits to the same question.
func (s *Service) Answer(id string, questionNumber int, answer string, timeSpentMs int64) (*models.TestSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	if session.IsComplete {
		return nil, ErrSessionComplete
	}

	found := false
	for i := range session.Questions {
		if session.Questions[i].QuestionNumber == questionNumber {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotInTest
	}

	session.Answers[questionNumber] = answer
	if timeSpentMs > 0 {
		session.ResponseTimes[questionNumber] += timeSpentMs
	}
	return snapshot(session), nil
}

// Navigate moves the session cursor. Both directions are allowed; the
// index must address a question in the set.
func (s *Service) Navigate(id string, index int) (*models.TestSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	if session.IsComplete {
		return nil, ErrSessionComplete
	}
	if index < 0 || index >= len(session.Questions) {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, len(session.Questions))
	}

	session.CurrentIndex = index
	return snapshot(session), nil
}

// SubmitTest grades the session, freezes it, and fans the outcome out to
// the result history, the difficulty engine, the streak tracker and the
// achievement engine. Submitting twice is an error; the first grading is
// final.
func (s *Service) SubmitTest(id string) (*models.SubmitTestResponse, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	if session.IsComplete {
		s.mu.Unlock()
		return nil, ErrSessionComplete
	}

	timeSpentMs := time.Since(session.StartTime).Milliseconds()
	result := Grade(session, timeSpentMs)
	session.IsComplete = true
	s.mu.Unlock()

	rec := &models.TestRecord{
		ID:                 session.ID,
		Mode:               session.Mode,
		Correct:            result.Correct,
		Total:              result.Total,
		Passed:             result.Passed,
		TimeSpentMs:        result.TimeSpentMs,
		CorrectQuestions:   result.CorrectQuestions,
		IncorrectQuestions: result.IncorrectQuestions,
		TakenAt:            time.Now(),
	}
	if err := s.store.SaveResult(rec); err != nil {
		return nil, err
	}

	// Every test answer is also a difficulty observation.
	for _, n := range result.CorrectQuestions {
		if err := s.difficulty.RecordAttempt(n, true, session.ResponseTimes[n]); err != nil {
			log.Printf("[exam] failed to record attempt for question %d: %v", n, err)
		}
	}
	for _, n := range result.IncorrectQuestions {
		if err := s.difficulty.RecordAttempt(n, false, session.ResponseTimes[n]); err != nil {
			log.Printf("[exam] failed to record attempt for question %d: %v", n, err)
		}
	}

	resp := &models.SubmitTestResponse{
		Result:               result,
		AchievementsUnlocked: []string{},
	}

	if s.streaks != nil {
		status, err := s.streaks.RecordActivity(models.ActivityTest, 1)
		if err != nil {
			log.Printf("[exam] failed to record test activity: %v", err)
		} else {
			resp.CurrentStreak = status.CurrentStreak
		}
	}

	if s.achievements != nil {
		unlocked, err := s.achievements.CheckProgress()
		if err != nil {
			log.Printf("[exam] achievement check failed: %v", err)
		}
		if unlocked != nil {
			resp.AchievementsUnlocked = unlocked
			resp.XPAwarded = achievements.TotalXPFor(unlocked)
		}
	}

	return resp, nil
}

// ResetTest abandons a session without grading. Nothing is recorded.
func (s *Service) ResetTest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNoSession
	}
	delete(s.sessions, id)
	return nil
}

func (s *Service) History(limit int) ([]models.TestRecord, error) {
	return s.store.History(limit)
}

func (s *Service) Stats() (*models.TestStats, error) {
	return s.store.Stats()
}
