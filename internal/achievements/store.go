package achievements

import (
	"database/sql"
	"fmt"

	"github.com/civics-prep/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Unlock records an achievement if it is not already earned. Returns true
// only when this call inserted the row, so a repeat unlock awards nothing.
func (s *Store) Unlock(key string) (bool, error) {
	res, err := s.db.Exec(`INSERT OR IGNORE INTO achievements (achievement) VALUES (?)`, key)
	if err != nil {
		return false, fmt.Errorf("unlock achievement %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unlock achievement %s: %w", key, err)
	}
	return n > 0, nil
}

func (s *Store) GetAll() ([]models.UnlockedAchievement, error) {
	rows, err := s.db.Query(
		`SELECT achievement, earned_at, viewed FROM achievements ORDER BY earned_at ASC, achievement ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var out []models.UnlockedAchievement
	for rows.Next() {
		var a models.UnlockedAchievement
		if err := rows.Scan(&a.ID, &a.EarnedAt, &a.Viewed); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Unviewed returns the keys of unlocks the client has not acknowledged.
func (s *Store) Unviewed() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT achievement FROM achievements WHERE viewed = 0 ORDER BY earned_at ASC, achievement ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list unviewed achievements: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan achievement key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *Store) MarkAllViewed() error {
	if _, err := s.db.Exec(`UPDATE achievements SET viewed = 1 WHERE viewed = 0`); err != nil {
		return fmt.Errorf("mark achievements viewed: %w", err)
	}
	return nil
}

func (s *Store) AddXP(amount int) error {
	if _, err := s.db.Exec(`UPDATE achievement_state SET total_xp = total_xp + ? WHERE id = 1`, amount); err != nil {
		return fmt.Errorf("add xp: %w", err)
	}
	return nil
}

func (s *Store) TotalXP() (int, error) {
	var xp int
	if err := s.db.QueryRow(`SELECT total_xp FROM achievement_state WHERE id = 1`).Scan(&xp); err != nil {
		return 0, fmt.Errorf("get total xp: %w", err)
	}
	return xp, nil
}
