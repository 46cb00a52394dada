package exam

import (
	"math/rand"

	"github.com/civics-prep/backend/internal/models"
)

// Draw picks size questions from the pool uniformly at random, without
// repeats, in shuffled order. Each call reshuffles from scratch, so
// consecutive tests are independent draws. The pool is not modified.
func Draw(pool []models.Question, size int) []models.Question {
	if size > len(pool) {
		size = len(pool)
	}

	shuffled := make([]models.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:size]
}
