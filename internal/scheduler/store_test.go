package scheduler

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/civics-prep/backend/internal/database"
	"github.com/civics-prep/backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.ConnectInMemory()
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seedQuestions(t, db, 1, 2, 3, 4)
	return NewStore(db)
}

func seedQuestions(t *testing.T, db *sql.DB, numbers ...int) {
	t.Helper()
	for _, n := range numbers {
		_, err := db.Exec(
			`INSERT INTO questions (question_number, category, question_en, question_vi)
			 VALUES (?, 'government', ?, ?)`,
			n, fmt.Sprintf("question %d", n), fmt.Sprintf("câu hỏi %d", n),
		)
		if err != nil {
			t.Fatalf("seed question %d: %v", n, err)
		}
	}
}

func TestStore_SaveAndGetCard(t *testing.T) {
	store := newTestStore(t)

	card := NewCard(1, 5, "2026-04-01")
	if err := store.Save(card); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a card")
	}
	if got.EaseFactor != card.EaseFactor || got.NextReviewDate != card.NextReviewDate {
		t.Errorf("round trip mismatch: saved %+v got %+v", card, *got)
	}
}

func TestStore_GetUnreviewedIsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for an unreviewed question, got %+v", got)
	}
}

func TestStore_DueOrdersHardestFirst(t *testing.T) {
	store := newTestStore(t)

	cards := []models.ReviewCard{
		{QuestionNumber: 1, EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1, NextReviewDate: "2026-04-01", LastReviewDate: "2026-03-31"},
		{QuestionNumber: 2, EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0, NextReviewDate: "2026-04-01", LastReviewDate: "2026-03-31"},
		{QuestionNumber: 3, EaseFactor: 1.9, IntervalDays: 1, Repetitions: 2, NextReviewDate: "2026-04-01", LastReviewDate: "2026-03-31"},
		// Not yet due.
		{QuestionNumber: 4, EaseFactor: 1.3, IntervalDays: 7, Repetitions: 3, NextReviewDate: "2026-04-09", LastReviewDate: "2026-04-02"},
	}
	for _, c := range cards {
		if err := store.Save(c); err != nil {
			t.Fatalf("save card %d: %v", c.QuestionNumber, err)
		}
	}

	due, err := store.Due("2026-04-02", 10)
	if err != nil {
		t.Fatalf("due: %v", err)
	}

	want := []int{2, 3, 1}
	if len(due) != len(want) {
		t.Fatalf("expected %d due cards, got %d", len(want), len(due))
	}
	for i, n := range want {
		if due[i].QuestionNumber != n {
			t.Errorf("position %d: got question %d, want %d", i, due[i].QuestionNumber, n)
		}
	}
}

func TestStore_DueRespectsLimit(t *testing.T) {
	store := newTestStore(t)

	for n := 1; n <= 3; n++ {
		card := NewCard(n, 5, "2026-04-01")
		if err := store.Save(card); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	due, err := store.Due("2026-04-05", 2)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Errorf("expected limit of 2 cards, got %d", len(due))
	}
}

func TestStore_ReviewCounter(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := store.IncrementReviews(); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	total, err := store.TotalReviews()
	if err != nil {
		t.Fatalf("total reviews: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 lifetime reviews, got %d", total)
	}
}
