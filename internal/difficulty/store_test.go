package difficulty

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/civics-prep/backend/internal/database"
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
	seedQuestions(t, db, 1, 2, 3)
	return NewStore(db)
}

// seedQuestions inserts bare question rows so foreign keys hold.
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

func TestStore_RecordAttemptCreatesAndAccumulates(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordAttempt(1, true, 4000); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if err := store.RecordAttempt(1, false, 6000); err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	rec, err := store.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.TimesCorrect != 1 || rec.TimesIncorrect != 1 || rec.Attempts != 2 {
		t.Errorf("unexpected tallies: %+v", rec)
	}
	if rec.TotalResponseTimeMs != 10000 {
		t.Errorf("expected 10000ms accumulated, got %d", rec.TotalResponseTimeMs)
	}
}

func TestStore_GetUnseenQuestionIsNil(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for unseen question, got %+v", rec)
	}
}

func TestStore_CountStudied(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordAttempt(1, true, 0); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordAttempt(1, true, 0); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordAttempt(3, false, 0); err != nil {
		t.Fatal(err)
	}

	studied, err := store.CountStudied()
	if err != nil {
		t.Fatalf("count studied: %v", err)
	}
	if studied != 2 {
		t.Errorf("expected 2 distinct questions studied, got %d", studied)
	}
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordAttempt(1, true, 0); err != nil {
		t.Fatal(err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec, err := store.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Errorf("expected record gone after reset, got %+v", rec)
	}
}
