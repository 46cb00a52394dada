package achievements

import (
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
	return NewStore(db)
}

func TestStore_UnlockIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	inserted, err := store.Unlock("first_test")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !inserted {
		t.Fatal("expected first unlock to insert")
	}

	inserted, err = store.Unlock("first_test")
	if err != nil {
		t.Fatalf("repeat unlock: %v", err)
	}
	if inserted {
		t.Error("expected repeat unlock to be a no-op")
	}

	all, err := store.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 unlocked achievement, got %d", len(all))
	}
}

func TestStore_XPAccumulates(t *testing.T) {
	store := newTestStore(t)

	xp, err := store.TotalXP()
	if err != nil {
		t.Fatalf("total xp: %v", err)
	}
	if xp != 0 {
		t.Fatalf("expected fresh state to hold 0 xp, got %d", xp)
	}

	if err := store.AddXP(25); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := store.AddXP(50); err != nil {
		t.Fatalf("add xp: %v", err)
	}

	xp, err = store.TotalXP()
	if err != nil {
		t.Fatalf("total xp: %v", err)
	}
	if xp != 75 {
		t.Errorf("expected 75 xp, got %d", xp)
	}
}

func TestStore_UnviewedQueue(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{"first_question", "first_test"} {
		if _, err := store.Unlock(key); err != nil {
			t.Fatalf("unlock %s: %v", key, err)
		}
	}

	keys, err := store.Unviewed()
	if err != nil {
		t.Fatalf("unviewed: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 unviewed, got %d", len(keys))
	}

	if err := store.MarkAllViewed(); err != nil {
		t.Fatalf("mark viewed: %v", err)
	}

	keys, err = store.Unviewed()
	if err != nil {
		t.Fatalf("unviewed after acknowledge: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("expected empty unviewed queue, got %v", keys)
	}

	all, err := store.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	for _, a := range all {
		if !a.Viewed {
			t.Errorf("expected %s to be marked viewed", a.ID)
		}
	}
}
