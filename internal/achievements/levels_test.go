package achievements

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{900, 5},
		{7499, 9},
		{7500, 10},
		{100000, 10},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXP_Monotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 8000; xp += 50 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at %d xp", prev, level, xp)
		}
		prev = level
	}
}

func TestLevelProgress(t *testing.T) {
	// Level 1 spans 0..100.
	if got := LevelProgress(50); got != 50 {
		t.Errorf("LevelProgress(50) = %d, want 50", got)
	}
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %d, want 0", got)
	}
	// Max level always reads full.
	if got := LevelProgress(7500); got != 100 {
		t.Errorf("LevelProgress(7500) = %d, want 100", got)
	}
	if got := LevelProgress(99999); got != 100 {
		t.Errorf("LevelProgress(99999) = %d, want 100", got)
	}
}

func TestLevelProgress_NeverExceedsHundred(t *testing.T) {
	for xp := 0; xp <= 10000; xp += 7 {
		if got := LevelProgress(xp); got < 0 || got > 100 {
			t.Fatalf("LevelProgress(%d) = %d, outside 0..100", xp, got)
		}
	}
}
