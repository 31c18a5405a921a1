package assessment

import (
	"math/rand"
	"testing"

	"github.com/personality-cat/backend/internal/models"
)

func testPool() []models.Item {
	return []models.Item{
		{ID: "q1", Difficulty: -1.0, Discrimination: 1.4},
		{ID: "q2", Difficulty: -0.5, Discrimination: 1.4},
		{ID: "q3", Difficulty: 0.0, Discrimination: 1.4},
		{ID: "q4", Difficulty: 0.5, Discrimination: 1.4},
		{ID: "q5", Difficulty: 1.0, Discrimination: 1.4},
	}
}

func newTestSelector(strategy SelectionStrategy) *Selector {
	return NewSelector(strategy, rand.New(rand.NewSource(42)))
}

func TestSelectorFirstItemMediumBand(t *testing.T) {
	s := newTestSelector(StrategyClosestDifficulty)
	pool := testPool()

	// With no answers yet, the pick must come from [-0.5, 0.5] regardless of
	// how many times we draw.
	for i := 0; i < 50; i++ {
		item, ok := s.Next(0, pool, map[string]bool{})
		if !ok {
			t.Fatal("expected an item from a full pool")
		}
		if item.Difficulty < -0.5 || item.Difficulty > 0.5 {
			t.Fatalf("first item difficulty %f outside medium band", item.Difficulty)
		}
	}
}

func TestSelectorFirstItemFallback(t *testing.T) {
	s := newTestSelector(StrategyClosestDifficulty)
	// No medium items at all: any remaining item is acceptable.
	pool := []models.Item{
		{ID: "hard", Difficulty: 2.0, Discrimination: 1.4},
		{ID: "easy", Difficulty: -2.0, Discrimination: 1.4},
	}

	item, ok := s.Next(0, pool, map[string]bool{})
	if !ok {
		t.Fatal("expected fallback item")
	}
	if item.ID != "hard" && item.ID != "easy" {
		t.Errorf("unexpected item %q", item.ID)
	}
}

func TestSelectorClosestDifficulty(t *testing.T) {
	s := newTestSelector(StrategyClosestDifficulty)
	pool := testPool()
	answered := map[string]bool{"q3": true}

	tests := []struct {
		theta float64
		want  string
	}{
		{-1.2, "q1"},
		{-0.4, "q2"},
		{0.6, "q4"},
		{2.5, "q5"},
	}
	for _, tt := range tests {
		item, ok := s.Next(tt.theta, pool, answered)
		if !ok {
			t.Fatalf("theta %f: expected item", tt.theta)
		}
		if item.ID != tt.want {
			t.Errorf("theta %f: got %q, want %q", tt.theta, item.ID, tt.want)
		}
	}
}

func TestSelectorClosestDifficultyTieKeepsPoolOrder(t *testing.T) {
	s := newTestSelector(StrategyClosestDifficulty)
	pool := []models.Item{
		{ID: "first", Difficulty: -0.5, Discrimination: 1.4},
		{ID: "second", Difficulty: 0.5, Discrimination: 1.4},
	}
	answered := map[string]bool{"warmup": true}

	// Theta 0 is equidistant from both; the earlier pool entry wins.
	item, _ := s.Next(0, pool, answered)
	if item.ID != "first" {
		t.Errorf("tie break picked %q, want first pool entry", item.ID)
	}
}

func TestSelectorMaxInformation(t *testing.T) {
	s := newTestSelector(StrategyMaxInformation)
	// Same difficulty distance, but q_hi discriminates far better.
	pool := []models.Item{
		{ID: "q_lo", Difficulty: 0.3, Discrimination: 0.8},
		{ID: "q_hi", Difficulty: 0.3, Discrimination: 2.0},
	}
	answered := map[string]bool{"warmup": true}

	item, _ := s.Next(0.3, pool, answered)
	if item.ID != "q_hi" {
		t.Errorf("max-info picked %q, want q_hi", item.ID)
	}
}

func TestSelectorSkipsAnswered(t *testing.T) {
	s := newTestSelector(StrategyClosestDifficulty)
	pool := testPool()
	answered := map[string]bool{"q3": true}

	// Theta 0 would prefer q3, but it is already administered.
	item, _ := s.Next(0, pool, answered)
	if item.ID == "q3" {
		t.Error("selector re-administered an answered item")
	}
}

func TestSelectorExhaustedPool(t *testing.T) {
	s := newTestSelector(StrategyClosestDifficulty)
	pool := testPool()
	answered := map[string]bool{"q1": true, "q2": true, "q3": true, "q4": true, "q5": true}

	if _, ok := s.Next(0, pool, answered); ok {
		t.Error("expected no item from an exhausted pool")
	}
}
