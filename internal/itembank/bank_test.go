package itembank

import (
	"testing"

	"github.com/personality-cat/backend/internal/models"
)

func TestBankCoverage(t *testing.T) {
	bank := NewBank()

	for _, dim := range models.AllDimensions {
		if got := bank.Size(dim); got != 10 {
			t.Errorf("%s catalog size = %d, want 10", dim, got)
		}

		items := bank.Items(dim, 10)
		hasMedium := false
		seen := map[string]bool{}
		for _, item := range items {
			if item.Dimension != dim {
				t.Errorf("%s item %q carries dimension %s", dim, item.ID, item.Dimension)
			}
			if item.Difficulty < -3 || item.Difficulty > 3 {
				t.Errorf("%s item %q difficulty %f out of range", dim, item.ID, item.Difficulty)
			}
			if item.Discrimination <= 0 || item.Discrimination > 2.5 {
				t.Errorf("%s item %q discrimination %f out of range", dim, item.ID, item.Discrimination)
			}
			if item.Difficulty >= -0.5 && item.Difficulty <= 0.5 {
				hasMedium = true
			}
			if seen[item.ID] {
				t.Errorf("duplicate item ID %q", item.ID)
			}
			seen[item.ID] = true
		}
		// Every dimension needs a valid first-item candidate.
		if !hasMedium {
			t.Errorf("%s catalog has no medium-difficulty item", dim)
		}
	}
}

func TestBankReverseScoredItems(t *testing.T) {
	bank := NewBank()
	for _, dim := range models.AllDimensions {
		reversed := 0
		for _, item := range bank.Items(dim, 10) {
			if item.ReverseScored {
				reversed++
			}
		}
		if reversed == 0 {
			t.Errorf("%s catalog has no reverse-scored items", dim)
		}
	}
}

func TestBankItemsCount(t *testing.T) {
	bank := NewBank()

	if got := len(bank.Items(models.DimensionOpenness, 3)); got != 3 {
		t.Errorf("Items(openness, 3) = %d items, want 3", got)
	}
	// Asking for more than exists caps at the catalog size.
	if got := len(bank.Items(models.DimensionOpenness, 99)); got != 10 {
		t.Errorf("Items(openness, 99) = %d items, want 10", got)
	}
}
