package itembank

import (
	"strings"
	"testing"

	"github.com/personality-cat/backend/internal/models"
)

func TestParseItems(t *testing.T) {
	content := `Here are the items:
[
  {"text": "I enjoy meeting new people.", "difficulty": -0.5, "discrimination": 1.4, "reverse_scored": false},
  {"text": "I avoid crowded gatherings.", "difficulty": 0.5, "discrimination": 1.8, "reverse_scored": true}
]`

	items, err := ParseItems(content, models.DimensionExtraversion)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	if items[0].Dimension != models.DimensionExtraversion {
		t.Errorf("dimension = %s, want extraversion", items[0].Dimension)
	}
	if !strings.HasPrefix(items[0].ID, "gen_extraversion_") {
		t.Errorf("ID = %q, want gen_extraversion_ prefix", items[0].ID)
	}
	if items[0].ID == items[1].ID {
		t.Error("items share an ID")
	}
	if !items[1].ReverseScored {
		t.Error("reverse flag not carried")
	}
}

func TestParseItemsRejectsBadParameters(t *testing.T) {
	// One good item among out-of-range ones; only the good one survives.
	content := `[
  {"text": "ok item", "difficulty": 0.0, "discrimination": 1.4, "reverse_scored": false},
  {"text": "difficulty too high", "difficulty": 4.5, "discrimination": 1.4, "reverse_scored": false},
  {"text": "discrimination too high", "difficulty": 0.0, "discrimination": 3.1, "reverse_scored": false},
  {"text": "discrimination zero", "difficulty": 0.0, "discrimination": 0.0, "reverse_scored": false},
  {"text": "", "difficulty": 0.0, "discrimination": 1.4, "reverse_scored": false}
]`

	items, err := ParseItems(content, models.DimensionOpenness)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Text != "ok item" {
		t.Errorf("surviving item = %q", items[0].Text)
	}
}

func TestParseItemsAllInvalid(t *testing.T) {
	content := `[{"text": "bad", "difficulty": 9.0, "discrimination": 1.4}]`
	if _, err := ParseItems(content, models.DimensionOpenness); err == nil {
		t.Error("expected error when every item is rejected")
	}
}

func TestParseItemsNoArray(t *testing.T) {
	if _, err := ParseItems("sorry, I cannot do that", models.DimensionOpenness); err == nil {
		t.Error("expected error for response without a JSON array")
	}
}

func TestParseItemsMalformedJSON(t *testing.T) {
	if _, err := ParseItems(`[{"text": "unterminated`, models.DimensionOpenness); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
