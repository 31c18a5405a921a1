package itembank

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/personality-cat/backend/internal/models"
)

// 2PL parameter bounds accepted from the generator. Items outside these are
// dropped rather than allowed to distort selection and estimation.
const (
	minDifficulty     = -3.0
	maxDifficulty     = 3.0
	maxDiscrimination = 2.5
)

type rawItem struct {
	Text           string  `json:"text"`
	Difficulty     float64 `json:"difficulty"`
	Discrimination float64 `json:"discrimination"`
	ReverseScored  bool    `json:"reverse_scored"`
}

// ParseItems extracts the JSON array from a model response, validates each
// item's 2PL parameters, and assigns fresh IDs. Invalid items are skipped
// with a warning; an empty result is an error.
func ParseItems(content string, dim models.Dimension) ([]models.Item, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []rawItem
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling items: %w", err)
	}

	items := make([]models.Item, 0, len(raw))
	for i, r := range raw {
		if err := validateItem(r); err != nil {
			log.Printf("WARN: skipping generated item %d for %s: %v", i, dim, err)
			continue
		}
		items = append(items, models.Item{
			ID:             fmt.Sprintf("gen_%s_%s", dim, uuid.New().String()[:8]),
			Dimension:      dim,
			Text:           strings.TrimSpace(r.Text),
			Difficulty:     r.Difficulty,
			Discrimination: r.Discrimination,
			ReverseScored:  r.ReverseScored,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items in response (%d rejected)", len(raw))
	}
	return items, nil
}

func validateItem(r rawItem) error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("empty text")
	}
	if r.Difficulty < minDifficulty || r.Difficulty > maxDifficulty {
		return fmt.Errorf("difficulty %.2f out of range [%.1f, %.1f]", r.Difficulty, minDifficulty, maxDifficulty)
	}
	if r.Discrimination <= 0 || r.Discrimination > maxDiscrimination {
		return fmt.Errorf("discrimination %.2f out of range (0, %.1f]", r.Discrimination, maxDiscrimination)
	}
	return nil
}
