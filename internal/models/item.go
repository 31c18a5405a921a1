package models

// Item is one Likert statement with pre-calibrated 2PL parameters.
// Difficulty is typically in [-3, 3]; discrimination is positive,
// typically in [0.3, 2.5].
type Item struct {
	ID             string    `json:"item_id"`
	Dimension      Dimension `json:"dimension"`
	Text           string    `json:"text"`
	Difficulty     float64   `json:"difficulty"`
	Discrimination float64   `json:"discrimination"`
	ReverseScored  bool      `json:"reverse_scored"`
}
