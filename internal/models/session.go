package models

import "time"

// Dimension identifies one of the Big Five personality traits.
type Dimension string

const (
	DimensionOpenness          Dimension = "openness"
	DimensionConscientiousness Dimension = "conscientiousness"
	DimensionExtraversion      Dimension = "extraversion"
	DimensionAgreeableness     Dimension = "agreeableness"
	DimensionNeuroticism       Dimension = "neuroticism"
)

// AllDimensions lists the five traits in presentation order. The order is
// significant: sessions administer dimensions in this sequence.
var AllDimensions = []Dimension{
	DimensionOpenness,
	DimensionConscientiousness,
	DimensionExtraversion,
	DimensionAgreeableness,
	DimensionNeuroticism,
}

var ValidDimensions = map[Dimension]bool{
	DimensionOpenness:          true,
	DimensionConscientiousness: true,
	DimensionExtraversion:      true,
	DimensionAgreeableness:     true,
	DimensionNeuroticism:       true,
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// ResponseRecord is the immutable record of one answered item. Difficulty,
// discrimination, and the reverse flag are copied from the item at answer
// time so later catalog changes cannot retroactively alter scoring.
type ResponseRecord struct {
	ItemID         string    `json:"item_id"`
	Response       int       `json:"response"`
	Difficulty     float64   `json:"difficulty"`
	Discrimination float64   `json:"discrimination"`
	ReverseScored  bool      `json:"reverse_scored"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// DimensionState holds one trait's answer history and current estimate.
// Responses are in administration order.
type DimensionState struct {
	Responses []ResponseRecord `json:"responses"`
	Theta     float64          `json:"theta"`
	SE        float64          `json:"se"`
}

// Administered returns the number of items answered for this dimension.
func (d *DimensionState) Administered() int {
	return len(d.Responses)
}

// Demographics is the participant profile used for item personalization
// and admin reporting. All fields are optional.
type Demographics struct {
	Gender         string `json:"gender,omitempty"`
	BirthYear      *int   `json:"birth_year,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"`
	AgeGroup       string `json:"age_group,omitempty"`
}

// Session is one participant's assessment. Item pools are resolved at
// creation time and fixed for the session's lifetime.
type Session struct {
	ID               string                         `json:"session_id"`
	Name             string                         `json:"name"`
	Demographics     Demographics                   `json:"demographics"`
	Status           SessionStatus                  `json:"status"`
	CurrentDimension Dimension                      `json:"current_dimension"`
	States           map[Dimension]*DimensionState  `json:"states"`
	Pools            map[Dimension][]Item           `json:"pools"`
	TotalAnswered    int                            `json:"total_answered"`
	CreatedAt        time.Time                      `json:"created_at"`
	CompletedAt      *time.Time                     `json:"completed_at,omitempty"`
}

// State returns the dimension state, creating it if absent. Restored
// snapshots always carry all five states; this guards partial test fixtures.
func (s *Session) State(dim Dimension) *DimensionState {
	st, ok := s.States[dim]
	if !ok {
		st = &DimensionState{Theta: 0.0, SE: 1.0}
		s.States[dim] = st
	}
	return st
}
