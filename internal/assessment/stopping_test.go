package assessment

import (
	"testing"

	"github.com/personality-cat/backend/internal/models"
)

func stateWith(count int, se float64) *models.DimensionState {
	st := &models.DimensionState{Theta: 0, SE: se}
	for i := 0; i < count; i++ {
		st.Responses = append(st.Responses, models.ResponseRecord{ItemID: itemID(i), Response: 3})
	}
	return st
}

func itemID(i int) string {
	return string(rune('a' + i))
}

func TestDimensionSatisfied(t *testing.T) {
	cfg := DefaultConfig() // min 5, max 10, target SE 0.3

	tests := []struct {
		name  string
		count int
		se    float64
		want  bool
	}{
		{"below minimum even with tight SE", 3, 0.1, false},
		{"at minimum with tight SE", 5, 0.25, true},
		{"at minimum with loose SE", 5, 0.8, false},
		{"SE exactly at target", 5, 0.3, true},
		{"mid-range loose SE", 8, 0.5, false},
		{"at cap regardless of SE", 10, 0.9, true},
	}

	for _, tt := range tests {
		got := DimensionSatisfied(cfg, stateWith(tt.count, tt.se))
		if got != tt.want {
			t.Errorf("%s: DimensionSatisfied = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestSessionComplete(t *testing.T) {
	cfg := DefaultConfig()

	newSess := func() *models.Session {
		sess := &models.Session{States: make(map[models.Dimension]*models.DimensionState)}
		for _, dim := range models.AllDimensions {
			sess.States[dim] = stateWith(5, 0.2)
		}
		return sess
	}

	// Every dimension satisfied → complete
	sess := newSess()
	sess.TotalAnswered = 25
	if !SessionComplete(cfg, sess) {
		t.Error("all dimensions satisfied, want complete")
	}

	// One loose dimension keeps the session going
	sess = newSess()
	sess.TotalAnswered = 25
	sess.States[models.DimensionNeuroticism] = stateWith(5, 0.9)
	if SessionComplete(cfg, sess) {
		t.Error("one unsatisfied dimension, want incomplete")
	}

	// Global budget overrides per-dimension state
	sess = newSess()
	sess.States[models.DimensionNeuroticism] = stateWith(5, 0.9)
	sess.TotalAnswered = cfg.MaxQuestions
	if !SessionComplete(cfg, sess) {
		t.Error("global budget spent, want complete")
	}
}
