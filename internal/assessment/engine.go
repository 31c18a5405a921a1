package assessment

import (
	"time"

	"github.com/personality-cat/backend/internal/models"
)

// Engine is the adaptive testing core: it owns the state machine that
// sequences dimensions, records answers, re-estimates ability, and decides
// completion. It performs no I/O; callers own persistence and locking.
type Engine struct {
	cfg      Config
	selector *Selector
}

func NewEngine(cfg Config, selector *Selector) *Engine {
	return &Engine{cfg: cfg, selector: selector}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// NewSession builds an Active session with every dimension at its prior
// (theta 0.0, SE 1.0) and the supplied per-dimension item pools, which stay
// fixed for the session's lifetime.
func (e *Engine) NewSession(id, name string, demo models.Demographics, pools map[models.Dimension][]models.Item) *models.Session {
	states := make(map[models.Dimension]*models.DimensionState, len(models.AllDimensions))
	for _, dim := range models.AllDimensions {
		states[dim] = &models.DimensionState{Theta: 0.0, SE: 1.0}
	}
	return &models.Session{
		ID:               id,
		Name:             name,
		Demographics:     demo,
		Status:           models.SessionActive,
		CurrentDimension: models.AllDimensions[0],
		States:           states,
		Pools:            pools,
		CreatedAt:        time.Now().UTC(),
	}
}

// NextItem returns the next item to administer. When the current dimension
// has hit its per-dimension cap, or its pool is exhausted before the
// stopping rule fired, the pointer advances to the next dimension in fixed
// order; past the last dimension the session completes and (nil, true) is
// returned. Completed sessions always return (nil, true).
func (e *Engine) NextItem(sess *models.Session) (*models.Item, bool) {
	if sess.Status == models.SessionCompleted {
		return nil, true
	}

	for {
		dim := sess.CurrentDimension
		st := sess.State(dim)

		if st.Administered() >= e.cfg.MaxPerDimension {
			if !advanceDimension(sess) {
				sess.Status = models.SessionCompleted
				return nil, true
			}
			continue
		}

		answered := answeredSet(st)
		item, ok := e.selector.Next(st.Theta, sess.Pools[dim], answered)
		if !ok {
			// Pool exhausted: forced dimension completion, not an error.
			if !advanceDimension(sess) {
				sess.Status = models.SessionCompleted
				return nil, true
			}
			continue
		}
		return &item, false
	}
}

// SubmitAnswer records one raw 1-5 response against the current dimension,
// re-estimates (theta, SE) from the full accumulated history, updates the
// global counter, and evaluates the completion predicate. The session is
// untouched when an error is returned.
func (e *Engine) SubmitAnswer(sess *models.Session, itemID string, raw int) (*models.DimensionState, error) {
	if sess.Status == models.SessionCompleted {
		return nil, ErrSessionCompleted
	}
	if raw < 1 || raw > 5 {
		return nil, ErrInvalidResponse
	}

	dim := sess.CurrentDimension
	item, ok := findItem(sess.Pools[dim], itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	st := sess.State(dim)
	if answeredSet(st)[itemID] {
		return nil, ErrItemAlreadyAnswered
	}

	st.Responses = append(st.Responses, models.ResponseRecord{
		ItemID:         item.ID,
		Response:       raw,
		Difficulty:     item.Difficulty,
		Discrimination: item.Discrimination,
		ReverseScored:  item.ReverseScored,
		AnsweredAt:     time.Now().UTC(),
	})

	outcomes, difficulties, discriminations := EstimationInput(st.Responses)
	st.Theta, st.SE = EstimateTheta(outcomes, difficulties, discriminations, e.cfg)

	sess.TotalAnswered++

	// Idempotent: a session already Completed stays Completed.
	if SessionComplete(e.cfg, sess) {
		sess.Status = models.SessionCompleted
	}

	return st, nil
}

// advanceDimension moves the current-dimension pointer forward in the fixed
// order. Returns false when already at the last dimension.
func advanceDimension(sess *models.Session) bool {
	for i, dim := range models.AllDimensions {
		if dim == sess.CurrentDimension {
			if i+1 >= len(models.AllDimensions) {
				return false
			}
			sess.CurrentDimension = models.AllDimensions[i+1]
			return true
		}
	}
	return false
}

func answeredSet(st *models.DimensionState) map[string]bool {
	set := make(map[string]bool, len(st.Responses))
	for _, r := range st.Responses {
		set[r.ItemID] = true
	}
	return set
}

func findItem(pool []models.Item, id string) (models.Item, bool) {
	for _, item := range pool {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}
