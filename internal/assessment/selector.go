package assessment

import (
	"math"
	"math/rand"

	"github.com/personality-cat/backend/internal/models"
)

// First items are drawn at random from this difficulty band so a single
// extreme item can't skew the initial estimate.
const (
	mediumBandLow  = -0.5
	mediumBandHigh = 0.5
)

// Selector chooses the next item from a dimension's remaining pool.
// The random source is injected so first-item selection is reproducible
// under test.
type Selector struct {
	strategy SelectionStrategy
	rng      *rand.Rand
}

func NewSelector(strategy SelectionStrategy, rng *rand.Rand) *Selector {
	return &Selector{strategy: strategy, rng: rng}
}

// Next returns the next item to administer given the current theta, the
// dimension's full pool, and the set of already-answered item IDs. The
// second return is false when the pool is exhausted; the caller treats that
// as dimension completion, not an error.
func (s *Selector) Next(theta float64, pool []models.Item, answered map[string]bool) (models.Item, bool) {
	candidates := make([]models.Item, 0, len(pool))
	for _, item := range pool {
		if !answered[item.ID] {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		return models.Item{}, false
	}

	// First item of a dimension: random medium-difficulty pick.
	if len(answered) == 0 {
		return s.pickFirst(candidates), true
	}

	if s.strategy == StrategyMaxInformation {
		return pickMaxInformation(theta, candidates), true
	}
	return pickClosestDifficulty(theta, candidates), true
}

func (s *Selector) pickFirst(candidates []models.Item) models.Item {
	var medium []models.Item
	for _, item := range candidates {
		if item.Difficulty >= mediumBandLow && item.Difficulty <= mediumBandHigh {
			medium = append(medium, item)
		}
	}
	if len(medium) > 0 {
		return medium[s.rng.Intn(len(medium))]
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// pickClosestDifficulty returns the candidate whose difficulty is nearest to
// theta. Ties keep the earliest pool-order candidate.
func pickClosestDifficulty(theta float64, candidates []models.Item) models.Item {
	best := candidates[0]
	bestDist := math.Abs(best.Difficulty - theta)
	for _, item := range candidates[1:] {
		if d := math.Abs(item.Difficulty - theta); d < bestDist {
			best = item
			bestDist = d
		}
	}
	return best
}

// pickMaxInformation returns the candidate with the highest item information
// at theta. Ties keep the earliest pool-order candidate.
func pickMaxInformation(theta float64, candidates []models.Item) models.Item {
	best := candidates[0]
	bestInfo := ItemInformation(theta, best.Difficulty, best.Discrimination)
	for _, item := range candidates[1:] {
		if info := ItemInformation(theta, item.Difficulty, item.Discrimination); info > bestInfo {
			best = item
			bestInfo = info
		}
	}
	return best
}
