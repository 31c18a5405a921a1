package assessment

import (
	"math"

	"github.com/personality-cat/backend/internal/models"
)

const (
	maxIterations        = 50
	convergenceThreshold = 0.001
	// informationFloor bounds the standard error when total information is
	// near zero (e.g. all identical outcomes).
	informationFloor = 0.1
)

// BinarizeResponse maps a raw 1-5 Likert response to a 0/1 endorsement
// outcome. Reverse-scored items are flipped (6 − response) first, then the
// result counts as endorsed when it is 4 or higher.
func BinarizeResponse(raw int, reverseScored bool) int {
	value := raw
	if reverseScored {
		value = 6 - raw
	}
	if value >= 4 {
		return 1
	}
	return 0
}

// EstimationInput unpacks a dimension's response history into the parallel
// sequences the estimator consumes.
func EstimationInput(records []models.ResponseRecord) (outcomes []int, difficulties, discriminations []float64) {
	outcomes = make([]int, len(records))
	difficulties = make([]float64, len(records))
	discriminations = make([]float64, len(records))
	for i, r := range records {
		outcomes[i] = BinarizeResponse(r.Response, r.ReverseScored)
		difficulties[i] = r.Difficulty
		discriminations[i] = r.Discrimination
	}
	return outcomes, difficulties, discriminations
}

// EstimateTheta runs Newton-Raphson maximum-likelihood estimation over the
// full response history and returns the ability estimate and its standard
// error. An empty history returns the prior (0.0, 1.0). The estimate is
// clamped to [cfg.MinTheta, cfg.MaxTheta].
func EstimateTheta(outcomes []int, difficulties, discriminations []float64, cfg Config) (theta, se float64) {
	if len(outcomes) == 0 {
		return 0.0, 1.0
	}

	theta = 0.0
	information := 0.0

	for iter := 0; iter < maxIterations; iter++ {
		score := 0.0
		information = 0.0

		for i, u := range outcomes {
			a := discriminations[i]
			p := Probability(theta, difficulties[i], a)
			score += a * (float64(u) - p)
			information += a * a * p * (1 - p)
		}

		// Degenerate: no usable information (all outcomes identical and
		// probabilities saturated). Stop at the current estimate.
		if information <= 0 {
			break
		}

		thetaNew := clamp(theta+score/information, cfg.MinTheta, cfg.MaxTheta)
		if math.Abs(thetaNew-theta) < convergenceThreshold {
			theta = thetaNew
			break
		}
		theta = thetaNew
	}

	se = 1.0 / math.Sqrt(math.Max(information, informationFloor))
	return theta, se
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
