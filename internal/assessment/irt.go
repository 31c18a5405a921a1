package assessment

import "math"

// fallbackInformation is returned when the information computation is not
// numerically usable (overflow, degenerate parameters). It keeps the item
// "uninformative but non-zero" so selection never divides by zero.
const fallbackInformation = 0.1

// probEpsilon keeps probabilities strictly inside (0, 1).
const probEpsilon = 1e-10

// Probability returns the 2PL endorsement probability for ability theta,
// item difficulty b, and discrimination a. Always in (0, 1) exclusive.
func Probability(theta, b, a float64) float64 {
	z := a * (theta - b)
	p := 1.0 / (1.0 + math.Exp(-z))
	if p <= 0 {
		return probEpsilon
	}
	if p >= 1 {
		return 1 - probEpsilon
	}
	return p
}

// ItemInformation returns the 2PL item information a²·p·(1−p) at theta.
// The peak is a²/4 at theta = b. Non-finite or non-positive results fall
// back to a small positive constant.
func ItemInformation(theta, b, a float64) float64 {
	p := Probability(theta, b, a)
	info := a * a * p * (1 - p)
	if math.IsNaN(info) || math.IsInf(info, 0) || info <= 0 {
		return fallbackInformation
	}
	return info
}
