package assessment

import (
	"log"
	"os"
	"strconv"
)

// SelectionStrategy names an item-selection policy. A session's selector is
// fixed at construction; strategies are never mixed.
type SelectionStrategy string

const (
	// StrategyClosestDifficulty picks the remaining item whose difficulty is
	// closest to the current theta. This is the default operational policy.
	StrategyClosestDifficulty SelectionStrategy = "closest_difficulty"
	// StrategyMaxInformation picks the remaining item with the highest item
	// information at the current theta.
	StrategyMaxInformation SelectionStrategy = "max_info"
)

// Config holds the assessment tunables. Immutable after construction.
type Config struct {
	MaxQuestions    int     // global cap across all dimensions
	MinQuestions    int     // global floor, informational
	MaxPerDimension int
	MinPerDimension int
	TargetSE        float64 // precision threshold for stopping
	MinTheta        float64
	MaxTheta        float64
	Strategy        SelectionStrategy
}

// DefaultConfig returns the production tunables: 50 questions total,
// 5-10 per dimension, SE target 0.3, theta clamped to [-3, 3].
func DefaultConfig() Config {
	return Config{
		MaxQuestions:    50,
		MinQuestions:    25,
		MaxPerDimension: 10,
		MinPerDimension: 5,
		TargetSE:        0.3,
		MinTheta:        -3.0,
		MaxTheta:        3.0,
		Strategy:        StrategyClosestDifficulty,
	}
}

// ConfigFromEnv returns DefaultConfig with any CAT_* environment overrides
// applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.MaxQuestions = envInt("CAT_MAX_QUESTIONS", cfg.MaxQuestions)
	cfg.MinQuestions = envInt("CAT_MIN_QUESTIONS", cfg.MinQuestions)
	cfg.MaxPerDimension = envInt("CAT_MAX_PER_DIMENSION", cfg.MaxPerDimension)
	cfg.MinPerDimension = envInt("CAT_MIN_PER_DIMENSION", cfg.MinPerDimension)
	cfg.TargetSE = envFloat("CAT_TARGET_SE", cfg.TargetSE)
	cfg.MinTheta = envFloat("CAT_MIN_THETA", cfg.MinTheta)
	cfg.MaxTheta = envFloat("CAT_MAX_THETA", cfg.MaxTheta)

	if v := os.Getenv("SELECT_STRATEGY"); v != "" {
		switch SelectionStrategy(v) {
		case StrategyClosestDifficulty, StrategyMaxInformation:
			cfg.Strategy = SelectionStrategy(v)
		default:
			log.Printf("WARN: unknown SELECT_STRATEGY %q, keeping %s", v, cfg.Strategy)
		}
	}

	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
