package assessment

import "github.com/personality-cat/backend/internal/models"

// DimensionSatisfied reports whether administration of one dimension should
// stop: either the precision target is met after the per-dimension minimum,
// or the per-dimension cap is reached. Below the minimum it always returns
// false regardless of SE.
func DimensionSatisfied(cfg Config, st *models.DimensionState) bool {
	count := st.Administered()
	if count >= cfg.MaxPerDimension {
		return true
	}
	if count < cfg.MinPerDimension {
		return false
	}
	return st.SE <= cfg.TargetSE
}

// SessionComplete reports whether the whole assessment is done: the global
// question budget is spent, or every dimension individually satisfies its
// stopping rule.
func SessionComplete(cfg Config, sess *models.Session) bool {
	if sess.TotalAnswered >= cfg.MaxQuestions {
		return true
	}
	for _, dim := range models.AllDimensions {
		if !DimensionSatisfied(cfg, sess.State(dim)) {
			return false
		}
	}
	return true
}
