package itembank

import (
	"fmt"
	"strings"

	"github.com/personality-cat/backend/internal/models"
)

// SystemPrompt instructs the model to produce calibrated Likert items as a
// bare JSON array.
func SystemPrompt() string {
	return `You are a psychometrician writing Big Five personality inventory items for a computerized adaptive test.

Each item is a first-person statement answered on a 1-5 Likert scale (1 = strongly disagree, 5 = strongly agree).

For every item provide IRT 2PL parameters:
- "difficulty" (b): the trait level at which agreement becomes more likely than not, between -3.0 and 3.0. Spread difficulties across the range so the pool covers low, medium, and high trait levels.
- "discrimination" (a): how sharply the item separates trait levels, between 0.5 and 2.5.
- "reverse_scored": true when agreeing indicates LOW trait level.

Respond with ONLY a JSON array of item objects, no prose, no markdown fences:
[{"text": "...", "difficulty": 0.0, "discrimination": 1.4, "reverse_scored": false}]`
}

// BuildUserPrompt asks for count items targeting one trait, tailored to the
// participant cohort when demographics are present.
func BuildUserPrompt(dim models.Dimension, demo models.Demographics, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d items measuring %s.\n", count, traitDescription(dim))

	var cohort []string
	if demo.AgeGroup != "" && demo.AgeGroup != "unknown" {
		cohort = append(cohort, "age group: "+strings.ReplaceAll(demo.AgeGroup, "_", " "))
	}
	if demo.Gender != "" {
		cohort = append(cohort, "gender: "+demo.Gender)
	}
	if demo.EducationLevel != "" {
		cohort = append(cohort, "education: "+demo.EducationLevel)
	}
	if demo.MaritalStatus != "" {
		cohort = append(cohort, "marital status: "+demo.MaritalStatus)
	}
	if len(cohort) > 0 {
		fmt.Fprintf(&b, "Tailor the scenarios to a participant with %s. Keep the statements natural for that cohort's daily life.\n", strings.Join(cohort, ", "))
	}

	b.WriteString("Include 2-3 reverse-scored items. Cover the difficulty range from about -1.5 to 1.5.\n")
	b.WriteString("Where it reads naturally, you may address the participant directly using the literal placeholder {name}; it is substituted with their first name at display time.")
	return b.String()
}

func traitDescription(dim models.Dimension) string {
	switch dim {
	case models.DimensionOpenness:
		return "openness to experience (curiosity, imagination, appreciation of art and new ideas)"
	case models.DimensionConscientiousness:
		return "conscientiousness (organization, diligence, self-discipline, reliability)"
	case models.DimensionExtraversion:
		return "extraversion (sociability, assertiveness, energy around other people)"
	case models.DimensionAgreeableness:
		return "agreeableness (compassion, cooperation, trust in others)"
	case models.DimensionNeuroticism:
		return "neuroticism (proneness to worry, mood swings, emotional reactivity)"
	}
	return string(dim)
}
