package itembank

import "github.com/personality-cat/backend/internal/models"

// Bank is the built-in calibrated item catalog. It always has enough items
// per dimension to run a full session, so the service never blocks on the
// generator.
type Bank struct {
	items map[models.Dimension][]models.Item
}

func NewBank() *Bank {
	b := &Bank{items: make(map[models.Dimension][]models.Item)}
	for _, item := range catalog {
		b.items[item.Dimension] = append(b.items[item.Dimension], item)
	}
	return b
}

// Items returns up to count catalog items for the dimension, in calibration
// order. The returned slice is a copy.
func (b *Bank) Items(dim models.Dimension, count int) []models.Item {
	pool := b.items[dim]
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]models.Item, count)
	copy(out, pool[:count])
	return out
}

// Size returns the catalog size for a dimension.
func (b *Bank) Size(dim models.Dimension) int {
	return len(b.items[dim])
}

func item(id string, dim models.Dimension, text string, difficulty, discrimination float64, reverse bool) models.Item {
	return models.Item{
		ID:             id,
		Dimension:      dim,
		Text:           text,
		Difficulty:     difficulty,
		Discrimination: discrimination,
		ReverseScored:  reverse,
	}
}

// Difficulties per dimension span -1.0 to 1.0 in two passes so the selector
// always finds a medium-band first item and has neighbors on both sides of
// any plausible theta.
var catalog = []models.Item{
	// Openness
	item("openness_01", models.DimensionOpenness, "I enjoy hearing about ideas that challenge the way I see the world.", -1.0, 1.5, false),
	item("openness_02", models.DimensionOpenness, "I often try food, music, or places I have never experienced before.", -0.5, 1.4, false),
	item("openness_03", models.DimensionOpenness, "I spend time thinking about abstract questions with no practical payoff.", 0.0, 1.6, false),
	item("openness_04", models.DimensionOpenness, "I would rather stick with familiar routines than experiment with new ones.", 0.5, 1.3, true),
	item("openness_05", models.DimensionOpenness, "I seek out art, books, or films that most people around me find strange.", 1.0, 1.7, false),
	item("openness_06", models.DimensionOpenness, "I get curious when someone mentions a subject I know nothing about.", -1.0, 1.2, false),
	item("openness_07", models.DimensionOpenness, "I like imagining how things could be done completely differently.", -0.5, 1.5, false),
	item("openness_08", models.DimensionOpenness, "I find discussions about theories and hypotheticals tiresome.", 0.0, 1.4, true),
	item("openness_09", models.DimensionOpenness, "I rearrange my plans just to make room for something unfamiliar.", 0.5, 1.6, false),
	item("openness_10", models.DimensionOpenness, "I have changed a long-held opinion after deliberately exploring the other side.", 1.0, 1.8, false),

	// Conscientiousness
	item("conscientiousness_01", models.DimensionConscientiousness, "I finish tasks I start, even small ones nobody checks on.", -1.0, 1.5, false),
	item("conscientiousness_02", models.DimensionConscientiousness, "I keep my belongings and workspaces in a predictable order.", -0.5, 1.3, false),
	item("conscientiousness_03", models.DimensionConscientiousness, "I plan my week in advance rather than deciding day by day.", 0.0, 1.6, false),
	item("conscientiousness_04", models.DimensionConscientiousness, "I often leave chores half-done when something more interesting comes up.", 0.5, 1.4, true),
	item("conscientiousness_05", models.DimensionConscientiousness, "I double-check my work for mistakes even when I am confident in it.", 1.0, 1.7, false),
	item("conscientiousness_06", models.DimensionConscientiousness, "I show up on time for appointments and commitments.", -1.0, 1.2, false),
	item("conscientiousness_07", models.DimensionConscientiousness, "I set concrete goals and track my progress toward them.", -0.5, 1.5, false),
	item("conscientiousness_08", models.DimensionConscientiousness, "I tend to put off difficult tasks until the deadline forces me.", 0.0, 1.5, true),
	item("conscientiousness_09", models.DimensionConscientiousness, "I keep working carefully even when a task becomes tedious.", 0.5, 1.6, false),
	item("conscientiousness_10", models.DimensionConscientiousness, "I maintain routines, like exercise or budgeting, for months without lapses.", 1.0, 1.8, false),

	// Extraversion
	item("extraversion_01", models.DimensionExtraversion, "I feel comfortable chatting with people I have just met.", -1.0, 1.4, false),
	item("extraversion_02", models.DimensionExtraversion, "I look forward to gatherings with lots of people.", -0.5, 1.5, false),
	item("extraversion_03", models.DimensionExtraversion, "I naturally take the lead in group conversations.", 0.0, 1.6, false),
	item("extraversion_04", models.DimensionExtraversion, "I find long social events draining and need time alone afterward.", 0.5, 1.3, true),
	item("extraversion_05", models.DimensionExtraversion, "I am usually the one who gets a quiet room talking.", 1.0, 1.7, false),
	item("extraversion_06", models.DimensionExtraversion, "I would rather spend an evening with friends than alone.", -1.0, 1.2, false),
	item("extraversion_07", models.DimensionExtraversion, "I speak up in meetings or classes without being prompted.", -0.5, 1.5, false),
	item("extraversion_08", models.DimensionExtraversion, "I prefer listening from the sidelines to being the center of attention.", 0.0, 1.4, true),
	item("extraversion_09", models.DimensionExtraversion, "I introduce myself to strangers at events where I know no one.", 0.5, 1.6, false),
	item("extraversion_10", models.DimensionExtraversion, "I volunteer to present or perform in front of large audiences.", 1.0, 1.8, false),

	// Agreeableness
	item("agreeableness_01", models.DimensionAgreeableness, "I give people the benefit of the doubt when their intentions are unclear.", -1.0, 1.4, false),
	item("agreeableness_02", models.DimensionAgreeableness, "I go out of my way to help someone who is struggling.", -0.5, 1.5, false),
	item("agreeableness_03", models.DimensionAgreeableness, "I look for compromises even when I am sure I am right.", 0.0, 1.6, false),
	item("agreeableness_04", models.DimensionAgreeableness, "I point out other people's mistakes more often than I compliment them.", 0.5, 1.3, true),
	item("agreeableness_05", models.DimensionAgreeableness, "I forgive people quickly, even for things that genuinely hurt me.", 1.0, 1.7, false),
	item("agreeableness_06", models.DimensionAgreeableness, "I feel bad for a long time after being short with someone.", -1.0, 1.2, false),
	item("agreeableness_07", models.DimensionAgreeableness, "I adjust my plans so other people get what they need.", -0.5, 1.5, false),
	item("agreeableness_08", models.DimensionAgreeableness, "I assume people are trying to take advantage of me until proven otherwise.", 0.0, 1.5, true),
	item("agreeableness_09", models.DimensionAgreeableness, "I stay warm and patient even with people who are rude to me.", 0.5, 1.6, false),
	item("agreeableness_10", models.DimensionAgreeableness, "I put a stranger's urgent need ahead of my own plans.", 1.0, 1.8, false),

	// Neuroticism
	item("neuroticism_01", models.DimensionNeuroticism, "I notice my mood dip when small things go wrong.", -1.0, 1.4, false),
	item("neuroticism_02", models.DimensionNeuroticism, "I replay awkward moments in my head long after they happen.", -0.5, 1.5, false),
	item("neuroticism_03", models.DimensionNeuroticism, "I worry about problems that may never actually happen.", 0.0, 1.6, false),
	item("neuroticism_04", models.DimensionNeuroticism, "I stay calm and even-keeled under sudden pressure.", 0.5, 1.3, true),
	item("neuroticism_05", models.DimensionNeuroticism, "I feel overwhelmed by emotions several times a week.", 1.0, 1.7, false),
	item("neuroticism_06", models.DimensionNeuroticism, "I get tense before events whose outcome I cannot control.", -1.0, 1.2, false),
	item("neuroticism_07", models.DimensionNeuroticism, "Criticism stays with me longer than praise does.", -0.5, 1.5, false),
	item("neuroticism_08", models.DimensionNeuroticism, "I rarely lose sleep over things that happened during the day.", 0.0, 1.4, true),
	item("neuroticism_09", models.DimensionNeuroticism, "My mood can swing sharply within a single day.", 0.5, 1.6, false),
	item("neuroticism_10", models.DimensionNeuroticism, "I feel anxious even when everything in my life is going well.", 1.0, 1.8, false),
}
