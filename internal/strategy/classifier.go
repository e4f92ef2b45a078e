package strategy

import (
	"sort"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// archetypeRule binds an archetype name to its detection keywords
type archetypeRule struct {
	name     string
	keywords []string
}

// Classifier scores a free-text strategy description against the five fixed
// strategic archetypes
type Classifier struct {
	rules []archetypeRule
}

// NewClassifier creates a classifier with the standard archetype keyword sets
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []archetypeRule{
			{model.StrategyProcedural, []string{"procedural", "process", "motion to dismiss", "summary judgment", "jurisdiction"}},
			{model.StrategySubstantive, []string{"substantive", "merits", "elements", "statutory", "precedent"}},
			{model.StrategySettlement, []string{"settlement", "negotiation", "mediation", "resolution", "compromise"}},
			{model.StrategyAggressive, []string{"aggressive", "challenge", "attack", "counter", "offensive"}},
			{model.StrategyDefensive, []string{"defensive", "mitigate", "limit", "reduce", "protect"}},
		},
	}
}

// Classify derives the full strategy profile from a description.
// Each keyword counts at most once regardless of repetition (membership test,
// not occurrence count). An empty description yields all-zero scores.
func (c *Classifier) Classify(text string) model.StrategyProfile {
	lower := strings.ToLower(text)

	type ranked struct {
		name  string
		score int
	}

	scores := make(map[string]int, len(c.rules))
	order := make([]ranked, 0, len(c.rules))

	for _, rule := range c.rules {
		hits := 0
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		scores[rule.name] = hits
		order = append(order, ranked{rule.name, hits})
	}

	// Stable sort so equal scores keep the canonical archetype order
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	primary := model.StrategyUndefined
	if order[0].score > 0 {
		primary = order[0].name
	}
	secondary := ""
	if len(order) > 1 && order[1].score > 0 {
		secondary = order[1].name
	}

	maxScore := order[0].score

	return model.StrategyProfile{
		Primary:       primary,
		Secondary:     secondary,
		Scores:        scores,
		Balance:       assessBalance(order[0].score, order[1].score, totalScore(scores)),
		Gaps:          identifyGaps(scores, lower, maxScore),
		Effectiveness: effectiveness(maxScore),
	}
}

func totalScore(scores map[string]int) int {
	total := 0
	for _, score := range scores {
		total += score
	}
	return total
}

// assessBalance labels how the keyword weight spreads across archetypes
func assessBalance(top, second, total int) string {
	if total == 0 {
		return "Undefined strategy"
	}
	if float64(top)/float64(total) > 0.7 {
		return "Heavily weighted toward one approach"
	}
	if top > 0 && second > 0 {
		return "Balanced approach with complementary strategies"
	}
	return "Moderately focused approach"
}

// identifyGaps evaluates each gap rule independently, with a guaranteed
// contingency fallback so the list is never empty
func identifyGaps(scores map[string]int, lowerText string, maxScore int) []string {
	var gaps []string

	if maxScore < 2 {
		gaps = append(gaps, "Strategy lacks clear definition - consider more explicit strategic planning")
	}

	if scores[model.StrategyProcedural] == 0 {
		gaps = append(gaps, "Consider adding procedural strategy elements")
	}
	if scores[model.StrategySubstantive] == 0 {
		gaps = append(gaps, "Consider strengthening substantive legal arguments")
	}
	if scores[model.StrategySettlement] == 0 && !strings.Contains(lowerText, "settlement") {
		gaps = append(gaps, "No settlement strategy defined - consider fallback positions")
	}

	if len(lowerText) < 100 {
		gaps = append(gaps, "Strategy description is brief - consider more detailed planning")
	}

	if len(gaps) == 0 {
		gaps = append(gaps, "Consider contingency planning for unexpected developments")
	}

	return gaps
}

// effectiveness labels the strategy by its strongest archetype score
func effectiveness(maxScore int) string {
	switch {
	case maxScore >= 3:
		return "Well-defined approach with clear direction"
	case maxScore >= 1:
		return "Identifiable approach but could be more clearly articulated"
	default:
		return "Strategy lacks clear direction or focus"
	}
}
