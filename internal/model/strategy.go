package model

// Strategy archetype names. The classifier scores free-text strategy
// descriptions against these five fixed approaches; the order here is the
// canonical one and breaks ties between equal keyword scores.
const (
	StrategyProcedural  = "procedural"
	StrategySubstantive = "substantive"
	StrategySettlement  = "settlement"
	StrategyAggressive  = "aggressive"
	StrategyDefensive   = "defensive"
)

// StrategyUndefined is the primary-strategy sentinel when no keyword matched
const StrategyUndefined = "undefined"

// StrategyProfile is the result of classifying a strategy description
type StrategyProfile struct {
	Primary       string         `json:"primary_strategy"`   // Archetype name or "undefined"
	Secondary     string         `json:"secondary_strategy"` // Archetype name or ""
	Scores        map[string]int `json:"strategy_scores"`    // Archetype -> keyword hit count
	Balance       string         `json:"strategy_balance"`
	Gaps          []string       `json:"strategy_gaps"` // Never empty
	Effectiveness string         `json:"strategy_effectiveness"`
}

// MaxScore returns the highest archetype score, 0 for an empty profile
func (p StrategyProfile) MaxScore() int {
	max := 0
	for _, score := range p.Scores {
		if score > max {
			max = score
		}
	}
	return max
}
