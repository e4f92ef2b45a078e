package model

// WinProbability is the blended outcome estimate. It is a synthetic 0-100
// heuristic score, not a calibrated statistical estimate.
type WinProbability struct {
	WinProbability       float64 `json:"win_probability"`       // 0-100, clamped, rounded to integer
	BaseCaseProbability  float64 `json:"base_case_probability"` // 0-100, from similar case outcomes
	EvidenceContribution float64 `json:"evidence_contribution"` // Signed, rounded to 1 decimal
	StrategyContribution float64 `json:"strategy_contribution"` // Signed, rounded to 1 decimal
}

// Outcome category labels by probability band
const (
	OutcomeHighlyFavorable     = "Highly Favorable"     // >= 80
	OutcomeModeratelyFavorable = "Moderately Favorable" // >= 65
	OutcomeBalanced            = "Balanced"             // >= 45
	OutcomeChallenging         = "Challenging"          // >= 30
	OutcomeHighlyChallenging   = "Highly Challenging"   // < 30
)

// OutcomeAnalysis is the human-readable reading of the probability estimate
type OutcomeAnalysis struct {
	Category               string   `json:"outcome_category"`
	Description            string   `json:"outcome_description"`
	PositiveFactors        []string `json:"key_positive_factors"` // Never empty
	NegativeFactors        []string `json:"key_negative_factors"` // Never empty
	JudicialConsiderations []string `json:"judicial_considerations"`
}

// RecommendationCategory groups recommendations by the area they address
type RecommendationCategory string

const (
	RecommendEvidence       RecommendationCategory = "Evidence"
	RecommendStrategy       RecommendationCategory = "Strategy"
	RecommendCaseComparison RecommendationCategory = "Case Comparison"
	RecommendSettlement     RecommendationCategory = "Settlement"
	RecommendPreparation    RecommendationCategory = "Preparation"
)

// Priority indicates how urgently a recommendation should be acted on
type Priority string

const (
	PriorityCritical    Priority = "Critical"
	PriorityHigh        Priority = "High"
	PriorityModerate    Priority = "Moderate"
	PriorityEnhancement Priority = "Enhancement"
)

// Recommendation is a single prioritized action item
type Recommendation struct {
	Category       RecommendationCategory `json:"category"`
	Priority       Priority               `json:"priority"`
	Recommendation string                 `json:"recommendation"`
	Rationale      string                 `json:"rationale"`
}

// AnalysisResult is the complete analysis payload. It is recomputed fresh on
// every request and never persisted by the engine. The JSON shape is the
// interchange contract shared with the LLM collaborator and must be preserved
// field-for-field.
type AnalysisResult struct {
	WinProbability   WinProbability    `json:"win_probability"`
	OutcomeAnalysis  OutcomeAnalysis   `json:"outcome_analysis"`
	EvidenceAnalysis EvidencePortfolio `json:"evidence_analysis"`
	StrategyAnalysis StrategyProfile   `json:"strategy_analysis"`
	SimilarCases     []RankedPrecedent `json:"similar_cases"` // Top 5 by similarity
	Recommendations  []Recommendation  `json:"recommendations"`
}
