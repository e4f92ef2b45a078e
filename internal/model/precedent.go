package model

// PrecedentCase is a reference case used for comparative outcome estimation.
// The corpus is fixed and read-only; instances are copied before ranking.
type PrecedentCase struct {
	Title            string   `json:"title"`
	Facts            string   `json:"facts"`
	Outcome          string   `json:"outcome"`
	EvidenceStrength string   `json:"evidence_strength"`
	StrategyUsed     string   `json:"strategy_used"`
	KeyFactors       []string `json:"key_factors"`
}

// RankedPrecedent is a precedent case with an assigned similarity score
type RankedPrecedent struct {
	PrecedentCase
	Similarity float64 `json:"similarity"` // 0-1, higher is more similar
}
