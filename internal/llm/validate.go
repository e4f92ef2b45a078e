package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// ParseResult extracts and decodes the analysis JSON from raw model output.
// Models sometimes wrap the object in prose or code fences, so everything
// outside the outermost braces is discarded.
func ParseResult(raw string) (*model.AnalysisResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("decode analysis JSON: %w", err)
	}

	return &result, nil
}

// ValidateResult rejects structurally valid but semantically broken model
// output. A rejected result means the caller should fall back to the
// rule-based engine rather than surface bad numbers.
func ValidateResult(result *model.AnalysisResult) error {
	p := result.WinProbability.WinProbability
	if p < 0 || p > 100 {
		return fmt.Errorf("win probability %v out of range [0,100]", p)
	}

	if result.OutcomeAnalysis.Category == "" {
		return fmt.Errorf("missing outcome category")
	}

	if len(result.Recommendations) == 0 {
		return fmt.Errorf("no recommendations in response")
	}

	for i, sc := range result.SimilarCases {
		if sc.Similarity < 0 || sc.Similarity > 1 {
			return fmt.Errorf("similar case %d: similarity %v out of range [0,1]", i, sc.Similarity)
		}
	}

	return nil
}
