package predict

import (
	"fmt"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// judicialConsiderations is a fixed advisory list, independent of all inputs
var judicialConsiderations = []string{
	"Judicial interpretation of key statutes may impact case outcome",
	"Court's disposition toward similar cases in this jurisdiction",
	"Potential for procedural versus substantive resolution",
	"Judicial calendar and time constraints may affect strategy timelines",
	"Court's historical approach to comparable evidence portfolios",
}

// Generator turns the probability estimate and upstream analyses into the
// human-readable outcome reading and the prioritized recommendation list
type Generator struct{}

// NewGenerator creates a new outcome and recommendation generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Outcome builds the outcome analysis for a probability estimate.
// Factor rules fire independently; both factor lists fall back to a generic
// entry rather than coming back empty.
func (g *Generator) Outcome(prob model.WinProbability, similar []model.RankedPrecedent, portfolio model.EvidencePortfolio, profile model.StrategyProfile) model.OutcomeAnalysis {
	category, description := categorizeOutcome(prob.WinProbability)

	var positive []string
	if portfolio.OverallScore >= 70 {
		positive = append(positive, "Strong overall evidence portfolio")
	}
	if n := countItemsAtLeast(portfolio.Items, 70); n > 0 {
		positive = append(positive, fmt.Sprintf("Presence of %d strong evidence items", n))
	}
	if strings.HasPrefix(profile.Effectiveness, "Well-defined") {
		positive = append(positive, "Clear strategic direction with focused approach")
	}
	if n := countTopOutcomes(similar, "win", "favorable"); n > 0 {
		positive = append(positive, fmt.Sprintf("%d similar cases with favorable outcomes", n))
	}
	if len(positive) == 0 {
		positive = append(positive, "Case presents opportunity for targeted strategic improvements")
	}

	var negative []string
	if portfolio.OverallScore < 60 {
		negative = append(negative, "Evidence portfolio lacks sufficient strength")
	}
	if n := countItemsBelow(portfolio.Items, 50); n > 0 {
		negative = append(negative, fmt.Sprintf("Presence of %d weak evidence items", n))
	}
	if len(profile.Gaps) > 0 {
		negative = append(negative, fmt.Sprintf("Strategy gaps in %s", firstSegment(profile.Gaps[0])))
	}
	if n := countTopOutcomes(similar, "loss", "unfavorable"); n > 0 {
		negative = append(negative, fmt.Sprintf("%d similar cases with unfavorable outcomes", n))
	}
	if len(negative) == 0 {
		negative = append(negative, "Case requires sustained attention to maintain advantages")
	}

	return model.OutcomeAnalysis{
		Category:               category,
		Description:            description,
		PositiveFactors:        positive,
		NegativeFactors:        negative,
		JudicialConsiderations: append([]string(nil), judicialConsiderations...),
	}
}

// categorizeOutcome bands a win probability into its label and description
func categorizeOutcome(probability float64) (string, string) {
	switch {
	case probability >= 80:
		return model.OutcomeHighlyFavorable,
			"Strong likelihood of a favorable outcome with clear advantages across multiple factors."
	case probability >= 65:
		return model.OutcomeModeratelyFavorable,
			"Good prospects for a favorable outcome, though some areas of vulnerability exist."
	case probability >= 45:
		return model.OutcomeBalanced,
			"Case could go either way, with relatively equal strengths and weaknesses."
	case probability >= 30:
		return model.OutcomeChallenging,
			"Significant hurdles exist, though partial success may be possible with strategic improvements."
	default:
		return model.OutcomeHighlyChallenging,
			"Substantial barriers to success with the current approach and evidence."
	}
}

// countTopOutcomes counts top-3 precedents whose outcome contains any of the
// given markers (case-insensitive)
func countTopOutcomes(similar []model.RankedPrecedent, markers ...string) int {
	top := similar
	if len(top) > 3 {
		top = top[:3]
	}

	count := 0
	for _, rc := range top {
		lower := strings.ToLower(rc.Outcome)
		for _, marker := range markers {
			if strings.Contains(lower, marker) {
				count++
				break
			}
		}
	}
	return count
}

func countItemsAtLeast(items []model.ScoredEvidence, threshold float64) int {
	count := 0
	for _, item := range items {
		if item.StrengthScore >= threshold {
			count++
		}
	}
	return count
}

func countItemsBelow(items []model.ScoredEvidence, threshold float64) int {
	count := 0
	for _, item := range items {
		if item.StrengthScore < threshold {
			count++
		}
	}
	return count
}

// firstSegment truncates a gap message before its first "-" separator,
// keeping only the headline part
func firstSegment(gap string) string {
	if i := strings.Index(gap, "-"); i >= 0 {
		return gap[:i]
	}
	return gap
}
