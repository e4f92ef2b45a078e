package predict

import (
	"strings"
	"testing"

	"github.com/dbelyaev/caselens/internal/model"
)

func TestCategorizeOutcome_Bands(t *testing.T) {
	tests := []struct {
		probability float64
		want        string
	}{
		{95, model.OutcomeHighlyFavorable},
		{80, model.OutcomeHighlyFavorable},
		{79, model.OutcomeModeratelyFavorable},
		{65, model.OutcomeModeratelyFavorable},
		{64, model.OutcomeBalanced},
		{45, model.OutcomeBalanced},
		{44, model.OutcomeChallenging},
		{30, model.OutcomeChallenging},
		{29, model.OutcomeHighlyChallenging},
		{0, model.OutcomeHighlyChallenging},
	}

	for _, tt := range tests {
		category, description := categorizeOutcome(tt.probability)
		if category != tt.want {
			t.Errorf("categorizeOutcome(%v) = %q, want %q", tt.probability, category, tt.want)
		}
		if description == "" {
			t.Errorf("categorizeOutcome(%v) returned empty description", tt.probability)
		}
	}
}

func TestGenerator_Outcome_PositiveFactors(t *testing.T) {
	gen := NewGenerator()

	portfolio := model.EvidencePortfolio{
		OverallScore: 85,
		Items: []model.ScoredEvidence{
			{StrengthScore: 90},
			{StrengthScore: 80},
			{StrengthScore: 40},
		},
	}
	profile := model.StrategyProfile{
		Effectiveness: "Well-defined approach with clear direction",
	}
	similar := rankedWithOutcomes("Win at trial", "Favorable settlement", "Loss at trial")

	outcome := gen.Outcome(model.WinProbability{WinProbability: 85}, similar, portfolio, profile)

	joined := strings.Join(outcome.PositiveFactors, " | ")
	if !strings.Contains(joined, "Strong overall evidence portfolio") {
		t.Errorf("Missing overall-strength factor: %v", outcome.PositiveFactors)
	}
	if !strings.Contains(joined, "Presence of 2 strong evidence items") {
		t.Errorf("Missing strong-item count: %v", outcome.PositiveFactors)
	}
	if !strings.Contains(joined, "Clear strategic direction") {
		t.Errorf("Missing strategy factor: %v", outcome.PositiveFactors)
	}
	if !strings.Contains(joined, "2 similar cases with favorable outcomes") {
		t.Errorf("Missing favorable-precedent count: %v", outcome.PositiveFactors)
	}
}

func TestGenerator_Outcome_NegativeFactors(t *testing.T) {
	gen := NewGenerator()

	portfolio := model.EvidencePortfolio{
		OverallScore: 45,
		Items: []model.ScoredEvidence{
			{StrengthScore: 40},
			{StrengthScore: 45},
			{StrengthScore: 60},
		},
	}
	profile := model.StrategyProfile{
		Gaps: []string{"Strategy lacks clear definition - consider more explicit strategic planning"},
	}
	similar := rankedWithOutcomes("Loss at trial", "Unfavorable ruling", "Win")

	outcome := gen.Outcome(model.WinProbability{WinProbability: 30}, similar, portfolio, profile)

	joined := strings.Join(outcome.NegativeFactors, " | ")
	if !strings.Contains(joined, "lacks sufficient strength") {
		t.Errorf("Missing weak-portfolio factor: %v", outcome.NegativeFactors)
	}
	if !strings.Contains(joined, "Presence of 2 weak evidence items") {
		t.Errorf("Missing weak-item count: %v", outcome.NegativeFactors)
	}
	// The gap headline is truncated before its "-" separator
	if !strings.Contains(joined, "Strategy gaps in Strategy lacks clear definition ") {
		t.Errorf("Missing truncated strategy-gap factor: %v", outcome.NegativeFactors)
	}
	if strings.Contains(joined, "explicit strategic planning") {
		t.Errorf("Gap text after separator should be truncated: %v", outcome.NegativeFactors)
	}
	if !strings.Contains(joined, "2 similar cases with unfavorable outcomes") {
		t.Errorf("Missing unfavorable-precedent count: %v", outcome.NegativeFactors)
	}
}

func TestGenerator_Outcome_Fallbacks(t *testing.T) {
	gen := NewGenerator()

	// Mid-range inputs trip none of the factor rules in either direction
	portfolio := model.EvidencePortfolio{
		OverallScore: 65,
		Items:        []model.ScoredEvidence{{StrengthScore: 65}},
	}
	profile := model.StrategyProfile{Effectiveness: "Identifiable approach but could be more clearly articulated"}
	similar := rankedWithOutcomes("Settlement after discovery", "Dismissed", "Remanded")

	outcome := gen.Outcome(model.WinProbability{WinProbability: 55}, similar, portfolio, profile)

	if len(outcome.PositiveFactors) != 1 ||
		!strings.Contains(outcome.PositiveFactors[0], "targeted strategic improvements") {
		t.Errorf("Expected positive fallback factor, got %v", outcome.PositiveFactors)
	}
	if len(outcome.NegativeFactors) != 1 ||
		!strings.Contains(outcome.NegativeFactors[0], "sustained attention") {
		t.Errorf("Expected negative fallback factor, got %v", outcome.NegativeFactors)
	}
}

func TestGenerator_Outcome_JudicialConsiderationsFixed(t *testing.T) {
	gen := NewGenerator()

	a := gen.Outcome(model.WinProbability{WinProbability: 10}, nil, model.EvidencePortfolio{}, model.StrategyProfile{})
	b := gen.Outcome(model.WinProbability{WinProbability: 90}, rankedWithOutcomes("Win"), model.EvidencePortfolio{OverallScore: 100}, model.StrategyProfile{})

	if len(a.JudicialConsiderations) != 5 {
		t.Fatalf("Expected 5 judicial considerations, got %d", len(a.JudicialConsiderations))
	}
	for i := range a.JudicialConsiderations {
		if a.JudicialConsiderations[i] != b.JudicialConsiderations[i] {
			t.Errorf("Judicial considerations vary with inputs at %d", i)
		}
	}
}

func TestFirstSegment(t *testing.T) {
	tests := []struct {
		gap  string
		want string
	}{
		{"No documentary evidence present - consider adding documentation to strengthen case", "No documentary evidence present "},
		{"Consider adding procedural strategy elements", "Consider adding procedural strategy elements"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstSegment(tt.gap); got != tt.want {
			t.Errorf("firstSegment(%q) = %q, want %q", tt.gap, got, tt.want)
		}
	}
}
