package assess

import (
	"strings"
	"testing"

	"github.com/dbelyaev/caselens/internal/model"
)

func TestAssessor_DetectType(t *testing.T) {
	assessor := NewAssessor()

	tests := []struct {
		description string
		want        model.EvidenceType
	}{
		{"Signed contract agreement", model.EvidenceDocumentary},
		{"Email thread between the parties", model.EvidenceDocumentary},
		{"Witness statement from the site manager", model.EvidenceTestimonial},
		{"Deposition transcript of the CFO", model.EvidenceTestimonial},
		{"Photograph of the damaged property", model.EvidencePhysical},
		{"Video of the incident", model.EvidencePhysical},
		{"Expert evaluation of the design defect", model.EvidenceExpert},
		{"Handwritten notes of unclear origin", model.EvidenceOther},
		// "report" is in the documentary list, which is checked before expert,
		// so documentary claims the description even though an expert wrote it.
		{"Expert report on structural damage", model.EvidenceDocumentary},
		// "statement" puts this in testimonial before the expert rule is reached.
		{"Statement containing the expert opinion", model.EvidenceTestimonial},
	}

	for _, tt := range tests {
		if got := assessor.DetectType(tt.description); got != tt.want {
			t.Errorf("DetectType(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

func TestCategorizeStrength_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  model.StrengthCategory
	}{
		{100, model.StrengthVeryStrong},
		{80, model.StrengthVeryStrong},
		{79.9, model.StrengthStrong},
		{70, model.StrengthStrong},
		{69.9, model.StrengthModerate},
		{60, model.StrengthModerate},
		{59.9, model.StrengthAcceptable},
		{50, model.StrengthAcceptable},
		{49.9, model.StrengthWeak},
		{20, model.StrengthWeak},
		{0, model.StrengthWeak},
	}

	for _, tt := range tests {
		if got := CategorizeStrength(tt.score); got != tt.want {
			t.Errorf("CategorizeStrength(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAssessor_Assess_StrengthScoreRange(t *testing.T) {
	assessor := NewAssessor()

	// Every valid reliability/relevance combination lands in [20, 100]
	for reliability := 1; reliability <= 5; reliability++ {
		for relevance := 1; relevance <= 5; relevance++ {
			portfolio := assessor.Assess([]model.EvidenceItem{
				{Description: "test item", Reliability: reliability, Relevance: relevance},
			})
			score := portfolio.Items[0].StrengthScore
			if score < 20 || score > 100 {
				t.Errorf("strength score %v out of [20,100] for reliability=%d relevance=%d",
					score, reliability, relevance)
			}
			want := float64(reliability+relevance) * 10
			if score != want {
				t.Errorf("strength score = %v, want %v", score, want)
			}
		}
	}
}

func TestAssessor_Assess_SignedContract(t *testing.T) {
	assessor := NewAssessor()

	portfolio := assessor.Assess([]model.EvidenceItem{
		{Description: "Signed contract agreement", Reliability: 5, Relevance: 5},
	})

	item := portfolio.Items[0]
	if item.Type != model.EvidenceDocumentary {
		t.Errorf("Expected documentary type, got %q", item.Type)
	}
	if item.StrengthScore != 100 {
		t.Errorf("Expected strength score 100, got %v", item.StrengthScore)
	}
	if item.Category != model.StrengthVeryStrong {
		t.Errorf("Expected Very Strong category, got %q", item.Category)
	}
	// Nothing specific fires for a 5/5 item, so the generic suggestion remains
	if len(item.ImprovementSuggestions) != 1 {
		t.Fatalf("Expected exactly one suggestion, got %d", len(item.ImprovementSuggestions))
	}
	if !strings.Contains(item.ImprovementSuggestions[0], "Continue to integrate") {
		t.Errorf("Expected generic suggestion, got %q", item.ImprovementSuggestions[0])
	}
}

func TestAssessor_Assess_Suggestions(t *testing.T) {
	assessor := NewAssessor()

	// Weak documentary item: low-score warning first, then both type-specific checks
	portfolio := assessor.Assess([]model.EvidenceItem{
		{Description: "Unsigned draft contract", Reliability: 2, Relevance: 2},
	})

	suggestions := portfolio.Items[0].ImprovementSuggestions
	if len(suggestions) != 3 {
		t.Fatalf("Expected 3 suggestions, got %d: %v", len(suggestions), suggestions)
	}
	if !strings.Contains(suggestions[0], "worth presenting") {
		t.Errorf("Expected low-score warning first, got %q", suggestions[0])
	}
	if !strings.Contains(suggestions[1], "authenticity") {
		t.Errorf("Expected reliability suggestion second, got %q", suggestions[1])
	}
	if !strings.Contains(suggestions[2], "direct connection") {
		t.Errorf("Expected relevance suggestion third, got %q", suggestions[2])
	}
}

func TestAssessor_Assess_EmptyPortfolio(t *testing.T) {
	assessor := NewAssessor()

	portfolio := assessor.Assess(nil)

	if portfolio.OverallScore != 0 {
		t.Errorf("Expected overall score 0 for empty input, got %v", portfolio.OverallScore)
	}
	if portfolio.OverallCategory != model.StrengthWeak {
		t.Errorf("Expected Weak category for empty input, got %q", portfolio.OverallCategory)
	}

	// With zero items the three missing-type gaps fire, which suppresses the
	// limited-portfolio fallback gap.
	if len(portfolio.Gaps) != 3 {
		t.Fatalf("Expected 3 gaps for empty input, got %d: %v", len(portfolio.Gaps), portfolio.Gaps)
	}
	for _, fragment := range []string{"documentary", "witness testimony", "expert evidence"} {
		found := false
		for _, gap := range portfolio.Gaps {
			if strings.Contains(gap, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected a gap mentioning %q, got %v", fragment, portfolio.Gaps)
		}
	}

	if len(portfolio.Strengths) != 1 || !strings.Contains(portfolio.Strengths[0], "building on existing evidence") {
		t.Errorf("Expected fallback strength entry, got %v", portfolio.Strengths)
	}
}

func TestAssessor_Assess_FallbackGapSuppressed(t *testing.T) {
	assessor := NewAssessor()

	// A portfolio of fewer than 3 items always misses at least one tracked
	// type, so a type gap fires and the limited-portfolio fallback never does.
	portfolio := assessor.Assess([]model.EvidenceItem{
		{Description: "contract with witness statement from expert analysis", Reliability: 5, Relevance: 5},
		{Description: "witness testimony", Reliability: 5, Relevance: 5},
	})

	// First item is documentary (first-match-wins), second testimonial: the
	// expert gap still fires, so the fallback stays suppressed.
	found := false
	for _, gap := range portfolio.Gaps {
		if strings.Contains(gap, "expert") {
			found = true
		}
		if strings.Contains(gap, "Limited overall evidence portfolio") {
			t.Errorf("Fallback gap should not fire when another gap did: %v", portfolio.Gaps)
		}
	}
	if !found {
		t.Errorf("Expected missing-expert gap, got %v", portfolio.Gaps)
	}
}

func TestAssessor_Assess_WeakMajorityGap(t *testing.T) {
	assessor := NewAssessor()

	portfolio := assessor.Assess([]model.EvidenceItem{
		{Description: "contract", Reliability: 5, Relevance: 5},
		{Description: "witness statement", Reliability: 2, Relevance: 2},
		{Description: "expert opinion", Reliability: 2, Relevance: 3},
	})

	found := false
	for _, gap := range portfolio.Gaps {
		if strings.Contains(gap, "More than half") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected weak-majority gap, got %v", portfolio.Gaps)
	}
}

func TestAssessor_Assess_Strengths(t *testing.T) {
	assessor := NewAssessor()

	portfolio := assessor.Assess([]model.EvidenceItem{
		{Description: "signed contract", Reliability: 5, Relevance: 5},
		{Description: "witness statement", Reliability: 4, Relevance: 4},
		{Description: "expert opinion on damages", Reliability: 4, Relevance: 3},
		{Description: "photograph of the site", Reliability: 3, Relevance: 4},
		{Description: "miscellaneous notes", Reliability: 3, Relevance: 3},
	})

	joined := strings.Join(portfolio.Strengths, " | ")
	if !strings.Contains(joined, "4 strong evidence items") {
		t.Errorf("Expected strong-item count in strengths, got %v", portfolio.Strengths)
	}
	if !strings.Contains(joined, "Diverse evidence types") {
		t.Errorf("Expected diversity strength, got %v", portfolio.Strengths)
	}
	if !strings.Contains(joined, "Substantial evidence portfolio") {
		t.Errorf("Expected size strength, got %v", portfolio.Strengths)
	}

	// Mean of 100, 80, 70, 70, 60
	if portfolio.OverallScore != 76 {
		t.Errorf("Expected overall score 76, got %v", portfolio.OverallScore)
	}
	if portfolio.OverallCategory != model.StrengthStrong {
		t.Errorf("Expected Strong overall category, got %q", portfolio.OverallCategory)
	}
}
