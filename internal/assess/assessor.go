package assess

import (
	"fmt"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// typeRule binds an evidence type to its detection keywords.
// Rules are checked in order and the first keyword hit wins, so a description
// containing keywords from several categories is attributed to the earliest
// rule. "report" appears in both the documentary and expert lists; documentary
// always claims it.
type typeRule struct {
	evidenceType model.EvidenceType
	keywords     []string
}

// Assessor scores evidence items and evaluates the portfolio as a whole
type Assessor struct {
	typeRules []typeRule
}

// NewAssessor creates an assessor with the standard keyword ruleset
func NewAssessor() *Assessor {
	return &Assessor{
		typeRules: []typeRule{
			{model.EvidenceDocumentary, []string{"contract", "agreement", "document", "letter", "email", "record", "report", "file"}},
			{model.EvidenceTestimonial, []string{"witness", "testimony", "statement", "deposition", "interview"}},
			{model.EvidencePhysical, []string{"physical", "exhibit", "photograph", "video", "recording", "object"}},
			{model.EvidenceExpert, []string{"expert", "opinion", "analysis", "report", "evaluation"}},
		},
	}
}

// Assess scores every item and derives the portfolio aggregates
func (a *Assessor) Assess(items []model.EvidenceItem) model.EvidencePortfolio {
	scored := make([]model.ScoredEvidence, 0, len(items))
	total := 0.0

	for _, item := range items {
		score := float64(item.Reliability+item.Relevance) * 10 // Scale to 0-100
		evType := a.DetectType(item.Description)

		scored = append(scored, model.ScoredEvidence{
			Description:            item.Description,
			Type:                   evType,
			StrengthScore:          score,
			Category:               CategorizeStrength(score),
			ImprovementSuggestions: suggestImprovements(item, evType, score),
		})
		total += score
	}

	overall := 0.0
	if len(items) > 0 {
		overall = total / float64(len(items))
	}

	return model.EvidencePortfolio{
		Items:           scored,
		OverallScore:    overall,
		OverallCategory: CategorizeStrength(overall),
		Gaps:            identifyGaps(scored),
		Strengths:       identifyStrengths(scored),
	}
}

// DetectType determines the evidence type from the item description
func (a *Assessor) DetectType(description string) model.EvidenceType {
	lower := strings.ToLower(description)

	for _, rule := range a.typeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.evidenceType
			}
		}
	}

	return model.EvidenceOther
}

// CategorizeStrength bands a strength score into its label
func CategorizeStrength(score float64) model.StrengthCategory {
	switch {
	case score >= 80:
		return model.StrengthVeryStrong
	case score >= 70:
		return model.StrengthStrong
	case score >= 60:
		return model.StrengthModerate
	case score >= 50:
		return model.StrengthAcceptable
	default:
		return model.StrengthWeak
	}
}

// suggestImprovements generates per-item improvement suggestions.
// The reliability and relevance checks fire independently, so a weak item can
// collect both. The generic suggestion is appended only when nothing else did.
func suggestImprovements(item model.EvidenceItem, evType model.EvidenceType, score float64) []string {
	var suggestions []string

	if score < 50 {
		suggestions = append(suggestions, "Consider if this evidence is worth presenting or needs significant strengthening")
	}

	switch evType {
	case model.EvidenceDocumentary:
		if item.Reliability < 4 {
			suggestions = append(suggestions, "Verify document authenticity and chain of custody")
		}
		if item.Relevance < 4 {
			suggestions = append(suggestions, "Clarify direct connection between this document and case issues")
		}

	case model.EvidenceTestimonial:
		if item.Reliability < 4 {
			suggestions = append(suggestions, "Prepare witness thoroughly and anticipate credibility challenges")
		}
		if item.Relevance < 4 {
			suggestions = append(suggestions, "Focus testimony on directly relevant facts")
		}

	case model.EvidencePhysical:
		if item.Reliability < 4 {
			suggestions = append(suggestions, "Ensure proper authentication and chain of custody documentation")
		}

	case model.EvidenceExpert:
		if item.Reliability < 4 {
			suggestions = append(suggestions, "Reinforce expert's qualifications and methodology")
		}
		if item.Relevance < 4 {
			suggestions = append(suggestions, "Connect expert opinion more directly to case facts")
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Continue to integrate this evidence effectively with your overall strategy")
	}

	return suggestions
}

// identifyGaps finds weaknesses in the portfolio composition. Each rule is
// evaluated independently; the limited-portfolio gap fires only when no other
// gap did.
func identifyGaps(items []model.ScoredEvidence) []string {
	var gaps []string

	types := make(map[model.EvidenceType]bool)
	for _, item := range items {
		types[item.Type] = true
	}

	if !types[model.EvidenceDocumentary] {
		gaps = append(gaps, "No documentary evidence present - consider adding documentation to strengthen case")
	}
	if !types[model.EvidenceTestimonial] {
		gaps = append(gaps, "No witness testimony included - consider adding witness statements to support facts")
	}
	if !types[model.EvidenceExpert] {
		gaps = append(gaps, "No expert evidence provided - consider if expert opinion would strengthen your position")
	}

	weakCount := 0
	for _, item := range items {
		if item.StrengthScore < 60 {
			weakCount++
		}
	}
	if float64(weakCount) > float64(len(items))/2 {
		gaps = append(gaps, "More than half of evidence items are rated weak or acceptable - strengthen key elements")
	}

	if len(gaps) == 0 && len(items) < 3 {
		gaps = append(gaps, "Limited overall evidence portfolio - consider adding more supporting evidence")
	}

	return gaps
}

// identifyStrengths finds strengths in the portfolio, with a guaranteed
// fallback entry so the list is never empty
func identifyStrengths(items []model.ScoredEvidence) []string {
	var strengths []string

	strongCount := 0
	for _, item := range items {
		if item.StrengthScore >= 70 {
			strongCount++
		}
	}
	if strongCount > 0 {
		strengths = append(strengths, fmt.Sprintf("Portfolio includes %d strong evidence items", strongCount))
	}

	types := make(map[model.EvidenceType]bool)
	for _, item := range items {
		types[item.Type] = true
	}
	if len(types) >= 3 {
		strengths = append(strengths, "Diverse evidence types provide multiple angles of support")
	}

	if len(items) >= 5 {
		strengths = append(strengths, "Substantial evidence portfolio size adds cumulative weight")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Consider building on existing evidence to create stronger portfolio")
	}

	return strengths
}
