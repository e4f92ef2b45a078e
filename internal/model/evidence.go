package model

import (
	"errors"
	"strings"
)

// EvidenceItem is a single piece of proof submitted by the caller, rated for
// reliability and relevance on a 1-5 scale.
//
// Ratings are caller-validated. Out-of-range values are not clamped here and
// propagate into an out-of-range strength score; Validate only rejects items
// with missing fields.
type EvidenceItem struct {
	Description string `json:"description" yaml:"description"`
	Reliability int    `json:"reliability" yaml:"reliability"` // 1 (low) to 5 (high)
	Relevance   int    `json:"relevance" yaml:"relevance"`     // 1 (low) to 5 (high)
}

var (
	ErrMissingDescription = errors.New("evidence item has no description")
	ErrMissingReliability = errors.New("evidence item has no reliability rating")
	ErrMissingRelevance   = errors.New("evidence item has no relevance rating")
)

// Validate reports whether the item carries the fields the assessor needs
func (e EvidenceItem) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrMissingDescription
	}
	if e.Reliability == 0 {
		return ErrMissingReliability
	}
	if e.Relevance == 0 {
		return ErrMissingRelevance
	}
	return nil
}

// EvidenceType classifies an evidence item by how it would be presented
type EvidenceType string

const (
	EvidenceDocumentary EvidenceType = "documentary"
	EvidenceTestimonial EvidenceType = "testimonial"
	EvidencePhysical    EvidenceType = "physical"
	EvidenceExpert      EvidenceType = "expert"
	EvidenceOther       EvidenceType = "other"
)

// StrengthCategory is the banded label for a strength score
type StrengthCategory string

const (
	StrengthVeryStrong StrengthCategory = "Very Strong" // score >= 80
	StrengthStrong     StrengthCategory = "Strong"      // score >= 70
	StrengthModerate   StrengthCategory = "Moderate"    // score >= 60
	StrengthAcceptable StrengthCategory = "Acceptable"  // score >= 50
	StrengthWeak       StrengthCategory = "Weak"        // score < 50
)

// ScoredEvidence is an evidence item after assessment
type ScoredEvidence struct {
	Description            string           `json:"description"`
	Type                   EvidenceType     `json:"type"`
	StrengthScore          float64          `json:"strength_score"` // (reliability + relevance) * 10
	Category               StrengthCategory `json:"category"`
	ImprovementSuggestions []string         `json:"improvement_suggestions"` // Never empty
}

// EvidencePortfolio aggregates all scored evidence for a case
type EvidencePortfolio struct {
	Items           []ScoredEvidence `json:"evidence_items"`
	OverallScore    float64          `json:"overall_score"` // Mean of item scores, 0 when empty
	OverallCategory StrengthCategory `json:"overall_category"`
	Gaps            []string         `json:"portfolio_gaps"`
	Strengths       []string         `json:"portfolio_strengths"` // Never empty
}
