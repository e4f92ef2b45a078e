package predict

import (
	"math"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// Contribution weights. Evidence spans -20..+20 around the neutral score of
// 50; strategy spans 0..+15 via the derived effectiveness score.
const (
	evidenceWeight = 0.4
	strategyWeight = 0.3
	neutralScore   = 50.0
)

// Calculator blends the base rate from similar cases with the evidence and
// strategy contributions into a single win-probability estimate
type Calculator struct{}

// NewCalculator creates a new probability calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// WinProbability computes the blended estimate.
// Base rate comes from the share of favorable outcomes among the top 3
// precedents (default 50 with no precedents); the final figure is clamped to
// [0, 100]. Final and base values are rounded to integers, contributions to
// one decimal, matching the interchange contract.
func (c *Calculator) WinProbability(similar []model.RankedPrecedent, portfolio model.EvidencePortfolio, profile model.StrategyProfile) model.WinProbability {
	base := neutralScore
	if len(similar) > 0 {
		top := similar
		if len(top) > 3 {
			top = top[:3]
		}
		wins := 0
		for _, rc := range top {
			if outcomeFavorable(rc.Outcome) {
				wins++
			}
		}
		base = float64(wins) / float64(len(top)) * 100
	}

	evidenceContribution := (portfolio.OverallScore - neutralScore) * evidenceWeight

	effectiveness := neutralScore + float64(profile.MaxScore())*10
	strategyContribution := (effectiveness - neutralScore) * strategyWeight

	probability := base + evidenceContribution + strategyContribution
	probability = clamp(probability, 0, 100)

	return model.WinProbability{
		WinProbability:       math.Round(probability),
		BaseCaseProbability:  math.Round(base),
		EvidenceContribution: round1(evidenceContribution),
		StrategyContribution: round1(strategyContribution),
	}
}

// outcomeFavorable reports whether a precedent outcome reads as a win for the
// base-rate tally
func outcomeFavorable(outcome string) bool {
	lower := strings.ToLower(outcome)
	return strings.Contains(lower, "win") ||
		strings.Contains(lower, "favorable") ||
		strings.Contains(lower, "success")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
