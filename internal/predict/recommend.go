package predict

import (
	"fmt"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// Recommendations builds the prioritized action list in its fixed generation
// order. The list is never re-sorted here; grouping by priority is a
// presentation concern. The closing preparation entry is always present.
func (g *Generator) Recommendations(prob model.WinProbability, similar []model.RankedPrecedent, portfolio model.EvidencePortfolio, profile model.StrategyProfile, evidence []model.EvidenceItem) []model.Recommendation {
	var recs []model.Recommendation

	// 1. One recommendation per evidence portfolio gap
	for i, gap := range portfolio.Gaps {
		priority := model.PriorityHigh
		if i == 0 && prob.WinProbability < 60 {
			priority = model.PriorityCritical
		}
		recs = append(recs, model.Recommendation{
			Category:       model.RecommendEvidence,
			Priority:       priority,
			Recommendation: "Address evidence gap: " + firstSegment(gap),
			Rationale:      "Strengthening this area would directly improve case probability by addressing: " + gap,
		})
	}

	// 2. Aggregate recommendation for weak evidence items
	if n := countItemsBelow(portfolio.Items, 60); n > 0 {
		priority := model.PriorityModerate
		if prob.WinProbability < 70 {
			priority = model.PriorityHigh
		}
		recs = append(recs, model.Recommendation{
			Category:       model.RecommendEvidence,
			Priority:       priority,
			Recommendation: fmt.Sprintf("Strengthen %d weak evidence items", n),
			Rationale:      "Vulnerabilities in these evidence items could be exploited by opposing counsel",
		})
	}

	// 3. One recommendation per strategy gap
	for i, gap := range profile.Gaps {
		priority := model.PriorityHigh
		if i == 0 && strings.Contains(gap, "lacks clear definition") {
			priority = model.PriorityCritical
		}
		recs = append(recs, model.Recommendation{
			Category:       model.RecommendStrategy,
			Priority:       priority,
			Recommendation: "Refine strategy: " + firstSegment(gap),
			Rationale:      "Strategic improvement would strengthen approach by addressing: " + gap,
		})
	}

	// 4. Align with the most similar precedent that was won outright
	for _, rc := range similar {
		if strings.Contains(strings.ToLower(rc.Outcome), "win") {
			recs = append(recs, model.Recommendation{
				Category:       model.RecommendCaseComparison,
				Priority:       model.PriorityModerate,
				Recommendation: "Align approach with successful case: " + rc.Title,
				Rationale:      fmt.Sprintf("This similar case succeeded using %s", rc.StrategyUsed),
			})
			break
		}
	}

	// 5. Thin portfolio
	if len(evidence) < 3 {
		recs = append(recs, model.Recommendation{
			Category:       model.RecommendEvidence,
			Priority:       model.PriorityHigh,
			Recommendation: "Expand evidence portfolio with additional supporting items",
			Rationale:      "Current evidence base is limited; additional evidence would strengthen overall position",
		})
	}

	// 6. Settlement fallback when the estimate is unfavorable
	if prob.WinProbability < 50 {
		recs = append(recs, model.Recommendation{
			Category:       model.RecommendSettlement,
			Priority:       model.PriorityHigh,
			Recommendation: "Develop strong fallback settlement position",
			Rationale:      "Given current win probability, a strategic settlement approach is advisable",
		})
	}

	// 7. Always close with opposition preparation
	recs = append(recs, model.Recommendation{
		Category:       model.RecommendPreparation,
		Priority:       model.PriorityEnhancement,
		Recommendation: "Anticipate and prepare counters to opposing arguments",
		Rationale:      "Proactive preparation for opposing theories strengthens overall position",
	})

	return recs
}
