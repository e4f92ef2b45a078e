package analyze

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dbelyaev/caselens/internal/model"
)

// Renderer formats analysis results for output
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON renders the result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}

// RenderMarkdown renders a full markdown report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, c model.Case) string {
	var b strings.Builder

	title := c.Title
	if title == "" {
		title = "Case Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if c.Type != "" {
		fmt.Fprintf(&b, "**Case Type:** %s\n\n", c.Type)
	}

	fmt.Fprintf(&b, "## Win Probability: %.0f%%\n\n", result.WinProbability.WinProbability)
	fmt.Fprintf(&b, "- Base rate from comparable cases: %.0f%%\n", result.WinProbability.BaseCaseProbability)
	fmt.Fprintf(&b, "- Evidence contribution: %+.1f\n", result.WinProbability.EvidenceContribution)
	fmt.Fprintf(&b, "- Strategy contribution: %+.1f\n\n", result.WinProbability.StrategyContribution)

	fmt.Fprintf(&b, "## Outcome: %s\n\n%s\n\n", result.OutcomeAnalysis.Category, result.OutcomeAnalysis.Description)

	b.WriteString("### Positive Factors\n\n")
	for _, f := range result.OutcomeAnalysis.PositiveFactors {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\n### Negative Factors\n\n")
	for _, f := range result.OutcomeAnalysis.NegativeFactors {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\n### Judicial Considerations\n\n")
	for _, f := range result.OutcomeAnalysis.JudicialConsiderations {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	fmt.Fprintf(&b, "\n## Evidence Portfolio: %.1f (%s)\n\n", result.EvidenceAnalysis.OverallScore, result.EvidenceAnalysis.OverallCategory)
	for _, item := range result.EvidenceAnalysis.Items {
		fmt.Fprintf(&b, "- **%s** (%s): %.0f, %s\n", item.Description, item.Type, item.StrengthScore, item.Category)
		for _, s := range item.ImprovementSuggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	if len(result.EvidenceAnalysis.Gaps) > 0 {
		b.WriteString("\n**Gaps:**\n\n")
		for _, g := range result.EvidenceAnalysis.Gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}
	b.WriteString("\n**Strengths:**\n\n")
	for _, s := range result.EvidenceAnalysis.Strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	fmt.Fprintf(&b, "\n## Strategy: %s\n\n", displayStrategy(result.StrategyAnalysis.Primary))
	if result.StrategyAnalysis.Secondary != "" {
		fmt.Fprintf(&b, "Secondary: %s\n\n", result.StrategyAnalysis.Secondary)
	}
	fmt.Fprintf(&b, "%s. %s\n\n", result.StrategyAnalysis.Balance, result.StrategyAnalysis.Effectiveness)
	if len(result.StrategyAnalysis.Gaps) > 0 {
		b.WriteString("**Strategy Gaps:**\n\n")
		for _, g := range result.StrategyAnalysis.Gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
		b.WriteString("\n")
	}

	if len(result.SimilarCases) > 0 {
		b.WriteString("## Comparable Cases\n\n")
		for _, sc := range result.SimilarCases {
			fmt.Fprintf(&b, "- **%s** (similarity %.2f): %s\n", sc.Title, sc.Similarity, sc.Outcome)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendations\n\n")
	r.writeRecommendations(&b, result.Recommendations)

	if r.includeFooter {
		b.WriteString("\n---\n\n*Heuristic estimate based on evidence ratings, strategy keywords and a small comparable-case corpus. Not legal advice.*\n")
	}

	return b.String()
}

// writeRecommendations groups by priority for display: critical first, then
// high, then the rest in generation order
func (r *Renderer) writeRecommendations(b *strings.Builder, recs []model.Recommendation) {
	groups := []struct {
		heading  string
		priority model.Priority
	}{
		{"Critical", model.PriorityCritical},
		{"High", model.PriorityHigh},
	}

	written := make(map[int]bool)
	for _, g := range groups {
		var lines []string
		for i, rec := range recs {
			if rec.Priority == g.priority {
				written[i] = true
				lines = append(lines, formatRecommendation(rec))
			}
		}
		if len(lines) > 0 {
			fmt.Fprintf(b, "### %s\n\n", g.heading)
			for _, l := range lines {
				fmt.Fprintf(b, "- %s\n", l)
			}
			b.WriteString("\n")
		}
	}

	var rest []string
	for i, rec := range recs {
		if !written[i] {
			rest = append(rest, formatRecommendation(rec))
		}
	}
	if len(rest) > 0 {
		b.WriteString("### Other\n\n")
		for _, l := range rest {
			fmt.Fprintf(b, "- %s\n", l)
		}
	}
}

// RenderSummary renders a short console summary
func (r *Renderer) RenderSummary(result *model.AnalysisResult, c model.Case) string {
	var b strings.Builder

	if c.Title != "" {
		fmt.Fprintf(&b, "%s\n", c.Title)
	}
	fmt.Fprintf(&b, "Win probability: %.0f%% (%s)\n", result.WinProbability.WinProbability, result.OutcomeAnalysis.Category)
	fmt.Fprintf(&b, "Evidence: %.1f (%s), %d items\n", result.EvidenceAnalysis.OverallScore, result.EvidenceAnalysis.OverallCategory, len(result.EvidenceAnalysis.Items))
	fmt.Fprintf(&b, "Strategy: %s\n", displayStrategy(result.StrategyAnalysis.Primary))
	fmt.Fprintf(&b, "Recommendations: %d\n", len(result.Recommendations))

	return b.String()
}

func formatRecommendation(rec model.Recommendation) string {
	if rec.Rationale != "" {
		return fmt.Sprintf("**[%s]** %s (%s)", rec.Category, rec.Recommendation, rec.Rationale)
	}
	return fmt.Sprintf("**[%s]** %s", rec.Category, rec.Recommendation)
}

func displayStrategy(name string) string {
	if name == "" || name == model.StrategyUndefined {
		return "undefined"
	}
	return name
}
