package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dbelyaev/caselens/internal/assess"
	"github.com/dbelyaev/caselens/internal/cache"
	"github.com/dbelyaev/caselens/internal/extract"
	"github.com/dbelyaev/caselens/internal/llm"
	"github.com/dbelyaev/caselens/internal/model"
	"github.com/dbelyaev/caselens/internal/precedent"
	"github.com/dbelyaev/caselens/internal/predict"
	"github.com/dbelyaev/caselens/internal/strategy"
)

// maxSimilarCases caps the precedents included in the result
const maxSimilarCases = 5

// Pipeline orchestrates the complete case analysis
type Pipeline struct {
	assessor   *assess.Assessor
	classifier *strategy.Classifier
	retriever  *precedent.Retriever
	calculator *predict.Calculator
	generator  *predict.Generator
	advisor    *llm.Advisor // Optional LLM advisor (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	// Create LLM advisor if configured
	var advisor *llm.Advisor
	if cfg.LLM.Provider != "" {
		var store cache.Cache
		if cfg.Cache.Enabled {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cacheDir(cfg), cfg.Cache.DiskTTL)
		}

		a, err := llm.NewAdvisor(llm.ConfigFromModel(cfg.LLM), store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			advisor = a
		}
	}

	return &Pipeline{
		assessor:   assess.NewAssessor(),
		classifier: strategy.NewClassifier(),
		retriever:  precedent.NewRetriever(cfg.Similarity),
		calculator: predict.NewCalculator(),
		generator:  predict.NewGenerator(),
		advisor:    advisor,
		config:     cfg,
	}
}

// Analyze runs a full analysis of a case. When an LLM advisor is configured
// it is tried first; any advisor failure falls back to the rule-based engine
// so the command always produces a result.
func (p *Pipeline) Analyze(ctx context.Context, c model.Case, evidence []model.EvidenceItem, strategyText string) (*model.AnalysisResult, error) {
	for i, item := range evidence {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("evidence item %d: %w", i, err)
		}
	}

	if p.advisor.IsEnabled() {
		result, err := p.advisor.Analyze(ctx, llm.AnalyzeRequest{
			Case:     c,
			Evidence: evidence,
			Strategy: strategyText,
			Model:    p.config.LLM.Model,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM analysis failed, using rule-based engine: %v\n", err)
		} else if result != nil {
			return result, nil
		}
	}

	return p.analyzeRules(c, evidence, strategyText), nil
}

// analyzeRules runs the deterministic rule-based engine
func (p *Pipeline) analyzeRules(c model.Case, evidence []model.EvidenceItem, strategyText string) *model.AnalysisResult {
	portfolio := p.assessor.Assess(evidence)
	profile := p.classifier.Classify(strategyText)
	facts := extract.Facts(c.Facts)
	similar := p.retriever.Rank(facts)

	prob := p.calculator.WinProbability(similar, portfolio, profile)
	outcome := p.generator.Outcome(prob, similar, portfolio, profile)
	recommendations := p.generator.Recommendations(prob, similar, portfolio, profile, evidence)

	if len(similar) > maxSimilarCases {
		similar = similar[:maxSimilarCases]
	}

	return &model.AnalysisResult{
		WinProbability:   prob,
		OutcomeAnalysis:  outcome,
		EvidenceAnalysis: portfolio,
		StrategyAnalysis: profile,
		SimilarCases:     similar,
		Recommendations:  recommendations,
	}
}

// AnalyzeFile loads a case file and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error) {
	cf, err := LoadCaseFile(path)
	if err != nil {
		return nil, err
	}

	return p.Analyze(ctx, cf.Case, cf.Evidence, cf.Strategy)
}

// cacheDir resolves the disk cache directory, defaulting to ~/.caselens/cache
func cacheDir(cfg *model.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".caselens-cache"
	}
	return filepath.Join(home, ".caselens", "cache")
}
