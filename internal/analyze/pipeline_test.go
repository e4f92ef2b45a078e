package analyze

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dbelyaev/caselens/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Similarity.Seed = 42
	return cfg
}

func testCase() (model.Case, []model.EvidenceItem, string) {
	c := model.Case{
		Title: "Acme v. Widget Co.",
		Type:  "Civil",
		Facts: "The parties signed a supply contract in January. Acme delivered the goods on schedule. Widget Co. refused payment without cause.",
	}
	evidence := []model.EvidenceItem{
		{Description: "Signed supply contract", Reliability: 5, Relevance: 5},
		{Description: "Delivery receipts from the carrier", Reliability: 4, Relevance: 4},
		{Description: "Witness statement from the warehouse manager", Reliability: 3, Relevance: 4},
	}
	strategyText := "File a motion for summary judgment based on the contract terms and documented delivery."
	return c, evidence, strategyText
}

func TestPipeline_Analyze_Complete(t *testing.T) {
	p := NewPipeline(testConfig())
	c, evidence, strategyText := testCase()

	result, err := p.Analyze(context.Background(), c, evidence, strategyText)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.WinProbability.WinProbability < 0 || result.WinProbability.WinProbability > 100 {
		t.Errorf("Win probability out of range: %v", result.WinProbability.WinProbability)
	}
	if result.OutcomeAnalysis.Category == "" {
		t.Error("Expected outcome category")
	}
	if len(result.EvidenceAnalysis.Items) != 3 {
		t.Errorf("Expected 3 scored items, got %d", len(result.EvidenceAnalysis.Items))
	}
	if result.StrategyAnalysis.Primary != model.StrategyProcedural {
		t.Errorf("Expected procedural primary strategy, got %q", result.StrategyAnalysis.Primary)
	}
	if len(result.SimilarCases) == 0 || len(result.SimilarCases) > 5 {
		t.Errorf("Expected 1-5 similar cases, got %d", len(result.SimilarCases))
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected recommendations")
	}
	last := result.Recommendations[len(result.Recommendations)-1]
	if last.Category != model.RecommendPreparation {
		t.Errorf("Expected preparation recommendation last, got %s", last.Category)
	}
}

func TestPipeline_Analyze_SeededDeterminism(t *testing.T) {
	c, evidence, strategyText := testCase()

	first, err := NewPipeline(testConfig()).Analyze(context.Background(), c, evidence, strategyText)
	if err != nil {
		t.Fatalf("First analysis failed: %v", err)
	}
	second, err := NewPipeline(testConfig()).Analyze(context.Background(), c, evidence, strategyText)
	if err != nil {
		t.Fatalf("Second analysis failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results with the same seed")
	}
}

func TestPipeline_Analyze_InvalidEvidence(t *testing.T) {
	p := NewPipeline(testConfig())
	c, evidence, strategyText := testCase()
	evidence[1].Description = ""

	_, err := p.Analyze(context.Background(), c, evidence, strategyText)
	if err == nil {
		t.Fatal("Expected error for invalid evidence item")
	}
	if !strings.Contains(err.Error(), "evidence item 1") {
		t.Errorf("Expected item index in error, got %v", err)
	}
}

func TestPipeline_AnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	content := `case:
  title: Acme v. Widget Co.
  type: Civil
  facts: The parties signed a supply contract. Widget Co. refused payment without cause.
strategy: File a motion for summary judgment.
evidence:
  - description: Signed supply contract
    reliability: 5
    relevance: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write case file: %v", err)
	}

	p := NewPipeline(testConfig())
	result, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.EvidenceAnalysis.Items) != 1 {
		t.Errorf("Expected 1 scored item, got %d", len(result.EvidenceAnalysis.Items))
	}
}

func TestLoadCaseFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing facts",
			content: "strategy: settle\nevidence:\n  - description: x\n    reliability: 3\n    relevance: 3\n",
			wantErr: "missing case facts",
		},
		{
			name:    "missing strategy",
			content: "case:\n  facts: Something happened here in detail.\nevidence:\n  - description: x\n    reliability: 3\n    relevance: 3\n",
			wantErr: "missing strategy",
		},
		{
			name:    "no evidence",
			content: "case:\n  facts: Something happened here in detail.\nstrategy: settle early\n",
			wantErr: "at least one evidence item",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "parse case file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "case.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write case file: %v", err)
			}

			_, err := LoadCaseFile(path)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadCaseFile_Missing(t *testing.T) {
	if _, err := LoadCaseFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
