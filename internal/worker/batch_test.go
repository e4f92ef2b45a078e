package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/dbelyaev/caselens/internal/model"
)

type mockAnalyzer struct {
	calls    atomic.Int64
	failPath string
}

func (m *mockAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error) {
	m.calls.Add(1)
	if path == m.failPath {
		return nil, fmt.Errorf("no such case file: %s", path)
	}
	return &model.AnalysisResult{
		WinProbability: model.WinProbability{WinProbability: 50},
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &mockAnalyzer{}
	b := NewBatchProcessor(analyzer, 4, nil)

	paths := []string{"a.yaml", "b.yaml", "c.yaml"}
	results := b.ProcessPaths(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if analyzer.calls.Load() != 3 {
		t.Errorf("Expected 3 analyzer calls, got %d", analyzer.calls.Load())
	}
	for _, r := range results {
		if r.GetError() != nil {
			t.Errorf("Unexpected error for %s: %v", r.Path, r.Error)
		}
		if r.Analysis == nil {
			t.Errorf("Expected analysis for %s", r.Path)
		}
	}
}

func TestBatchProcessor_ProcessPaths_PartialFailure(t *testing.T) {
	analyzer := &mockAnalyzer{failPath: "bad.yaml"}
	b := NewBatchProcessor(analyzer, 2, nil)

	results := b.ProcessPaths(context.Background(), []string{"good.yaml", "bad.yaml"})

	var failed int
	for _, r := range results {
		if r.GetError() != nil {
			failed++
			if r.Path != "bad.yaml" {
				t.Errorf("Expected failure for bad.yaml, got %s", r.Path)
			}
		}
	}
	if failed != 1 {
		t.Errorf("Expected 1 failure, got %d", failed)
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	b := NewBatchProcessor(&mockAnalyzer{}, 2, nil)
	results := b.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_WithLimiter(t *testing.T) {
	analyzer := &mockAnalyzer{}
	// Generous limit: throttling is exercised, not measured
	b := NewBatchProcessor(analyzer, 2, NewLimiter(1000, 10))

	results := b.ProcessPaths(context.Background(), []string{"a.yaml", "b.yaml"})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	content := `# batch of cases
case1.yaml

case2.yaml
case1.yaml
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write list file: %v", err)
	}

	paths, err := ReadPathsFromFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"case1.yaml", "case2.yaml"}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("Expected paths[%d]=%s, got %s", i, p, paths[i])
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
