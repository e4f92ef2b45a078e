package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbelyaev/caselens/internal/analyze"
	"github.com/dbelyaev/caselens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	rateLimit    float64
	rateBurst    int
	// noFooter, llm and similarity flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple case files from a list in parallel",
	Long: `Batch processes multiple case files concurrently:
- Read case file paths from input file (one per line, # comments allowed)
- Analyze cases in parallel with configurable worker count
- Share one rate limit across workers when an LLM provider is enabled
- Write individual JSON and Markdown reports for each case

Example:
  caselens batch cases.txt
  caselens batch cases.txt --concurrency 8 --output-dir ./reports
  caselens batch cases.txt --llm openai --rate-limit 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./caselens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&rateLimit, "rate-limit", 1, "LLM requests per second across all workers")
	batchCmd.Flags().IntVar(&rateBurst, "rate-burst", 2, "LLM request burst size")

	// Analysis flags shared with the analyze command
	batchCmd.Flags().StringVar(&similarityMode, "similarity", "random", "precedent similarity mode (random, lexical)")
	batchCmd.Flags().Int64Var(&similaritySeed, "seed", 0, "random seed for reproducible similarity scores (0 = time-based)")
	batchCmd.Flags().DurationVar(&timeout, "analysis-timeout", 2*time.Minute, "timeout for individual analyses")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM analysis (falls back to rules on failure)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimit.RequestsPerSecond = rateLimit
	cfg.RateLimit.Burst = rateBurst

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Caselens Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := analyze.NewPipeline(cfg)

	// Throttle only when LLM calls are in play
	var limiter *worker.Limiter
	if cfg.LLM.Provider != "" {
		limiter = worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	processor := worker.NewBatchProcessor(p, concurrency, limiter)

	fmt.Fprintf(os.Stderr, "⚙️  Reading case files from list...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d case files\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Analyzing with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	renderer := analyze.NewRenderer(cfg.Output.IncludeFooter)

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		// Generate output file names from the input file name
		slug := sanitizeFilename(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		out, err := renderer.RenderJSON(result.Analysis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to render JSON: %v\n", result.Path, err)
			continue
		}
		if err := os.WriteFile(jsonPath, []byte(out+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}

		cf, err := analyze.LoadCaseFile(result.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to reload case: %v\n", result.Path, err)
			continue
		}
		md := renderer.RenderMarkdown(result.Analysis, cf.Case)
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (win probability: %.0f%%)\n", result.Path, result.Analysis.WinProbability.WinProbability)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d cases\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// sanitizeFilename derives a safe output file slug from a case file path
func sanitizeFilename(path string) string {
	s := filepath.Base(path)
	s = strings.TrimSuffix(s, filepath.Ext(s))

	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "case"
	}

	return s
}
