package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbelyaev/caselens/internal/analyze"
	"github.com/dbelyaev/caselens/internal/model"
)

var (
	outJSON        string
	outMD          string
	timeout        time.Duration
	noCache        bool
	noFooter       bool
	similarityMode string
	similaritySeed int64
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <case-file>",
	Short: "Analyze a single case file and estimate the outcome",
	Long: `Analyze reads a YAML case file and produces a full outcome analysis:
- Scores each evidence item from its reliability and relevance ratings
- Classifies the strategy text against known strategy archetypes
- Ranks comparable precedent cases by similarity
- Estimates a win probability with evidence and strategy contributions
- Generates prioritized recommendations

The case file holds the case facts, the strategy description, and the
evidence portfolio:

  case:
    title: Acme v. Widget Co.
    type: Civil
    facts: The parties signed a supply contract. ...
  strategy: File a motion for summary judgment.
  evidence:
    - description: Signed supply contract
      reliability: 5
      relevance: 5

Example:
  caselens analyze case.yaml
  caselens analyze case.yaml --json result.json --md report.md
  caselens analyze case.yaml --llm openai --llm-model gpt-4o-mini
  caselens analyze case.yaml --similarity lexical`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	analyzeCmd.Flags().StringVar(&similarityMode, "similarity", "random", "precedent similarity mode (random, lexical)")
	analyzeCmd.Flags().Int64Var(&similaritySeed, "seed", 0, "random seed for reproducible similarity scores (0 = time-based)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM analysis (falls back to rules on failure)")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Similarity mode: %s\n", cfg.Similarity.Mode)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	p := analyze.NewPipeline(cfg)

	cf, err := analyze.LoadCaseFile(path)
	if err != nil {
		return err
	}

	result, err := p.Analyze(ctx, cf.Case, cf.Evidence, cf.Strategy)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	renderer := analyze.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		out, err := renderer.RenderJSON(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outJSON, []byte(out+"\n"), 0644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outJSON)
		}
	}

	if outMD != "" {
		out := renderer.RenderMarkdown(result, cf.Case)
		if err := os.WriteFile(outMD, []byte(out), 0644); err != nil {
			return fmt.Errorf("write Markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outMD)
		}
	}

	if outJSON == "" && outMD == "" {
		// No file outputs requested: print the JSON result
		out, err := renderer.RenderJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	} else {
		fmt.Print(renderer.RenderSummary(result, cf.Case))
	}

	return nil
}

// buildConfig assembles the effective configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Similarity.Mode = similarityMode
	cfg.Similarity.Seed = similaritySeed
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.LLM.Timeout = int(timeout.Seconds())

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
