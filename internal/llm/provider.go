package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dbelyaev/caselens/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze requests a full case analysis from the model
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnalyzeRequest contains the input for LLM case analysis
type AnalyzeRequest struct {
	// Case holds the case title, type and facts
	Case model.Case

	// Evidence is the user's evidence portfolio
	Evidence []model.EvidenceItem

	// Strategy is the free-text strategy description
	Strategy string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnalyzeResponse contains the raw LLM output
type AnalyzeResponse struct {
	// Raw is the full model response text, expected to contain a
	// JSON object in the analysis result shape
	Raw string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60,
		MaxTokens: 2000,
	}
}

const systemPrompt = "You are a legal analysis assistant. You respond only with a single JSON object matching the requested schema, with no surrounding prose."

// BuildPrompt constructs the default analysis prompt. The response schema
// mirrors the engine's own result shape so an LLM answer is interchangeable
// with the heuristic one.
func BuildPrompt(req AnalyzeRequest) string {
	evidenceJSON, err := json.MarshalIndent(req.Evidence, "", "  ")
	if err != nil {
		evidenceJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are a legal expert AI specialized in analyzing legal cases and predicting outcomes.
Analyze the following case details, evidence, and legal strategy to predict the outcome
and provide strategic recommendations.

## Case Details:
Title: %s
Type: %s
Facts: %s

## Evidence Items:
%s

## Legal Strategy:
%s

Provide a detailed analysis including:
1. Win probability percentage (between 0 and 100)
2. Outcome analysis with key positive and negative factors
3. Evidence analysis with strengths, weaknesses, and improvement suggestions
4. Strategy analysis with strengths, gaps, and effectiveness
5. Comparable case analysis (if applicable)
6. Judicial considerations
7. Strategic recommendations ordered by priority

Format your response as a JSON object with the following structure:
{
    "win_probability": {
        "win_probability": float,
        "base_case_probability": float,
        "evidence_contribution": float,
        "strategy_contribution": float
    },
    "outcome_analysis": {
        "outcome_category": string,
        "outcome_description": string,
        "key_positive_factors": [string],
        "key_negative_factors": [string],
        "judicial_considerations": [string]
    },
    "evidence_analysis": {
        "evidence_items": [
            {
                "description": string,
                "type": string,
                "strength_score": float,
                "category": string,
                "improvement_suggestions": [string]
            }
        ],
        "overall_score": float,
        "overall_category": string,
        "portfolio_gaps": [string],
        "portfolio_strengths": [string]
    },
    "strategy_analysis": {
        "primary_strategy": string,
        "secondary_strategy": string,
        "strategy_scores": object,
        "strategy_balance": string,
        "strategy_gaps": [string],
        "strategy_effectiveness": string
    },
    "similar_cases": [
        {
            "title": string,
            "similarity": float,
            "outcome": string,
            "key_factors": [string],
            "evidence_strength": string,
            "strategy_used": string
        }
    ],
    "recommendations": [
        {
            "category": string,
            "priority": string,
            "recommendation": string,
            "rationale": string
        }
    ]
}`, req.Case.Title, req.Case.Type, req.Case.Facts, evidenceJSON, req.Strategy)
}
