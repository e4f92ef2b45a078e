package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dbelyaev/caselens/internal/cache"
	"github.com/dbelyaev/caselens/internal/model"
)

// Advisor wraps an LLM provider with caching and response validation.
// Any error from Analyze means the caller should fall back to the
// rule-based engine; the advisor never returns a partially valid result.
type Advisor struct {
	provider Provider
	cache    cache.Cache
	config   Config
	cacheTTL time.Duration
}

// NewAdvisor creates an advisor for the configured provider. A nil cache
// disables response caching. If no provider is configured the advisor is
// created in disabled state.
func NewAdvisor(config Config, store cache.Cache) (*Advisor, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	return &Advisor{
		provider: provider,
		cache:    store,
		config:   config,
		cacheTTL: 24 * time.Hour,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (a *Advisor) IsEnabled() bool {
	return a != nil && a.provider != nil
}

// ProviderName returns the active provider's name, or "" when disabled
func (a *Advisor) ProviderName() string {
	if !a.IsEnabled() {
		return ""
	}
	return a.provider.Name()
}

// Analyze obtains a full case analysis from the LLM. Returns (nil, nil)
// when the advisor is disabled.
func (a *Advisor) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisResult, error) {
	if !a.IsEnabled() {
		return nil, nil
	}

	key, err := a.cacheKey(req)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if data, found := a.cache.Get(key); found {
			var result model.AnalysisResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
			// Corrupt entry: drop it and re-query
			_ = a.cache.Delete(key)
		}
	}

	if !a.provider.IsAvailable(ctx) {
		return nil, fmt.Errorf("provider %s is not available", a.provider.Name())
	}

	resp, err := a.provider.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := ParseResult(resp.Raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s response: %w", a.provider.Name(), err)
	}

	if err := ValidateResult(result); err != nil {
		return nil, fmt.Errorf("invalid %s response: %w", a.provider.Name(), err)
	}

	if a.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = a.cache.Set(key, data, a.cacheTTL)
		}
	}

	return result, nil
}

// cacheKey derives a stable key from everything that influences the
// response: case inputs, provider and model.
func (a *Advisor) cacheKey(req AnalyzeRequest) (string, error) {
	payload, err := json.Marshal(struct {
		Provider string               `json:"provider"`
		Model    string               `json:"model"`
		Case     model.Case           `json:"case"`
		Evidence []model.EvidenceItem `json:"evidence"`
		Strategy string               `json:"strategy"`
		Prompt   string               `json:"prompt"`
	}{
		Provider: a.provider.Name(),
		Model:    req.Model,
		Case:     req.Case,
		Evidence: req.Evidence,
		Strategy: req.Strategy,
		Prompt:   req.Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("build cache key: %w", err)
	}
	return cache.Key(payload), nil
}
