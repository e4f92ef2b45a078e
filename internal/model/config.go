package model

import (
	"runtime"
	"time"
)

// Config is the complete application configuration
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	Similarity  SimilarityConfig  `yaml:"similarity"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig configures the optional external-model analysis path.
// An empty Provider disables the LLM path entirely.
type LLMConfig struct {
	Provider   string `yaml:"provider"` // "openai", "anthropic", "ollama", "" = disabled
	Model      string `yaml:"model"`
	APIKey     string `yaml:"-"` // From environment only, never persisted
	BaseURL    string `yaml:"base_url"`
	Timeout    int    `yaml:"timeout_seconds"`
	MaxTokens  int    `yaml:"max_tokens"`
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
}

// CacheConfig configures caching of LLM analysis responses
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Empty = $HOME/.caselens/cache
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// SimilarityConfig selects how precedent similarity is assigned.
//
// "random" reproduces the original stand-in model: a uniform draw in
// [0.3, 0.9) per precedent. "lexical" replaces it with token overlap between
// the case facts and the precedent facts, scaled into the same band.
type SimilarityConfig struct {
	Mode string `yaml:"mode"` // "random" or "lexical"
	Seed int64  `yaml:"seed"` // 0 = time-based (random mode only)
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles outbound LLM API calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "", // Deterministic engine only
			Timeout:   60,
			MaxTokens: 2000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Similarity: SimilarityConfig{
			Mode: "random",
			Seed: 0,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
