// Package config provides the configuration schema, loader, and provider
// registry for the lexirank ranking service.
package config

import (
	"github.com/MrWong99/lexirank/internal/rank"
)

// LogLevel controls log verbosity for the lexirank process.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for lexirank.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Ranking   RankingConfig   `yaml:"ranking"`
}

// ServerConfig holds process-level settings.
type ServerConfig struct {
	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// ProvidersConfig declares which provider implementation to use for each
// external collaborator. Each field selects a named provider registered in
// the [Registry].
type ProvidersConfig struct {
	LLM        ProviderEntry `yaml:"llm"`
	Embeddings ProviderEntry `yaml:"embeddings"`
}

// ProviderEntry is the common configuration block shared by all provider
// types. The Name field is used to look up the constructor in the [Registry].
type ProviderEntry struct {
	// Name selects the registered provider implementation (e.g., "openai",
	// "anthropic", "ollama").
	Name string `yaml:"name"`

	// APIKey is the authentication key for the provider's API if any.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the provider's default API endpoint.
	// Leave empty to use the provider's built-in default.
	BaseURL string `yaml:"base_url"`

	// Model selects a specific model within the provider
	// (e.g., "claude-sonnet-4-5", "text-embedding-3-small").
	Model string `yaml:"model"`

	// Options holds provider-specific configuration values not covered by the
	// standard fields above.
	Options map[string]any `yaml:"options"`
}

// CacheConfig configures the optional PostgreSQL embedding cache.
type CacheConfig struct {
	// PostgresDSN is the connection string for the cache database. Empty
	// disables caching entirely.
	PostgresDSN string `yaml:"postgres_dsn"`

	// EmbeddingDimensions is the vector width stored in the cache table.
	// Must match the embedding provider's output. Defaults to 1536.
	EmbeddingDimensions int `yaml:"embedding_dimensions"`
}

// SeedsConfig carries the seed-word lists for the two prototype centroids.
type SeedsConfig struct {
	Action []string `yaml:"action"`
	Decor  []string `yaml:"decor"`
}

// RankingConfig tunes the ranking pipeline. Every field is optional; zero
// values fall back to the standard defaults from [rank.DefaultConfig].
type RankingConfig struct {
	TargetCount       int                `yaml:"target_count"`
	CandidatePool     int                `yaml:"candidate_pool"`
	BatchSize         int                `yaml:"batch_size"`
	MMRLambda         float64            `yaml:"mmr_lambda"`
	SeedPrototypeSize int                `yaml:"seed_prototype_size"`
	Weights           map[string]float64 `yaml:"weights"`
	Quotas            map[string]int     `yaml:"quotas"`
	Seeds             SeedsConfig        `yaml:"seeds"`
	StoplistExtra     []string           `yaml:"stoplist_extra"`
}

// ToRankConfig merges r onto the pipeline defaults: any field left at its
// zero value keeps the default; set fields replace it wholesale (maps and
// lists are not merged element-wise).
func (r RankingConfig) ToRankConfig() rank.Config {
	cfg := rank.DefaultConfig()
	if r.TargetCount != 0 {
		cfg.TargetCount = r.TargetCount
	}
	if r.CandidatePool != 0 {
		cfg.CandidatePool = r.CandidatePool
	}
	if r.BatchSize != 0 {
		cfg.BatchSize = r.BatchSize
	}
	if r.MMRLambda != 0 {
		cfg.MMRLambda = r.MMRLambda
	}
	if r.SeedPrototypeSize != 0 {
		cfg.SeedPrototypeSize = r.SeedPrototypeSize
	}
	if len(r.Weights) != 0 {
		cfg.Weights = r.Weights
	}
	if len(r.Quotas) != 0 {
		quotas := make(map[rank.Category]int, len(r.Quotas))
		for label, q := range r.Quotas {
			quotas[rank.Category(label)] = q
		}
		cfg.Quotas = quotas
	}
	if len(r.Seeds.Action) != 0 {
		cfg.ActionSeeds = r.Seeds.Action
	}
	if len(r.Seeds.Decor) != 0 {
		cfg.DecorSeeds = r.Seeds.Decor
	}
	if r.StoplistExtra != nil {
		cfg.StoplistExtra = r.StoplistExtra
	}
	return cfg
}
