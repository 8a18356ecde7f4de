package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ValidProviderNames lists known provider names per provider kind.
// Used by [Validate] to warn about unrecognised provider names.
var ValidProviderNames = map[string][]string{
	"llm":        {"openai", "anthropic", "ollama", "gemini", "deepseek", "mistral", "groq", "llamacpp", "llamafile"},
	"embeddings": {"openai", "ollama"},
}

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
//
// Ranking misconfiguration (unknown quota categories, weights naming no
// known signal, lambda outside (0,1], non-positive counts) is fatal here, at
// load time, so it can never surface mid-request.
func Validate(cfg *Config) error {
	var errs []error

	// Server
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	// Provider name validation — warn for unknown provider names.
	validateProviderName("llm", cfg.Providers.LLM.Name)
	validateProviderName("embeddings", cfg.Providers.Embeddings.Name)

	if cfg.Providers.LLM.Name == "" {
		slog.Warn("no LLM provider configured; candidate generation will not be available")
	}
	if cfg.Providers.Embeddings.Name == "" {
		slog.Warn("no embeddings provider configured; ranking will not be available")
	}

	// Embeddings ↔ cache dimensions
	if cfg.Cache.PostgresDSN != "" && cfg.Cache.EmbeddingDimensions <= 0 {
		slog.Warn("cache.postgres_dsn is configured but cache.embedding_dimensions is not set; defaulting to 1536")
	}
	if cfg.Cache.EmbeddingDimensions < 0 {
		errs = append(errs, fmt.Errorf("cache.embedding_dimensions %d must not be negative", cfg.Cache.EmbeddingDimensions))
	}

	// Ranking: merge onto defaults, then reuse the pipeline's own
	// validation so the rules cannot drift apart.
	if err := cfg.Ranking.ToRankConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ranking: %w", err))
	}

	return errors.Join(errs...)
}

// validateProviderName warns when a provider name is set but not recognised.
// Unknown names are not fatal so new providers can be tried without a config
// schema change.
func validateProviderName(kind, name string) {
	if name == "" {
		return
	}
	if !slices.Contains(ValidProviderNames[kind], name) {
		slog.Warn("unrecognised provider name", "kind", kind, "name", name)
	}
}

// SlogLevel converts the configured log level to a slog.Level.
// An empty or invalid level maps to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
