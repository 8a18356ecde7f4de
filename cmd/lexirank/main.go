// Command lexirank ranks context-conditioned vocabulary. Given a scenario
// description it produces a scored, category-balanced term list on stdout and
// as JSON. The mcp subcommand serves the same pipeline as Model Context
// Protocol tools over stdio.
//
// Usage:
//
//	lexirank [-config config.yaml] [-n 100] [-out ranked_terms.json] <context text>
//	lexirank [-config config.yaml] mcp
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	anyllmlib "github.com/mozilla-ai/any-llm-go"

	"github.com/MrWong99/lexirank/internal/candidates"
	"github.com/MrWong99/lexirank/internal/config"
	"github.com/MrWong99/lexirank/internal/embedcache"
	"github.com/MrWong99/lexirank/internal/lingua"
	"github.com/MrWong99/lexirank/internal/mcptool"
	"github.com/MrWong99/lexirank/internal/observe"
	"github.com/MrWong99/lexirank/internal/rank"
	"github.com/MrWong99/lexirank/internal/sentences"
	"github.com/MrWong99/lexirank/pkg/provider/embeddings"
	ollamaembed "github.com/MrWong99/lexirank/pkg/provider/embeddings/ollama"
	oaembed "github.com/MrWong99/lexirank/pkg/provider/embeddings/openai"
	"github.com/MrWong99/lexirank/pkg/provider/llm"
	"github.com/MrWong99/lexirank/pkg/provider/llm/anyllm"
	oaillm "github.com/MrWong99/lexirank/pkg/provider/llm/openai"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	targetCount := flag.Int("n", 0, "number of terms to select (0 uses the configured default)")
	outPath := flag.String("out", "ranked_terms.json", "path for the JSON result file (empty disables)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "lexirank: config file %q not found — copy configs/example.yaml to get started\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "lexirank: %v\n", err)
		}
		return 1
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(cfg.Server.LogLevel.SlogLevel())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    "lexirank",
		ServiceVersion: version,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	reg := config.NewRegistry()
	registerBuiltinProviders(reg)

	llmProvider, err := reg.CreateLLM(cfg.Providers.LLM)
	if err != nil {
		slog.Error("failed to create llm provider", "name", cfg.Providers.LLM.Name, "err", err)
		return 1
	}
	slog.Info("provider created", "kind", "llm", "name", cfg.Providers.LLM.Name, "model", llmProvider.ModelID())

	embedProvider, err := reg.CreateEmbeddings(cfg.Providers.Embeddings)
	if err != nil {
		slog.Error("failed to create embeddings provider", "name", cfg.Providers.Embeddings.Name, "err", err)
		return 1
	}
	slog.Info("provider created", "kind", "embeddings", "name", cfg.Providers.Embeddings.Name, "model", embedProvider.ModelID())

	metrics := observe.DefaultMetrics()

	// Wrap the embeddings provider with the Postgres cache when configured.
	if cfg.Cache.PostgresDSN != "" {
		dims := cfg.Cache.EmbeddingDimensions
		if dims == 0 {
			dims = embedProvider.Dimensions()
		}
		store, err := embedcache.NewStore(ctx, cfg.Cache.PostgresDSN, dims)
		if err != nil {
			slog.Error("failed to connect embedding cache", "err", err)
			return 1
		}
		defer store.Close()
		embedProvider = embedcache.NewCachingProvider(embedProvider, store, metrics, logger)
		slog.Info("embedding cache enabled", "dimensions", dims)
	}

	analyzer := lingua.NewEnglish()
	source := candidates.NewGenerator(llmProvider, metrics, logger)

	ranker, err := rank.NewRanker(cfg.Ranking.ToRankConfig(), source, embedProvider, analyzer,
		rank.WithLogger(logger),
		rank.WithMetrics(metrics),
	)
	if err != nil {
		slog.Error("invalid ranking configuration", "err", err)
		return 1
	}

	if flag.Arg(0) == "mcp" {
		holder := &rankerHolder{}
		holder.ranker.Store(ranker)

		// Long-running mode gets config hot reload for the log level and the
		// ranking tunables. Provider and cache changes still need a restart.
		watcher, err := config.NewWatcher(*configPath, func(_, newCfg *config.Config) {
			diff := config.Diff(cfg, newCfg)
			if diff.LogLevelChanged {
				logLevel.Set(diff.NewLogLevel.SlogLevel())
				slog.Info("log level updated", "level", diff.NewLogLevel)
			}
			if diff.RankingChanged {
				next, err := rank.NewRanker(newCfg.Ranking.ToRankConfig(), source, embedProvider, analyzer,
					rank.WithLogger(logger),
					rank.WithMetrics(metrics),
				)
				if err != nil {
					slog.Error("rejecting ranking config change", "err", err)
				} else {
					holder.ranker.Store(next)
					slog.Info("ranking configuration updated")
				}
			}
			cfg = newCfg
		})
		if err != nil {
			slog.Warn("config hot reload disabled", "err", err)
		} else {
			defer watcher.Stop()
		}

		srv := mcptool.NewServer(holder, sentences.NewGenerator(llmProvider, metrics, logger), version, logger)
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("mcp server error", "err", err)
			return 1
		}
		return 0
	}

	contextText := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if contextText == "" {
		fmt.Fprintln(os.Stderr, "lexirank: a context description is required")
		flag.Usage()
		return 2
	}

	result, err := ranker.Rank(ctx, contextText, *targetCount)
	if err != nil {
		slog.Error("ranking failed", "err", err)
		return 1
	}

	printResult(result)

	if *outPath != "" {
		if err := writeJSON(*outPath, result); err != nil {
			slog.Error("failed to write result file", "path", *outPath, "err", err)
			return 1
		}
		slog.Info("result written", "path", *outPath, "terms", len(result.Terms))
	}
	return 0
}

// rankerHolder lets the MCP server pick up a rebuilt pipeline after a config
// reload without restarting the session.
type rankerHolder struct {
	ranker atomic.Pointer[rank.Ranker]
}

func (h *rankerHolder) Rank(ctx context.Context, contextText string, n int) (*rank.Result, error) {
	return h.ranker.Load().Rank(ctx, contextText, n)
}

// registerBuiltinProviders wires all built-in provider factories into reg.
// The openai LLM goes through the native SDK; the remaining hosted and local
// backends share the any-llm multi-provider client.
func registerBuiltinProviders(reg *config.Registry) {
	reg.RegisterLLM("openai", func(entry config.ProviderEntry) (llm.Provider, error) {
		var opts []oaillm.Option
		if entry.BaseURL != "" {
			opts = append(opts, oaillm.WithBaseURL(entry.BaseURL))
		}
		if org := optString(entry.Options, "organization"); org != "" {
			opts = append(opts, oaillm.WithOrganization(org))
		}
		return oaillm.New(entry.APIKey, entry.Model, opts...)
	})

	for _, providerName := range []string{
		"anthropic", "gemini", "deepseek", "mistral", "groq", "llamacpp", "llamafile",
	} {
		reg.RegisterLLM(providerName, func(entry config.ProviderEntry) (llm.Provider, error) {
			var opts []anyllmlib.Option
			if entry.APIKey != "" {
				opts = append(opts, anyllmlib.WithAPIKey(entry.APIKey))
			}
			if entry.BaseURL != "" {
				opts = append(opts, anyllmlib.WithBaseURL(entry.BaseURL))
			}
			return anyllm.New(providerName, entry.Model, opts...)
		})
	}

	// ollama is a local server; it uses BaseURL for the address, not an API key.
	reg.RegisterLLM("ollama", func(entry config.ProviderEntry) (llm.Provider, error) {
		var opts []anyllmlib.Option
		if entry.BaseURL != "" {
			opts = append(opts, anyllmlib.WithBaseURL(entry.BaseURL))
		}
		return anyllm.New("ollama", entry.Model, opts...)
	})

	reg.RegisterEmbeddings("openai", func(entry config.ProviderEntry) (embeddings.Provider, error) {
		var opts []oaembed.Option
		if entry.BaseURL != "" {
			opts = append(opts, oaembed.WithBaseURL(entry.BaseURL))
		}
		return oaembed.New(entry.APIKey, entry.Model, opts...)
	})

	reg.RegisterEmbeddings("ollama", func(entry config.ProviderEntry) (embeddings.Provider, error) {
		return ollamaembed.New(entry.BaseURL, entry.Model)
	})
}

// printResult writes the per-category report to stdout.
func printResult(result *rank.Result) {
	fmt.Printf("Ranked vocabulary for: %s\n", result.Context)
	fmt.Printf("%d terms selected\n", len(result.Terms))

	byCategory := make(map[rank.Category][]rank.RankedTerm)
	for _, term := range result.Terms {
		byCategory[term.Category] = append(byCategory[term.Category], term)
	}

	for _, cat := range rank.Categories() {
		terms := byCategory[cat]
		if len(terms) == 0 {
			continue
		}
		fmt.Printf("\n%s (%d)\n", cat, len(terms))
		for _, term := range terms {
			fmt.Printf("  %5.3f  %s\n", term.Score, term.Term)
		}
	}
}

func writeJSON(path string, result *rank.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// optString extracts a string value from a provider Options map[string]any.
// Returns "" if the map is nil, the key is absent, or the value is not a string.
func optString(opts map[string]any, key string) string {
	if opts == nil {
		return ""
	}
	v, ok := opts[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
