package config_test

import (
	"testing"

	"github.com/MrWong99/lexirank/internal/config"
)

func TestDiff_NoChanges(t *testing.T) {
	t.Parallel()

	old := &config.Config{Server: config.ServerConfig{LogLevel: config.LogInfo}}
	new := &config.Config{Server: config.ServerConfig{LogLevel: config.LogInfo}}

	d := config.Diff(old, new)
	if d.HasChanges() {
		t.Errorf("expected no changes, got %+v", d)
	}
}

func TestDiff_LogLevel(t *testing.T) {
	t.Parallel()

	old := &config.Config{Server: config.ServerConfig{LogLevel: config.LogInfo}}
	new := &config.Config{Server: config.ServerConfig{LogLevel: config.LogDebug}}

	d := config.Diff(old, new)
	if !d.LogLevelChanged {
		t.Fatal("expected LogLevelChanged")
	}
	if d.NewLogLevel != config.LogDebug {
		t.Errorf("NewLogLevel = %q, want debug", d.NewLogLevel)
	}
	if d.RankingChanged {
		t.Error("ranking should be unchanged")
	}
}

func TestDiff_Ranking(t *testing.T) {
	t.Parallel()

	old := &config.Config{Ranking: config.RankingConfig{MMRLambda: 0.7}}
	new := &config.Config{Ranking: config.RankingConfig{MMRLambda: 0.5, TargetCount: 50}}

	d := config.Diff(old, new)
	if !d.RankingChanged {
		t.Fatal("expected RankingChanged")
	}
	if d.NewRanking.MMRLambda != 0.5 || d.NewRanking.TargetCount != 50 {
		t.Errorf("NewRanking = %+v", d.NewRanking)
	}
	if d.LogLevelChanged {
		t.Error("log level should be unchanged")
	}
}

func TestDiff_ProviderChangeIsNotHotReloadable(t *testing.T) {
	t.Parallel()

	old := &config.Config{Providers: config.ProvidersConfig{LLM: config.ProviderEntry{Name: "openai"}}}
	new := &config.Config{Providers: config.ProvidersConfig{LLM: config.ProviderEntry{Name: "anthropic"}}}

	if d := config.Diff(old, new); d.HasChanges() {
		t.Errorf("provider changes must not be tracked as hot-reloadable, got %+v", d)
	}
}
