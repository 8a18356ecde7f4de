package config

import "reflect"

// ConfigDiff describes what changed between two configs.
// Only fields that can be safely hot-reloaded are tracked: provider and cache
// changes require a restart because live clients hold connections.
type ConfigDiff struct {
	LogLevelChanged bool
	NewLogLevel     LogLevel

	// RankingChanged is true when any ranking tunable differs. The whole
	// ranking block is swapped atomically; per-field tracking is not needed
	// because a new pipeline is constructed from the merged config anyway.
	RankingChanged bool
	NewRanking     RankingConfig
}

// HasChanges reports whether the diff contains any hot-reloadable change.
func (d ConfigDiff) HasChanges() bool {
	return d.LogLevelChanged || d.RankingChanged
}

// Diff compares old and new configs and returns what changed.
// Only tracks changes that are safe to apply without restart.
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.Server.LogLevel != new.Server.LogLevel {
		d.LogLevelChanged = true
		d.NewLogLevel = new.Server.LogLevel
	}

	if !reflect.DeepEqual(old.Ranking, new.Ranking) {
		d.RankingChanged = true
		d.NewRanking = new.Ranking
	}

	return d
}
