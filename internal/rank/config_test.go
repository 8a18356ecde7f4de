package rank

import "testing"

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{name: "zero target count", mutate: func(c *Config) { c.TargetCount = 0 }, wantErr: true},
		{name: "negative candidate pool", mutate: func(c *Config) { c.CandidatePool = -1 }, wantErr: true},
		{name: "zero batch size", mutate: func(c *Config) { c.BatchSize = 0 }, wantErr: true},
		{name: "lambda zero", mutate: func(c *Config) { c.MMRLambda = 0 }, wantErr: true},
		{name: "lambda above one", mutate: func(c *Config) { c.MMRLambda = 1.1 }, wantErr: true},
		{name: "lambda one is valid", mutate: func(c *Config) { c.MMRLambda = 1 }},
		{name: "unknown quota category", mutate: func(c *Config) {
			c.Quotas = map[Category]int{"Fauna/Flora": 5}
		}, wantErr: true},
		{name: "negative quota", mutate: func(c *Config) {
			c.Quotas = map[Category]int{CategoryAction: -1}
		}, wantErr: true},
		{name: "unknown signal weight", mutate: func(c *Config) {
			c.Weights = map[string]float64{"sim_banana": 1}
		}, wantErr: true},
		{name: "negative weight", mutate: func(c *Config) {
			c.Weights = map[string]float64{SignalTopicSimilarity: -0.5}
		}, wantErr: true},
		{name: "empty weights", mutate: func(c *Config) { c.Weights = nil }, wantErr: true},
		{name: "weights sum above one", mutate: func(c *Config) {
			c.Weights = map[string]float64{SignalTopicSimilarity: 0.9, SignalActionMargin: 0.9}
		}, wantErr: true},
		{name: "weights sum below one", mutate: func(c *Config) {
			c.Weights = map[string]float64{SignalTopicSimilarity: 0.2, SignalActionMargin: 0.3}
		}, wantErr: true},
		{name: "weights on one signal", mutate: func(c *Config) {
			c.Weights = map[string]float64{SignalTopicSimilarity: 1}
		}, wantErr: false},
		{name: "empty seeds", mutate: func(c *Config) { c.ActionSeeds = nil }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestDefaultConfigQuotas(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	for label := range cfg.Quotas {
		if !ValidCategory(label) {
			t.Errorf("default quota references invalid category %q", label)
		}
	}
}
