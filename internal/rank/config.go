package rank

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float accumulation noise when checking that
// configured signal weights sum to 1.
const weightSumTolerance = 1e-6

// Config holds the immutable tuning parameters of a ranking pipeline. Build
// one with [DefaultConfig] and adjust fields before constructing a [Ranker];
// the Ranker copies what it needs and never mutates the Config afterwards.
type Config struct {
	// TargetCount is the default number of terms to return when the caller
	// does not request a specific count.
	TargetCount int

	// CandidatePool is the number of raw candidate words requested from the
	// candidate source before normalization shrinks the pool.
	CandidatePool int

	// BatchSize is the maximum number of texts per embedding request.
	BatchSize int

	// MMRLambda is the relevance/redundancy trade-off for diversity
	// selection, in (0,1]. Higher values favor relevance.
	MMRLambda float64

	// SeedPrototypeSize is how many words from the head of each seed list are
	// averaged into a prototype vector.
	SeedPrototypeSize int

	// Weights maps signal name to its coefficient in the combined score.
	Weights map[string]float64

	// Quotas maps category label to its target count in the final selection.
	// Quotas need not sum to TargetCount; the remainder is filled by global
	// top-score backfill.
	Quotas map[Category]int

	// ActionSeeds and DecorSeeds are the seed-word lists whose head elements
	// form the action and decor prototype centroids.
	ActionSeeds []string
	DecorSeeds  []string

	// StoplistExtra lists filler words rejected outright during
	// normalization, on top of the analyzer's own stopword handling.
	StoplistExtra []string
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		TargetCount:       100,
		CandidatePool:     500,
		BatchSize:         100,
		MMRLambda:         0.7,
		SeedPrototypeSize: 5,
		Weights: map[string]float64{
			SignalTopicSimilarity: 0.7,
			SignalActionMargin:    0.3,
		},
		Quotas: map[Category]int{
			CategoryAction:  25,
			CategoryTech:    20,
			CategoryProblem: 10,
			CategoryData:    20,
			CategoryConcept: 15,
			CategoryEvent:   10,
		},
		ActionSeeds: []string{
			"work", "create", "write", "read", "help", "learn", "teach", "talk",
			"click", "type", "save", "open", "edit", "share", "test", "run",
			"tokenize", "debug", "parse", "analyze",
		},
		DecorSeeds: []string{
			"room", "chair", "vibe", "light", "atmosphere", "wall", "ceiling",
			"furniture", "decoration", "ambiance", "setting",
		},
		StoplistExtra: []string{
			"folks", "guys", "stuff", "thing", "really", "very", "quite",
		},
	}
}

// Validate checks the Config for values that would make the pipeline
// misbehave at request time. Returns an error naming the first offending
// field.
func (c Config) Validate() error {
	if c.TargetCount <= 0 {
		return fmt.Errorf("target count must be positive, got %d", c.TargetCount)
	}
	if c.CandidatePool <= 0 {
		return fmt.Errorf("candidate pool must be positive, got %d", c.CandidatePool)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.MMRLambda <= 0 || c.MMRLambda > 1 {
		return fmt.Errorf("mmr lambda must be in (0,1], got %g", c.MMRLambda)
	}
	if c.SeedPrototypeSize <= 0 {
		return fmt.Errorf("seed prototype size must be positive, got %d", c.SeedPrototypeSize)
	}
	if len(c.Weights) == 0 {
		return fmt.Errorf("weights must not be empty")
	}
	var weightSum float64
	for name, w := range c.Weights {
		switch name {
		case SignalTopicSimilarity, SignalActionMargin:
		default:
			return fmt.Errorf("weight %q references no known signal", name)
		}
		if w < 0 {
			return fmt.Errorf("weight %q must be non-negative, got %g", name, w)
		}
		weightSum += w
	}
	// Normalized signals are in [0,1], so scores stay in [0,1] exactly when
	// the weights sum to 1.
	if math.Abs(weightSum-1) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1, got %g", weightSum)
	}
	for label, q := range c.Quotas {
		if !ValidCategory(label) {
			return fmt.Errorf("quota category %q is not a valid category label", label)
		}
		if q < 0 {
			return fmt.Errorf("quota for %q must be non-negative, got %d", label, q)
		}
	}
	if len(c.ActionSeeds) == 0 || len(c.DecorSeeds) == 0 {
		return fmt.Errorf("seed lists must not be empty")
	}
	return nil
}
