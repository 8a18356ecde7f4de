package rank

// scoreEpsilon guards min-max normalization against a degenerate pool where
// every term shares the same signal value. The numerator is then also zero,
// so the normalized signal collapses to 0 instead of dividing by zero.
const scoreEpsilon = 1e-6

// scoreTerms assigns each signalled term a combined score: every signal is
// min-max normalized across the pool, then the weighted sum over the
// configured weights is taken. Signals are handled generically by name, so
// the scorer needs no changes when a signal is added.
//
// Terms without signals are left unscored (Score stays 0); with non-negative
// weights summing to 1 the assigned scores land in [0,1].
func scoreTerms(terms []*Term, weights map[string]float64) {
	type bounds struct {
		min, max float64
		seen     bool
	}
	perSignal := make(map[string]*bounds)

	for _, t := range terms {
		for name, v := range t.Signals {
			b := perSignal[name]
			if b == nil {
				b = &bounds{min: v, max: v, seen: true}
				perSignal[name] = b
				continue
			}
			if v < b.min {
				b.min = v
			}
			if v > b.max {
				b.max = v
			}
		}
	}

	for _, t := range terms {
		if t.Signals == nil {
			continue
		}
		var score float64
		for name, w := range weights {
			v, ok := t.Signals[name]
			if !ok {
				continue
			}
			b := perSignal[name]
			score += w * (v - b.min) / (b.max - b.min + scoreEpsilon)
		}
		t.Score = score
	}
}
