package rank

import "testing"

func TestScoreTerms_Bounds(t *testing.T) {
	t.Parallel()

	terms := []*Term{
		{Text: "swim", Signals: map[string]float64{SignalTopicSimilarity: 0.9, SignalActionMargin: 0.4}},
		{Text: "sand", Signals: map[string]float64{SignalTopicSimilarity: 0.8, SignalActionMargin: -0.2}},
		{Text: "error", Signals: map[string]float64{SignalTopicSimilarity: 0.1, SignalActionMargin: 0.0}},
	}
	scoreTerms(terms, DefaultConfig().Weights)

	for _, term := range terms {
		if term.Score < 0 || term.Score > 1 {
			t.Errorf("%s: score %v out of [0,1]", term.Text, term.Score)
		}
	}
	if terms[0].Score <= terms[2].Score {
		t.Errorf("swim (%v) should outscore error (%v)", terms[0].Score, terms[2].Score)
	}
}

func TestScoreTerms_DegeneratePool(t *testing.T) {
	t.Parallel()

	// All terms share identical signal values; the epsilon guard must yield
	// 0 for every normalized signal instead of dividing by zero.
	terms := []*Term{
		{Text: "one", Signals: map[string]float64{SignalTopicSimilarity: 0.5, SignalActionMargin: 0.1}},
		{Text: "two", Signals: map[string]float64{SignalTopicSimilarity: 0.5, SignalActionMargin: 0.1}},
	}
	scoreTerms(terms, DefaultConfig().Weights)

	for _, term := range terms {
		if term.Score != 0 {
			t.Errorf("%s: expected score 0 in degenerate pool, got %v", term.Text, term.Score)
		}
	}
}

func TestScoreTerms_UnsignalledTermSkipped(t *testing.T) {
	t.Parallel()

	terms := []*Term{
		{Text: "swim", Signals: map[string]float64{SignalTopicSimilarity: 0.9, SignalActionMargin: 0.2}},
		{Text: "degraded"},
	}
	scoreTerms(terms, DefaultConfig().Weights)

	if terms[1].Score != 0 {
		t.Errorf("unsignalled term should keep score 0, got %v", terms[1].Score)
	}
}

func TestScoreTerms_GenericSignalNames(t *testing.T) {
	t.Parallel()

	// The scorer must combine whatever signals the weights name, not a
	// hardcoded pair.
	terms := []*Term{
		{Text: "a", Signals: map[string]float64{"custom": 1.0}},
		{Text: "b", Signals: map[string]float64{"custom": 0.0}},
	}
	scoreTerms(terms, map[string]float64{"custom": 1.0})

	if terms[0].Score <= terms[1].Score {
		t.Errorf("a (%v) should outscore b (%v)", terms[0].Score, terms[1].Score)
	}
}
