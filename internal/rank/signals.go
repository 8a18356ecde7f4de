package rank

// computeSignals fills in each term's Signals map from its embedding, the
// context embedding, and the two prototype centroids. Terms without an
// embedding (nil) are skipped entirely; they will carry no signals and no
// score. Zero-vector embeddings still get signals (all similarities are 0 by
// the zero-vector convention), keeping them in the pool-wide normalization.
func computeSignals(terms []*Term, ctxVec, protoAction, protoDecor []float32) {
	for _, t := range terms {
		if t.Embedding == nil {
			continue
		}
		simTopic := cosine(t.Embedding, ctxVec)
		margin := cosine(t.Embedding, protoAction) - cosine(t.Embedding, protoDecor)
		t.Signals = map[string]float64{
			SignalTopicSimilarity: simTopic,
			SignalActionMargin:    margin,
		}
	}
}
