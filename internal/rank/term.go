// Package rank implements the context-conditioned vocabulary ranking and
// diversification pipeline: candidate normalization, vectorization, relevance
// signal computation, scoring, categorization, and quota-constrained
// diversity selection.
//
// The pipeline is synchronous per invocation. Each invocation owns its Term
// pool and intermediate state exclusively; the only shared state is the
// immutable [Config] passed at construction, so a [Ranker] is safe for
// concurrent use.
package rank

// Category is one of the six fixed semantic labels a term can carry.
type Category string

const (
	// CategoryAction covers verbs and task words ("swim", "create", "write").
	CategoryAction Category = "Action/Task"

	// CategoryTech covers tooling, library, and language vocabulary.
	CategoryTech Category = "Tech/Tool"

	// CategoryProblem covers error, failure, and defect vocabulary.
	CategoryProblem Category = "Problem/Error"

	// CategoryData covers dataset, file, and structural-data vocabulary.
	CategoryData Category = "Data/Artifact"

	// CategoryConcept covers abstract processes and techniques. It is also the
	// absolute fallback when no other rule matches.
	CategoryConcept Category = "Concept/Method"

	// CategoryEvent covers meeting, schedule, and session vocabulary.
	CategoryEvent Category = "Event/Logistics"
)

// Categories returns all valid category labels in quota-application order.
// The order is part of the selection contract: quotas are filled in this
// sequence, so it must stay stable across invocations.
func Categories() []Category {
	return []Category{
		CategoryAction,
		CategoryTech,
		CategoryProblem,
		CategoryData,
		CategoryConcept,
		CategoryEvent,
	}
}

// ValidCategory reports whether label is one of the six fixed categories.
func ValidCategory(label Category) bool {
	switch label {
	case CategoryAction, CategoryTech, CategoryProblem, CategoryData, CategoryConcept, CategoryEvent:
		return true
	}
	return false
}

// Signal names produced by the signal computer. The scorer treats signals
// generically by name, so adding a signal means adding a weight for it in
// [Config.Weights] and an entry in each term's Signals map.
const (
	// SignalTopicSimilarity is the cosine similarity between a term's
	// embedding and the context embedding.
	SignalTopicSimilarity = "sim_topic"

	// SignalActionMargin is the difference between a term's similarity to the
	// action prototype and its similarity to the decor prototype. Positive
	// values indicate action-like words.
	SignalActionMargin = "action_margin"
)

// Term is a candidate vocabulary unit flowing through the pipeline.
//
// A Term is created by the normalizer and mutated in place by each subsequent
// stage: the vectorizer sets Embedding, the signal computer sets Signals, the
// scorer sets Score, and the categorizer sets Category. After categorization
// a Term is never modified again; the diversifier only selects or skips it.
type Term struct {
	// Text is the normalized surface form: lowercase, trimmed, 2-30
	// characters, at most two space-separated words.
	Text string

	// Lemma is the canonical form used as deduplication identity. For
	// two-word terms it is the per-word lemmas joined with a space.
	Lemma string

	// Embedding is the term's vector. An all-zero vector means "embedding
	// unavailable" (degraded batch); it is never nil after vectorization.
	Embedding []float32

	// Signals maps signal name to raw value. Nil for terms that never
	// received an embedding; such terms get no score and cannot be selected.
	Signals map[string]float64

	// Score is the combined relevance score in [0,1], defined only after the
	// scorer runs. Terms without signals keep the zero value and are treated
	// as score 0 by the diversifier.
	Score float64

	// Category is the term's single semantic label, set by the categorizer.
	Category Category
}

// RankedTerm is one entry of a ranking result.
type RankedTerm struct {
	Term     string   `json:"term"`
	Score    float64  `json:"score"`
	Category Category `json:"category"`
}

// Result is the output of a full ranking invocation. Terms are sorted
// descending by score.
type Result struct {
	Context string       `json:"context"`
	Terms   []RankedTerm `json:"terms"`
}
