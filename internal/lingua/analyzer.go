// Package lingua provides the linguistic-analysis capability used by the
// ranking pipeline: part-of-speech classification, lemmatization, and content
// term extraction from free text.
//
// The pipeline depends only on the [Analyzer] interface; the bundled
// [English] implementation is a deterministic rule-based analyzer (closed-set
// lexicons plus suffix heuristics) that needs no model files or network
// access. A heavier tagger can be swapped in behind the same interface.
package lingua

// PartOfSpeech is the coarse word-class tag produced by an [Analyzer].
type PartOfSpeech string

const (
	// POSVerb tags action words ("swim", "debug", "create").
	POSVerb PartOfSpeech = "VERB"

	// POSNoun tags common nouns ("ocean", "dataset", "meeting").
	POSNoun PartOfSpeech = "NOUN"

	// POSProperNoun tags names of specific products, brands, and places.
	POSProperNoun PartOfSpeech = "PROPN"

	// POSAdjective tags descriptive words ("comfortable", "broken").
	POSAdjective PartOfSpeech = "ADJ"

	// POSAdverb tags manner words ("quickly", "really").
	POSAdverb PartOfSpeech = "ADV"

	// POSOther tags everything else (function words, particles, unknowns).
	POSOther PartOfSpeech = "X"
)

// Analyzer is the abstraction over any linguistic analysis backend.
//
// Implementations must be deterministic: identical input must yield identical
// output within a process, because lemmas serve as deduplication identity for
// the candidate pool. Implementations must be safe for concurrent use.
type Analyzer interface {
	// Lemma returns the canonical base form of a single word, used as the
	// deduplication key ("running" → "run", "boxes" → "box"). Implementations
	// that cannot canonicalize a word return it unchanged.
	Lemma(word string) string

	// PartOfSpeech classifies a single word into a coarse word class.
	// Classification happens without sentence context, so ambiguous words
	// resolve to their most common class.
	PartOfSpeech(word string) PartOfSpeech

	// ExtractTerms pulls candidate vocabulary out of running text: content
	// words (nouns, verbs, adjectives) with stopwords and punctuation removed,
	// in order of first appearance. Used to seed the candidate pool with terms
	// from the scenario description itself.
	ExtractTerms(text string) []string
}
