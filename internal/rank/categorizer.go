package rank

import (
	"regexp"
	"strings"

	"github.com/MrWong99/lexirank/internal/lingua"
)

// categoryRule pairs a predicate with the label assigned when it matches.
// Rules are evaluated in order and the first match wins, so a term matching
// both a tech pattern and an error pattern resolves to Tech/Tool.
type categoryRule struct {
	// Name is a human-readable label for logging and tests.
	Name string

	// Match reports whether the rule applies to the term text.
	Match func(term string) bool

	// Label is the category assigned when Match fires.
	Label Category
}

// Categorizer assigns every term exactly one of the six fixed category
// labels via an ordered rule cascade. It is a total function: the final
// fallback always fires. Safe for concurrent use; all state is immutable
// after construction.
type Categorizer struct {
	rules    []categoryRule
	fallback Category
}

// NewCategorizer builds the standard rule cascade on top of analyzer, which
// supplies the part-of-speech checks.
func NewCategorizer(analyzer lingua.Analyzer) *Categorizer {
	techPatterns := compileAll(
		`(?i)(spacy|nltk|sklearn|pytorch|tensorflow|pandas|numpy|matplotlib|jupyter|faiss)`,
		`(?i)(python|java|javascript|sql|api|framework|library)`,
	)
	errorPatterns := compileAll(
		`(?i)(error|exception|fail|unexpected|issue|bug|warning|crash)`,
		`(?i)(wrong|invalid|corrupt|missing|broken)`,
	)
	dataPatterns := compileAll(
		`(?i)(data|dataset|model|output|input|file|document|corpus)`,
		`(?i)(matrix|vector|tensor|array|table|schema|weights)`,
	)
	eventPatterns := compileAll(
		`(?i)(presentation|talk|workshop|session|meeting|check-in|raffle)`,
		`(?i)(schedule|agenda|timer|break|lunch)`,
	)
	conceptPatterns := compileAll(
		`(?i)(tokenization|lemmatization|normalization|embedding|similarity)`,
		`(?i)(algorithm|method|technique|approach|process|analysis)`,
	)

	headPOS := func(term string) lingua.PartOfSpeech {
		words := strings.Fields(term)
		if len(words) == 0 {
			return lingua.POSOther
		}
		return analyzer.PartOfSpeech(words[0])
	}

	return &Categorizer{
		fallback: CategoryConcept,
		rules: []categoryRule{
			{Name: "tech-pattern", Match: matchAny(techPatterns), Label: CategoryTech},
			{Name: "error-pattern", Match: matchAny(errorPatterns), Label: CategoryProblem},
			{Name: "data-pattern", Match: matchAny(dataPatterns), Label: CategoryData},
			{Name: "event-pattern", Match: matchAny(eventPatterns), Label: CategoryEvent},
			{Name: "verb-pos", Match: func(term string) bool {
				return headPOS(term) == lingua.POSVerb
			}, Label: CategoryAction},
			{Name: "concept-pattern", Match: matchAny(conceptPatterns), Label: CategoryConcept},
			{Name: "noun-pos", Match: func(term string) bool {
				pos := headPOS(term)
				return pos == lingua.POSNoun || pos == lingua.POSProperNoun
			}, Label: CategoryConcept},
		},
	}
}

// Categorize returns the category of term text.
func (c *Categorizer) Categorize(term string) Category {
	for _, r := range c.rules {
		if r.Match(term) {
			return r.Label
		}
	}
	return c.fallback
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func matchAny(patterns []*regexp.Regexp) func(string) bool {
	return func(term string) bool {
		for _, p := range patterns {
			if p.MatchString(term) {
				return true
			}
		}
		return false
	}
}
