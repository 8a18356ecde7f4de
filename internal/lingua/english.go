package lingua

import (
	"strings"
	"unicode"
)

// English is a rule-based analyzer for English text. It combines small
// closed-set lexicons with suffix heuristics, trading tagging accuracy for
// determinism and zero external dependencies.
//
// English is read-only after construction and safe for concurrent use.
type English struct {
	verbs       map[string]struct{}
	properNouns map[string]struct{}
	stopwords   map[string]struct{}
	irregular   map[string]string
}

// Ensure English implements Analyzer at compile time.
var _ Analyzer = (*English)(nil)

// NewEnglish returns a ready-to-use English analyzer.
func NewEnglish() *English {
	return &English{
		verbs:       toSet(commonVerbs),
		properNouns: toSet(properNounLexicon),
		stopwords:   toSet(stopwordList),
		irregular:   irregularLemmas,
	}
}

// Lemma implements Analyzer using irregular-form lookup followed by ordered
// suffix stripping. Words of three characters or fewer are returned unchanged
// since suffix rules misfire on them ("was", "is", "bus").
func (e *English) Lemma(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return word
	}
	if base, ok := e.irregular[w]; ok {
		return base
	}
	if len(w) <= 3 {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y" // parties → party
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2] // classes → class... handled by "es" below for most
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		return w[:len(w)-2] // boxes → box, beaches → beach
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		stem := w[:len(w)-3]
		return undouble(stem) // running → run, swimming → swim
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y" // studied → study
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		stem := w[:len(w)-2]
		return undouble(stem) // jumped → jump, planned → plan
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w // class, focus, analysis stay as-is
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1] // waves → wave
	}
	return w
}

// undouble collapses a doubled final consonant left over from -ing/-ed
// stripping ("runn" → "run") but leaves legitimate doubles alone ("fall",
// "pass" end in ll/ss which never come from doubling here since the stem is
// post-strip).
func undouble(stem string) string {
	n := len(stem)
	if n < 3 {
		return stem
	}
	last := stem[n-1]
	if stem[n-2] != last {
		return stem
	}
	// ll, ss, ee, oo, zz appear naturally in base forms (fall, press, free).
	switch last {
	case 'l', 's', 'e', 'o', 'z':
		return stem
	}
	return stem[:n-1]
}

// PartOfSpeech implements Analyzer. Precedence: proper-noun lexicon, verb
// lexicon (checked on the lemma so inflected forms classify too), suffix
// heuristics, then noun as the default for content-looking words.
func (e *English) PartOfSpeech(word string) PartOfSpeech {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" || !isAlpha(w) {
		return POSOther
	}
	if _, ok := e.properNouns[w]; ok {
		return POSProperNoun
	}
	if _, ok := e.stopwords[w]; ok {
		return POSOther
	}
	lemma := e.Lemma(w)
	if _, ok := e.verbs[lemma]; ok {
		return POSVerb
	}

	switch {
	case strings.HasSuffix(w, "ly") && len(w) > 4:
		return POSAdverb
	case strings.HasSuffix(w, "ize"), strings.HasSuffix(w, "ise"),
		strings.HasSuffix(w, "ify"), strings.HasSuffix(w, "ate") && len(w) > 5:
		return POSVerb
	case strings.HasSuffix(w, "ous"), strings.HasSuffix(w, "ful"),
		strings.HasSuffix(w, "ive"), strings.HasSuffix(w, "able"),
		strings.HasSuffix(w, "ible"), strings.HasSuffix(w, "less"):
		return POSAdjective
	}
	return POSNoun
}

// ExtractTerms implements Analyzer: lowercase alphabetic tokens minus
// stopwords, lemmatized, in first-appearance order. Duplicate lemmas are kept;
// the normalizer downstream owns deduplication.
func (e *English) ExtractTerms(text string) []string {
	var terms []string
	for _, tok := range tokenize(text) {
		if len(tok) < 2 {
			continue
		}
		if _, ok := e.stopwords[tok]; ok {
			continue
		}
		terms = append(terms, e.Lemma(tok))
	}
	return terms
}

// tokenize splits text into lowercase alphabetic tokens.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || r == '\'' || r == '-' {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, strings.Trim(b.String(), "'-"))
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, strings.Trim(b.String(), "'-"))
	}
	return tokens
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return len(s) > 0
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
