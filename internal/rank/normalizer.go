package rank

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/MrWong99/lexirank/internal/lingua"
)

// properNounDenylist names ecosystem and brand terms that are rejected when
// the analyzer also tags them as proper nouns. Generic tech vocabulary
// ("boat", "code", "server") passes through; specific products do not.
var properNounDenylist = map[string]struct{}{
	"spacy": {}, "nltk": {}, "sklearn": {}, "pytorch": {}, "tensorflow": {},
	"keras": {}, "numpy": {}, "pandas": {}, "matplotlib": {}, "jupyter": {},
	"openai": {}, "anthropic": {}, "claude": {}, "chatgpt": {}, "gpt": {},
	"python": {}, "javascript": {}, "typescript": {}, "java": {}, "react": {},
	"vue": {}, "angular": {}, "docker": {}, "kubernetes": {}, "aws": {},
	"azure": {}, "gcp": {}, "github": {}, "gitlab": {}, "postgresql": {},
	"mysql": {}, "mongodb": {}, "redis": {}, "elasticsearch": {},
	"fastapi": {}, "django": {}, "flask": {}, "express": {}, "nextjs": {},
	"node": {}, "vscode": {}, "pycharm": {}, "intellij": {}, "eclipse": {},
	"vim": {}, "emacs": {},
}

// badPhraseSubstrings mark overly specific or descriptive candidates:
// discourse markers, embedded demonstratives, and quantifier+noun phrases.
// A candidate containing any of them is rejected.
var badPhraseSubstrings = []string{
	"in short", "in summary", "in brief", "in other words",
	"another", "this", "that", "these", "those",
	"five friend", "three people", "two student", "ten person",
}

// functionWords are articles and demonstratives that disqualify a two-word
// candidate when they appear as either word.
var functionWords = map[string]struct{}{
	"another": {}, "the": {}, "a": {}, "an": {}, "this": {}, "that": {},
}

// spellingSuffixes maps British suffixes to their American form. Two surface
// forms that reduce to the same key are the same word in two spellings.
var spellingSuffixes = [...][2]string{
	{"isation", "ization"},
	{"ising", "izing"},
	{"ised", "ized"},
	{"ise", "ize"},
	{"ysing", "yzing"},
	{"ysed", "yzed"},
	{"yse", "yze"},
	{"our", "or"},
}

// Normalizer cleans a raw candidate list into an ordered pool of unique
// Terms. Rejection rules fire silently; a candidate list can legitimately
// normalize down to nothing.
type Normalizer struct {
	analyzer lingua.Analyzer
	stoplist map[string]struct{}
}

// NewNormalizer creates a Normalizer using the given analyzer for
// part-of-speech checks and lemmatization. stoplistExtra words are rejected
// outright.
func NewNormalizer(analyzer lingua.Analyzer, stoplistExtra []string) *Normalizer {
	stop := make(map[string]struct{}, len(stoplistExtra))
	for _, w := range stoplistExtra {
		stop[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return &Normalizer{analyzer: analyzer, stoplist: stop}
}

// Normalize applies the rejection rules to each candidate in order and
// returns the surviving Terms, lemma-unique, in first-seen order. The
// returned Terms carry Text and Lemma only; later stages fill the rest.
func (n *Normalizer) Normalize(candidates []string) []*Term {
	var out []*Term
	seenLemmas := make(map[string]struct{})
	var acceptedWords []string

	for _, raw := range candidates {
		text := strings.ToLower(strings.TrimSpace(raw))
		if len(text) < 2 || len(text) > 30 {
			continue
		}
		if _, ok := n.stoplist[text]; ok {
			continue
		}
		if containsBadPhrase(text) {
			continue
		}

		words := strings.Fields(text)
		if len(words) > 2 {
			continue
		}
		if len(words) == 2 {
			if _, ok := functionWords[words[0]]; ok {
				continue
			}
			if _, ok := functionWords[words[1]]; ok {
				continue
			}
		}
		if len(words) == 0 {
			continue
		}

		if n.analyzer.PartOfSpeech(words[0]) == lingua.POSProperNoun {
			if _, ok := properNounDenylist[text]; ok {
				continue
			}
		}

		lemma := n.lemmaOf(words)
		if _, ok := seenLemmas[lemma]; ok {
			continue
		}
		if len(words) == 1 && isNearDuplicate(text, acceptedWords) {
			continue
		}

		seenLemmas[lemma] = struct{}{}
		if len(words) == 1 {
			acceptedWords = append(acceptedWords, text)
		}
		out = append(out, &Term{Text: text, Lemma: lemma})
	}
	return out
}

// lemmaOf joins the per-word lemmas of a candidate into its dedup key.
func (n *Normalizer) lemmaOf(words []string) string {
	if len(words) == 1 {
		return n.analyzer.Lemma(words[0])
	}
	lemmas := make([]string, len(words))
	for i, w := range words {
		lemmas[i] = n.analyzer.Lemma(w)
	}
	return strings.Join(lemmas, " ")
}

func containsBadPhrase(text string) bool {
	for _, p := range badPhraseSubstrings {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// spellingKey reduces a British suffix to its American form so both
// spellings of a word share one key. Words without a listed suffix are
// returned unchanged.
func spellingKey(word string) string {
	for _, s := range spellingSuffixes {
		if strings.HasSuffix(word, s[0]) {
			return strings.TrimSuffix(word, s[0]) + s[1]
		}
	}
	return word
}

// isNearDuplicate reports whether word is a spelling variant of an already
// accepted word: both reduce to the same spelling key and sit within one
// edit of each other ("analyse"/"analyze", "colour"/"color"). Words that
// merely look alike ("collar"/"dollar") are distinct vocabulary and pass.
func isNearDuplicate(word string, accepted []string) bool {
	key := spellingKey(word)
	for _, a := range accepted {
		if spellingKey(a) == key && matchr.DamerauLevenshtein(word, a) <= 1 {
			return true
		}
	}
	return false
}
