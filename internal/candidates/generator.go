// Package candidates produces raw candidate vocabulary for a scenario via an
// LLM. It implements the candidate-source side of the ranking pipeline: the
// generator asks for general, reusable single words matched to the scenario's
// domain, then parses the comma- or newline-delimited reply into a string
// slice. All cleanup beyond delimiter parsing is left to the normalizer.
package candidates

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MrWong99/lexirank/internal/observe"
	"github.com/MrWong99/lexirank/pkg/provider/llm"
)

// maxResponseTokens bounds the completion so a 500-word list fits with room
// to spare.
const maxResponseTokens = 3000

// promptTemplate asks for domain-matched general vocabulary. The negative
// examples steer the model away from scene-specific descriptions, which
// otherwise dominate the pool.
const promptTemplate = `Given this context: "%s"

Generate %d SINGLE WORDS for a VOCABULARY LIST that would help someone discuss this type of situation.

CRITICAL: Generate GENERAL, REUSABLE vocabulary - NOT specific image descriptions!

BAD (too specific to this exact scenario):
- "yacht", "five friends", "another boat", "ceiling-mounted"

GOOD (general vocabulary for this TYPE of situation):
- For BOATING: "boat", "water", "sail", "friend", "trip", "ocean", "wave", "captain"
- For CLASSROOM: "student", "teacher", "learn", "desk", "board", "question", "study"
- For HOME: "cook", "eat", "sleep", "relax", "family", "room", "comfortable"

Match vocabulary to the DOMAIN:
- Boating/water -> boat, water, sail, ocean, wave, dock, captain, crew, anchor
- School/learning -> student, teacher, study, learn, desk, board, question, test
- Work/office -> work, meeting, task, project, deadline, colleague, email
- Home -> cook, eat, sleep, relax, family, room, comfortable, clean
- Tech/coding -> code, program, debug, test, build, deploy (ONLY if context is technical)

Rules:
1. SINGLE words only (maximum 2 words for compound terms like "swimming pool")
2. GENERAL vocabulary for the situation type, not specific details
3. NO numbers or quantities ("five", "twenty" is NOT OK but "several" is)
4. NO articles or demonstratives ("another boat", "the yacht", "this person")
5. Include: basic verbs, basic nouns, common adjectives, useful descriptive words
6. NO proper nouns or brand names

Output ONLY single words, comma-separated.`

// Generator produces raw candidate word lists from an llm.Provider. Safe for
// concurrent use.
type Generator struct {
	provider llm.Provider
	metrics  *observe.Metrics
	log      *slog.Logger
}

// NewGenerator creates a Generator. A nil log falls back to slog.Default and
// nil metrics to observe.DefaultMetrics.
func NewGenerator(provider llm.Provider, metrics *observe.Metrics, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	if metrics == nil {
		metrics = observe.DefaultMetrics()
	}
	return &Generator{provider: provider, metrics: metrics, log: log}
}

// Generate asks the LLM for count candidate words matching contextText.
// Transport failures are returned as errors (there is no fallback
// vocabulary); a syntactically odd but successful reply parses down to
// whatever terms it contains, possibly none.
func (g *Generator) Generate(ctx context.Context, contextText string, count int) ([]string, error) {
	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, contextText, count)},
		},
		MaxTokens: maxResponseTokens,
	})
	if err != nil {
		g.metrics.RecordProviderRequest(ctx, g.provider.ModelID(), "llm", "error")
		return nil, fmt.Errorf("candidates: completion failed: %w", err)
	}
	g.metrics.RecordProviderRequest(ctx, g.provider.ModelID(), "llm", "ok")

	terms := Parse(resp.Content)
	g.log.Debug("candidate generation complete",
		"model", g.provider.ModelID(),
		"requested", count,
		"parsed", len(terms),
		"completion_tokens", resp.Usage.CompletionTokens)
	return terms, nil
}

// Parse splits a model reply into candidate terms. Replies wrapped in a code
// fence are unwrapped to their first content line; terms are split on commas
// and newlines, trimmed, and empty entries dropped. A reply with no usable
// terms yields an empty slice, never an error.
func Parse(response string) []string {
	text := strings.TrimSpace(response)
	if strings.HasPrefix(text, "```") {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "```") {
				text = line
				break
			}
		}
	}

	split := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	terms := make([]string, 0, len(split))
	for _, s := range split {
		s = strings.TrimSpace(s)
		if s == "" || strings.HasPrefix(s, "```") {
			continue
		}
		terms = append(terms, s)
	}
	return terms
}
