// Package sentences builds short practice sentences from a ranked word list.
// The LLM is instructed to keep the given content words in their exact order
// and may only add function words and inflection, so the sentences exercise
// the vocabulary rather than replace it.
package sentences

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MrWong99/lexirank/internal/observe"
	"github.com/MrWong99/lexirank/pkg/provider/llm"
)

// ErrNoWords is returned by Generate when the word list is empty.
var ErrNoWords = errors.New("sentences: word list is empty")

// maxResponseTokens bounds the completion; 15-20 short sentences fit easily.
const maxResponseTokens = 2500

const promptTemplate = `Create 15-20 different short, simple sentences using ONLY these words IN THIS EXACT ORDER: %s

CRITICAL RULES:
- Use ONLY the words provided - DO NOT add any other content words
- You may ONLY add function words (the, a, an, is, are, was, were, to, at, in, on, etc.)
- You may conjugate verbs as necessary (add -s, -ed, -ing)
- You may add plural markers (-s, -es)
- Keep the exact order of the content words given
- Make the sentences grammatically correct
- Be natural and simple
- Vary the sentence structures and function words used
- Show different ways to express the same idea with the given words

Return ONLY the sentences, one per line. No numbering, no extra text.`

// Generator composes practice sentences from an llm.Provider. Safe for
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

// Generate builds sentences from words, preserving word order. Words with a
// leading annotation token ("🌊 ocean") are stripped of that first token
// before prompting; multi-word terms keep their remaining words. Returns the
// non-empty reply lines.
func (g *Generator) Generate(ctx context.Context, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	clean := make([]string, len(words))
	for i, w := range words {
		if idx := strings.Index(w, " "); idx >= 0 {
			clean[i] = w[idx+1:]
		} else {
			clean[i] = w
		}
	}

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, strings.Join(clean, ", "))},
		},
		MaxTokens: maxResponseTokens,
	})
	if err != nil {
		g.metrics.RecordProviderRequest(ctx, g.provider.ModelID(), "llm", "error")
		return nil, fmt.Errorf("sentences: completion failed: %w", err)
	}
	g.metrics.RecordProviderRequest(ctx, g.provider.ModelID(), "llm", "ok")

	var out []string
	for _, line := range strings.Split(resp.Content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	g.log.Debug("sentence generation complete",
		"model", g.provider.ModelID(),
		"words", len(words),
		"sentences", len(out))
	return out, nil
}
