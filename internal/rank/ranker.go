package rank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/lexirank/internal/lingua"
	"github.com/MrWong99/lexirank/internal/observe"
	"github.com/MrWong99/lexirank/pkg/provider/embeddings"
)

// ErrEmptyContext is returned by Rank when the context text is empty or
// whitespace. Callers should reject empty input before invoking the pipeline;
// this is the backstop.
var ErrEmptyContext = errors.New("rank: context text is empty")

// CandidateSource produces raw candidate vocabulary for a context. The
// returned strings are uncleaned; the normalizer handles all filtering.
//
// A failed generation is not locally recoverable (there is no fallback
// vocabulary), so errors from Generate abort the whole invocation.
type CandidateSource interface {
	Generate(ctx context.Context, contextText string, count int) ([]string, error)
}

// Ranker runs the full ranking pipeline. Construct once with [NewRanker] and
// reuse across invocations; Ranker is safe for concurrent use because each
// Rank call owns its entire intermediate state.
type Ranker struct {
	cfg         Config
	source      CandidateSource
	analyzer    lingua.Analyzer
	vectorizer  *Vectorizer
	normalizer  *Normalizer
	categorizer *Categorizer
	diversifier *Diversifier
	metrics     *observe.Metrics
	log         *slog.Logger
}

// Option configures a Ranker during construction.
type Option func(*Ranker)

// WithLogger sets the logger used for degradation warnings and pipeline
// progress. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Ranker) { r.log = log }
}

// WithMetrics sets the metrics instance. Defaults to observe.DefaultMetrics.
func WithMetrics(m *observe.Metrics) Option {
	return func(r *Ranker) { r.metrics = m }
}

// NewRanker creates a Ranker from a validated Config and its collaborators.
// Returns an error if cfg fails validation.
func NewRanker(cfg Config, source CandidateSource, embedder embeddings.Provider, analyzer lingua.Analyzer, opts ...Option) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rank: invalid config: %w", err)
	}
	r := &Ranker{
		cfg:      cfg,
		source:   source,
		analyzer: analyzer,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	if r.metrics == nil {
		r.metrics = observe.DefaultMetrics()
	}
	r.vectorizer = NewVectorizer(embedder, cfg.BatchSize, r.metrics, r.log)
	r.normalizer = NewNormalizer(analyzer, cfg.StoplistExtra)
	r.categorizer = NewCategorizer(analyzer)
	r.diversifier = NewDiversifier(cfg.MMRLambda, cfg.Quotas)
	return r, nil
}

// Rank produces up to n ranked terms for contextText. n <= 0 falls back to
// the configured target count. The result's terms are sorted descending by
// score; the result may contain fewer than n terms when the candidate pool
// shrinks below the target, down to an empty (but valid) result.
func (r *Ranker) Rank(ctx context.Context, contextText string, n int) (*Result, error) {
	if strings.TrimSpace(contextText) == "" {
		return nil, ErrEmptyContext
	}
	if n <= 0 {
		n = r.cfg.TargetCount
	}

	ctx, span := observe.StartSpan(ctx, "rank.Rank")
	defer span.End()
	start := time.Now()
	defer func() {
		r.metrics.RankDuration.Record(ctx, time.Since(start).Seconds())
	}()
	log := observe.Logger(ctx, r.log)

	// Candidate generation.
	genStart := time.Now()
	raw, err := r.source.Generate(ctx, contextText, r.cfg.CandidatePool)
	r.metrics.GenerateDuration.Record(ctx, time.Since(genStart).Seconds())
	if err != nil {
		return nil, fmt.Errorf("rank: generate candidates: %w", err)
	}
	raw = append(raw, r.analyzer.ExtractTerms(contextText)...)
	log.Debug("candidates generated", "raw", len(raw))

	// Normalization.
	terms := r.normalizer.Normalize(raw)
	log.Debug("candidates normalized", "unique", len(terms))
	if len(terms) == 0 {
		return &Result{Context: contextText, Terms: []RankedTerm{}}, nil
	}

	// Vectorization. The context embedding, the term batch, and the two
	// seed-prototype batches are independent, so they run concurrently and
	// join before signal computation.
	texts := make([]string, len(terms))
	for i, t := range terms {
		texts[i] = t.Text
	}
	var (
		ctxVec      []float32
		termVecs    [][]float32
		protoAction []float32
		protoDecor  []float32
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ctxVec, err = r.vectorizer.EmbedText(gctx, contextText)
		return err
	})
	g.Go(func() error {
		var err error
		termVecs, err = r.vectorizer.EmbedBatch(gctx, texts)
		return err
	})
	g.Go(func() error {
		vecs, err := r.vectorizer.EmbedBatch(gctx, headOf(r.cfg.ActionSeeds, r.cfg.SeedPrototypeSize))
		if err != nil {
			return err
		}
		protoAction = meanVector(vecs)
		return nil
	})
	g.Go(func() error {
		vecs, err := r.vectorizer.EmbedBatch(gctx, headOf(r.cfg.DecorSeeds, r.cfg.SeedPrototypeSize))
		if err != nil {
			return err
		}
		protoDecor = meanVector(vecs)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("rank: embed: %w", err)
	}
	for i, t := range terms {
		t.Embedding = termVecs[i]
	}

	// Signals, scores, categories.
	computeSignals(terms, ctxVec, protoAction, protoDecor)
	scoreTerms(terms, r.cfg.Weights)
	for _, t := range terms {
		t.Category = r.categorizer.Categorize(t.Text)
	}

	// Diversity selection and result assembly.
	selected := r.diversifier.Select(terms, n)
	result := &Result{
		Context: contextText,
		Terms:   make([]RankedTerm, 0, len(selected)),
	}
	for _, t := range selected {
		r.metrics.TermsSelected.Add(ctx, 1,
			metric.WithAttributes(observe.Attr("category", string(t.Category))))
		result.Terms = append(result.Terms, RankedTerm{
			Term:     t.Text,
			Score:    round3(t.Score),
			Category: t.Category,
		})
	}
	sortRankedByScore(result.Terms)

	log.Info("ranking complete",
		"context_len", len(contextText),
		"candidates", len(terms),
		"selected", len(result.Terms),
		"duration", time.Since(start))
	return result, nil
}

// round3 rounds to three decimal places for presentation.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func headOf(words []string, k int) []string {
	if len(words) > k {
		return words[:k]
	}
	return words
}

// sortRankedByScore orders result terms descending by score, preserving
// selection order for equal scores.
func sortRankedByScore(terms []RankedTerm) {
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Score > terms[j].Score
	})
}
