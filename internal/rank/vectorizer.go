package rank

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/MrWong99/lexirank/internal/observe"
	"github.com/MrWong99/lexirank/pkg/provider/embeddings"
)

// Vectorizer maps texts to embedding vectors through an embeddings.Provider,
// with batching and graceful degradation: a failed provider call yields zero
// vectors instead of an error, so one bad batch cannot sink an invocation.
// Only context cancellation aborts.
type Vectorizer struct {
	provider  embeddings.Provider
	batchSize int
	metrics   *observe.Metrics
	log       *slog.Logger
}

// NewVectorizer wraps provider with batching (batchSize texts per request)
// and degradation handling. metrics and log may not be nil; use
// observe.DefaultMetrics and slog.Default if nothing better is available.
func NewVectorizer(provider embeddings.Provider, batchSize int, metrics *observe.Metrics, log *slog.Logger) *Vectorizer {
	return &Vectorizer{
		provider:  provider,
		batchSize: batchSize,
		metrics:   metrics,
		log:       log,
	}
}

// EmbedText embeds a single text. Text whose stripped length is under 2
// short-circuits to a zero vector without calling the provider. A provider
// failure also degrades to a zero vector; the only returned error is a
// cancelled context.
func (v *Vectorizer) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if len(strings.TrimSpace(text)) < 2 {
		return v.zeroVector(), nil
	}

	start := time.Now()
	vec, err := v.provider.Embed(ctx, text)
	v.metrics.EmbedDuration.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		v.metrics.RecordProviderRequest(ctx, v.provider.ModelID(), "embeddings", "error")
		v.metrics.EmbeddingDegradations.Add(ctx, 1)
		v.log.Warn("embedding degraded to zero vector",
			"model", v.provider.ModelID(),
			"error", err)
		return v.zeroVector(), nil
	}
	v.metrics.RecordProviderRequest(ctx, v.provider.ModelID(), "embeddings", "ok")
	return vec, nil
}

// EmbedBatch embeds texts in order, splitting the input into chunks of the
// configured batch size. A failed chunk is replaced entirely by zero vectors
// and logged as a degradation; the output always has len(texts) entries with
// the i-th vector belonging to texts[i]. The only returned error is a
// cancelled context.
func (v *Vectorizer) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))

	for i := 0; i < len(texts); i += v.batchSize {
		end := i + v.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunk := texts[i:end]

		start := time.Now()
		vecs, err := v.provider.EmbedBatch(ctx, chunk)
		v.metrics.EmbedDuration.Record(ctx, time.Since(start).Seconds())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			v.metrics.RecordProviderRequest(ctx, v.provider.ModelID(), "embeddings", "error")
			v.metrics.EmbeddingDegradations.Add(ctx, 1)
			v.log.Warn("embedding batch degraded to zero vectors",
				"model", v.provider.ModelID(),
				"batch_start", i,
				"batch_size", len(chunk),
				"error", err)
			for range chunk {
				out = append(out, v.zeroVector())
			}
			continue
		}
		v.metrics.RecordProviderRequest(ctx, v.provider.ModelID(), "embeddings", "ok")
		out = append(out, vecs...)
	}
	return out, nil
}

func (v *Vectorizer) zeroVector() []float32 {
	return make([]float32, v.provider.Dimensions())
}
