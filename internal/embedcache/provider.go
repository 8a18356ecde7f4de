package embedcache

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/MrWong99/lexirank/internal/observe"
	"github.com/MrWong99/lexirank/pkg/provider/embeddings"
)

// CachingProvider wraps an embeddings.Provider with a read-through cache.
// Batch lookups hit the cache first; only miss texts go to the backing
// provider, and freshly computed vectors are written back. Zero vectors
// (degraded embeddings) are never cached so a transient provider outage does
// not poison future lookups.
//
// Cache failures fall back to the backing provider and are logged as
// warnings; the wrapper never introduces errors the backing provider would
// not have produced itself.
type CachingProvider struct {
	backing embeddings.Provider
	cache   Cache
	metrics *observe.Metrics
	log     *slog.Logger
}

var _ embeddings.Provider = (*CachingProvider)(nil)

// NewCachingProvider wraps backing with cache. A nil log falls back to
// slog.Default and nil metrics to observe.DefaultMetrics.
func NewCachingProvider(backing embeddings.Provider, cache Cache, metrics *observe.Metrics, log *slog.Logger) *CachingProvider {
	if log == nil {
		log = slog.Default()
	}
	if metrics == nil {
		metrics = observe.DefaultMetrics()
	}
	return &CachingProvider{backing: backing, cache: cache, metrics: metrics, log: log}
}

// Embed implements embeddings.Provider via the batch path.
func (p *CachingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch implements embeddings.Provider. Output order matches input
// order regardless of which entries were cache hits.
func (p *CachingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	cached, err := p.cache.GetBatch(ctx, p.backing.ModelID(), texts)
	if err != nil {
		p.log.Warn("embedding cache lookup failed; falling through to provider", "error", err)
		cached = nil
	}

	var misses []string
	for _, t := range texts {
		if _, ok := cached[t]; !ok {
			misses = append(misses, t)
		}
	}
	p.recordLookups(ctx, "hit", len(texts)-len(misses))
	p.recordLookups(ctx, "miss", len(misses))

	fresh := make(map[string][]float32, len(misses))
	if len(misses) > 0 {
		vecs, err := p.backing.EmbedBatch(ctx, misses)
		if err != nil {
			return nil, err
		}
		for i, t := range misses {
			fresh[t] = vecs[i]
		}
		p.writeBack(ctx, fresh)
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := cached[t]; ok {
			out[i] = v
		} else {
			out[i] = fresh[t]
		}
	}
	return out, nil
}

// Dimensions implements embeddings.Provider.
func (p *CachingProvider) Dimensions() int { return p.backing.Dimensions() }

// ModelID implements embeddings.Provider.
func (p *CachingProvider) ModelID() string { return p.backing.ModelID() }

// writeBack stores non-degraded vectors in the cache, logging failures.
func (p *CachingProvider) writeBack(ctx context.Context, vectors map[string][]float32) {
	store := make(map[string][]float32, len(vectors))
	for text, vec := range vectors {
		if !isZero(vec) {
			store[text] = vec
		}
	}
	if len(store) == 0 {
		return
	}
	if err := p.cache.PutBatch(ctx, p.backing.ModelID(), store); err != nil {
		p.log.Warn("embedding cache write-back failed", "entries", len(store), "error", err)
	}
}

func (p *CachingProvider) recordLookups(ctx context.Context, status string, n int) {
	if n <= 0 {
		return
	}
	p.metrics.CacheLookups.Add(ctx, int64(n),
		metric.WithAttributes(observe.Attr("status", status)))
}

func isZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
