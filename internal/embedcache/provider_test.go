package embedcache

import (
	"context"
	"errors"
	"sync"
	"testing"

	embedmock "github.com/MrWong99/lexirank/pkg/provider/embeddings/mock"
)

// memCache is an in-memory Cache for unit tests.
type memCache struct {
	mu      sync.Mutex
	data    map[string]map[string][]float32
	getErr  error
	putErr  error
	getMiss bool // force every lookup to miss
}

func newMemCache() *memCache {
	return &memCache{data: map[string]map[string][]float32{}}
}

func (c *memCache) GetBatch(_ context.Context, model string, texts []string) (map[string][]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := make(map[string][]float32)
	if c.getMiss {
		return out, nil
	}
	for _, t := range texts {
		if v, ok := c.data[model][t]; ok {
			out[t] = v
		}
	}
	return out, nil
}

func (c *memCache) PutBatch(_ context.Context, model string, vectors map[string][]float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	if c.data[model] == nil {
		c.data[model] = map[string][]float32{}
	}
	for t, v := range vectors {
		if _, ok := c.data[model][t]; !ok {
			c.data[model][t] = v
		}
	}
	return nil
}

func TestEmbedBatch_HitsSkipProvider(t *testing.T) {
	t.Parallel()
	cache := newMemCache()
	cache.data["m1"] = map[string][]float32{
		"swim": {1, 0},
		"sand": {0, 1},
	}
	backing := &embedmock.Provider{DimensionsValue: 2, ModelIDValue: "m1"}
	p := NewCachingProvider(backing, cache, nil, nil)

	vecs, err := p.EmbedBatch(context.Background(), []string{"swim", "sand"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if vecs[0][0] != 1 || vecs[1][1] != 1 {
		t.Errorf("unexpected vectors %v", vecs)
	}
	if len(backing.EmbedBatchCalls) != 0 {
		t.Errorf("backing provider called %d times for full cache hit", len(backing.EmbedBatchCalls))
	}
}

func TestEmbedBatch_MissesGoToProviderAndWriteBack(t *testing.T) {
	t.Parallel()
	cache := newMemCache()
	cache.data["m1"] = map[string][]float32{"swim": {1, 0}}
	backing := &embedmock.Provider{
		DimensionsValue: 2,
		ModelIDValue:    "m1",
		VectorFor:       map[string][]float32{"ocean": {0.5, 0.5}},
	}
	p := NewCachingProvider(backing, cache, nil, nil)

	vecs, err := p.EmbedBatch(context.Background(), []string{"swim", "ocean"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if vecs[0][0] != 1 {
		t.Errorf("cached vector lost: %v", vecs[0])
	}
	if vecs[1][0] != 0.5 {
		t.Errorf("fresh vector wrong: %v", vecs[1])
	}

	// Only the miss went to the provider.
	if len(backing.EmbedBatchCalls) != 1 {
		t.Fatalf("backing called %d times, want 1", len(backing.EmbedBatchCalls))
	}
	if got := backing.EmbedBatchCalls[0].Texts; len(got) != 1 || got[0] != "ocean" {
		t.Errorf("backing received %v, want [ocean]", got)
	}

	// The fresh vector was written back.
	if _, ok := cache.data["m1"]["ocean"]; !ok {
		t.Error("fresh vector missing from cache")
	}
}

func TestEmbedBatch_ZeroVectorsNotCached(t *testing.T) {
	t.Parallel()
	cache := newMemCache()
	backing := &embedmock.Provider{DimensionsValue: 3, ModelIDValue: "m1"}
	p := NewCachingProvider(backing, cache, nil, nil)

	// Mock returns zero vectors for unscripted texts.
	if _, err := p.EmbedBatch(context.Background(), []string{"ghost"}); err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if _, ok := cache.data["m1"]["ghost"]; ok {
		t.Error("zero vector must not be cached")
	}
}

func TestEmbedBatch_CacheFailureFallsThrough(t *testing.T) {
	t.Parallel()
	cache := newMemCache()
	cache.getErr = errors.New("connection refused")
	backing := &embedmock.Provider{
		DimensionsValue: 2,
		ModelIDValue:    "m1",
		VectorFor:       map[string][]float32{"swim": {1, 0}},
	}
	p := NewCachingProvider(backing, cache, nil, nil)

	vecs, err := p.EmbedBatch(context.Background(), []string{"swim"})
	if err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
	if vecs[0][0] != 1 {
		t.Errorf("expected provider vector, got %v", vecs[0])
	}
}

func TestEmbedBatch_ProviderErrorSurfaces(t *testing.T) {
	t.Parallel()
	cache := newMemCache()
	wantErr := errors.New("quota exceeded")
	backing := &embedmock.Provider{DimensionsValue: 2, ModelIDValue: "m1", EmbedBatchErr: wantErr}
	p := NewCachingProvider(backing, cache, nil, nil)

	if _, err := p.EmbedBatch(context.Background(), []string{"swim"}); !errors.Is(err, wantErr) {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestEmbed_UsesBatchPath(t *testing.T) {
	t.Parallel()
	cache := newMemCache()
	backing := &embedmock.Provider{
		DimensionsValue: 2,
		ModelIDValue:    "m1",
		VectorFor:       map[string][]float32{"swim": {1, 0}},
	}
	p := NewCachingProvider(backing, cache, nil, nil)

	vec, err := p.Embed(context.Background(), "swim")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if vec[0] != 1 {
		t.Errorf("vec = %v", vec)
	}
	// Second call is served from cache.
	if _, err := p.Embed(context.Background(), "swim"); err != nil {
		t.Fatalf("Embed(cached): %v", err)
	}
	if len(backing.EmbedBatchCalls) != 1 {
		t.Errorf("backing called %d times, want 1", len(backing.EmbedBatchCalls))
	}
}
