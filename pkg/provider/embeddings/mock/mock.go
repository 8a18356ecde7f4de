// Package mock provides a test double for the embeddings.Provider interface.
//
// Use Provider to return pre-canned embedding vectors without a live model and
// to verify which texts were submitted for embedding. Per-text vectors can be
// scripted through VectorFor, which is what the ranking tests use to construct
// controlled similarity geometries.
//
// Example:
//
//	p := &mock.Provider{
//	    DimensionsValue: 3,
//	    ModelIDValue:    "test-embed-v1",
//	    VectorFor: map[string][]float32{
//	        "swim": {1, 0, 0},
//	        "sand": {0.9, 0.1, 0},
//	    },
//	}
//	vecs, _ := p.EmbedBatch(ctx, []string{"swim", "sand"})
package mock

import (
	"context"
	"sync"

	"github.com/MrWong99/lexirank/pkg/provider/embeddings"
)

// EmbedCall records a single invocation of Embed.
type EmbedCall struct {
	// Ctx is the context passed to Embed.
	Ctx context.Context
	// Text is the string passed to Embed.
	Text string
}

// EmbedBatchCall records a single invocation of EmbedBatch.
type EmbedBatchCall struct {
	// Ctx is the context passed to EmbedBatch.
	Ctx context.Context
	// Texts is a copy of the string slice passed to EmbedBatch.
	Texts []string
}

// Provider is a mock implementation of embeddings.Provider.
type Provider struct {
	mu sync.Mutex

	// --- Configurable responses ---

	// VectorFor maps input text to the vector returned for it, by both Embed
	// and EmbedBatch. Texts absent from the map fall back to EmbedResult (for
	// Embed) or a zero-length vector (for EmbedBatch).
	VectorFor map[string][]float32

	// EmbedResult is returned by Embed for texts not covered by VectorFor.
	EmbedResult []float32

	// EmbedErr, if non-nil, is returned as the error from Embed.
	EmbedErr error

	// EmbedBatchErr, if non-nil, is returned as the error from EmbedBatch.
	// Use this to exercise the zero-vector degradation path.
	EmbedBatchErr error

	// DimensionsValue is returned by Dimensions.
	DimensionsValue int

	// ModelIDValue is returned by ModelID.
	ModelIDValue string

	// --- Call records ---

	// EmbedCalls records every call to Embed in order.
	EmbedCalls []EmbedCall

	// EmbedBatchCalls records every call to EmbedBatch in order.
	EmbedBatchCalls []EmbedBatchCall
}

// Embed records the call and returns the scripted vector for text.
func (p *Provider) Embed(ctx context.Context, text string) ([]float32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.EmbedCalls = append(p.EmbedCalls, EmbedCall{Ctx: ctx, Text: text})
	if p.EmbedErr != nil {
		return nil, p.EmbedErr
	}
	if v, ok := p.VectorFor[text]; ok {
		return v, nil
	}
	return p.EmbedResult, nil
}

// EmbedBatch records the call and returns one scripted vector per input text,
// preserving input order.
func (p *Provider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]string, len(texts))
	copy(cp, texts)
	p.EmbedBatchCalls = append(p.EmbedBatchCalls, EmbedBatchCall{Ctx: ctx, Texts: cp})
	if p.EmbedBatchErr != nil {
		return nil, p.EmbedBatchErr
	}
	result := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := p.VectorFor[t]; ok {
			result[i] = v
		} else if p.EmbedResult != nil {
			result[i] = p.EmbedResult
		} else {
			result[i] = make([]float32, p.DimensionsValue)
		}
	}
	return result, nil
}

// Dimensions returns DimensionsValue.
func (p *Provider) Dimensions() int {
	return p.DimensionsValue
}

// ModelID returns ModelIDValue.
func (p *Provider) ModelID() string {
	return p.ModelIDValue
}

// Reset clears all recorded calls. Thread-safe.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.EmbedCalls = nil
	p.EmbedBatchCalls = nil
}

// Ensure Provider implements embeddings.Provider at compile time.
var _ embeddings.Provider = (*Provider)(nil)
