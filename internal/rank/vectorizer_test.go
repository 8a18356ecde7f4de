package rank

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/MrWong99/lexirank/internal/observe"
	embedmock "github.com/MrWong99/lexirank/pkg/provider/embeddings/mock"
)

func newTestVectorizer(t *testing.T, p *embedmock.Provider, batchSize int) *Vectorizer {
	t.Helper()
	return NewVectorizer(p, batchSize, observe.DefaultMetrics(), slog.Default())
}

func TestEmbedText_ShortCircuitsTinyInput(t *testing.T) {
	t.Parallel()
	p := &embedmock.Provider{DimensionsValue: 4, ModelIDValue: "m"}
	v := newTestVectorizer(t, p, 10)

	for _, text := range []string{"", " ", "x "} {
		vec, err := v.EmbedText(context.Background(), text)
		if err != nil {
			t.Fatalf("EmbedText(%q): %v", text, err)
		}
		if !isZeroVector(vec) || len(vec) != 4 {
			t.Errorf("EmbedText(%q) = %v, want 4-dim zero vector", text, vec)
		}
	}
	if len(p.EmbedCalls) != 0 {
		t.Errorf("provider called %d times for tiny input", len(p.EmbedCalls))
	}
}

func TestEmbedBatch_PreservesOrderAcrossChunks(t *testing.T) {
	t.Parallel()
	p := &embedmock.Provider{
		DimensionsValue: 2,
		ModelIDValue:    "m",
		VectorFor: map[string][]float32{
			"a": {1, 0}, "b": {2, 0}, "c": {3, 0}, "d": {4, 0}, "e": {5, 0},
		},
	}
	v := newTestVectorizer(t, p, 2)

	vecs, err := v.EmbedBatch(context.Background(), []string{"a", "b", "c", "d", "e"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if len(vecs) != 5 {
		t.Fatalf("got %d vectors, want 5", len(vecs))
	}
	for i, want := range []float32{1, 2, 3, 4, 5} {
		if vecs[i][0] != want {
			t.Errorf("vecs[%d][0] = %v, want %v", i, vecs[i][0], want)
		}
	}
	if len(p.EmbedBatchCalls) != 3 {
		t.Errorf("expected 3 chunked provider calls, got %d", len(p.EmbedBatchCalls))
	}
}

func TestEmbedBatch_DegradesFailedChunk(t *testing.T) {
	t.Parallel()
	p := &embedmock.Provider{
		DimensionsValue: 3,
		ModelIDValue:    "m",
		EmbedBatchErr:   errors.New("boom"),
	}
	v := newTestVectorizer(t, p, 2)

	vecs, err := v.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("EmbedBatch should degrade, not fail: %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("got %d vectors, want 3", len(vecs))
	}
	for i, vec := range vecs {
		if !isZeroVector(vec) || len(vec) != 3 {
			t.Errorf("vecs[%d] = %v, want 3-dim zero vector", i, vec)
		}
	}
}

func TestEmbedBatch_CancelledContextAborts(t *testing.T) {
	t.Parallel()
	p := &embedmock.Provider{
		DimensionsValue: 3,
		ModelIDValue:    "m",
		EmbedBatchErr:   context.Canceled,
	}
	v := newTestVectorizer(t, p, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.EmbedBatch(ctx, []string{"a"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
