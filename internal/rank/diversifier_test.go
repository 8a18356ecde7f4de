package rank

import (
	"fmt"
	"reflect"
	"testing"
)

// makeTerm builds a scored, categorized term with a unit-direction embedding.
func makeTerm(text string, score float64, cat Category, embedding []float32) *Term {
	return &Term{
		Text:      text,
		Lemma:     text,
		Score:     score,
		Category:  cat,
		Embedding: embedding,
		Signals:   map[string]float64{},
	}
}

func TestSelect_NoRepeatAndBounded(t *testing.T) {
	t.Parallel()

	var pool []*Term
	for i := 0; i < 40; i++ {
		pool = append(pool, makeTerm(
			fmt.Sprintf("term%02d", i),
			float64(40-i)/40,
			CategoryConcept,
			[]float32{float32(i), 1, 0},
		))
	}

	d := NewDiversifier(0.7, map[Category]int{CategoryConcept: 10})
	got := d.Select(pool, 15)

	if len(got) > 15 {
		t.Fatalf("selected %d terms, want at most 15", len(got))
	}
	seen := make(map[string]struct{})
	for _, term := range got {
		if _, ok := seen[term.Lemma]; ok {
			t.Errorf("term %q selected twice", term.Text)
		}
		seen[term.Lemma] = struct{}{}
	}
}

func TestSelect_QuotaNonExplosion(t *testing.T) {
	t.Parallel()

	// Every bucket is overfull; the final list must still respect n.
	var pool []*Term
	for i, cat := range Categories() {
		for j := 0; j < 30; j++ {
			pool = append(pool, makeTerm(
				fmt.Sprintf("%d-%02d", i, j),
				float64(30-j)/30,
				cat,
				[]float32{float32(i), float32(j), 1},
			))
		}
	}

	d := NewDiversifier(0.7, DefaultConfig().Quotas)
	got := d.Select(pool, 20)
	if len(got) > 20 {
		t.Errorf("selected %d terms, want at most 20", len(got))
	}
}

func TestSelect_Backfill(t *testing.T) {
	t.Parallel()

	// Quotas cover only Action/Task; remaining slots must be backfilled with
	// the highest-scoring terms from other categories.
	pool := []*Term{
		makeTerm("run", 0.9, CategoryAction, []float32{1, 0}),
		makeTerm("ocean", 0.8, CategoryConcept, []float32{0, 1}),
		makeTerm("sand", 0.6, CategoryConcept, []float32{0.5, 0.5}),
		makeTerm("meeting", 0.4, CategoryEvent, []float32{0.2, 0.8}),
	}

	d := NewDiversifier(0.7, map[Category]int{CategoryAction: 1})
	got := d.Select(pool, 3)

	if len(got) != 3 {
		t.Fatalf("selected %d terms, want 3", len(got))
	}
	if got[0].Text != "run" {
		t.Errorf("quota phase should pick run first, got %q", got[0].Text)
	}
	if got[1].Text != "ocean" || got[2].Text != "sand" {
		t.Errorf("backfill should add ocean then sand, got %q, %q", got[1].Text, got[2].Text)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	t.Parallel()

	var pool []*Term
	for i := 0; i < 20; i++ {
		// Several terms share the same score so tie-break order matters.
		pool = append(pool, makeTerm(
			fmt.Sprintf("w%02d", i),
			float64(i%4)/4,
			CategoryConcept,
			[]float32{float32(i % 3), float32(i % 5), 1},
		))
	}

	d := NewDiversifier(0.7, map[Category]int{CategoryConcept: 8})

	first := textsOf(d.Select(pool, 10))
	for run := 0; run < 5; run++ {
		again := textsOf(d.Select(pool, 10))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged: %v vs %v", run, first, again)
		}
	}
}

func TestSelect_TieBreakFirstSeen(t *testing.T) {
	t.Parallel()

	// Identical scores and identical embeddings: the seed pick must be the
	// first term in pool order.
	pool := []*Term{
		makeTerm("alpha", 0.5, CategoryConcept, []float32{1, 0}),
		makeTerm("beta", 0.5, CategoryConcept, []float32{1, 0}),
		makeTerm("gamma", 0.5, CategoryConcept, []float32{1, 0}),
	}

	d := NewDiversifier(0.7, map[Category]int{CategoryConcept: 2})
	got := d.Select(pool, 2)

	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(textsOf(got), want) {
		t.Errorf("tie-break selection = %v, want %v", textsOf(got), want)
	}
}

func TestSelect_MissingEmbeddingNotPenalized(t *testing.T) {
	t.Parallel()

	// A term without an embedding has similarity 0 to everything and should
	// still be selectable on score alone.
	pool := []*Term{
		makeTerm("anchor", 0.9, CategoryConcept, []float32{1, 0}),
		makeTerm("ghost", 0.8, CategoryConcept, nil),
		makeTerm("echo", 0.7, CategoryConcept, []float32{1, 0}),
	}

	d := NewDiversifier(0.7, map[Category]int{CategoryConcept: 3})
	got := textsOf(d.Select(pool, 3))

	found := false
	for _, text := range got {
		if text == "ghost" {
			found = true
		}
	}
	if !found {
		t.Errorf("term without embedding missing from selection %v", got)
	}
}

func TestSelect_EmptyPool(t *testing.T) {
	t.Parallel()

	d := NewDiversifier(0.7, DefaultConfig().Quotas)
	if got := d.Select(nil, 10); len(got) != 0 {
		t.Errorf("empty pool should select nothing, got %v", textsOf(got))
	}
	if got := d.Select([]*Term{makeTerm("a1", 1, CategoryConcept, nil)}, 0); len(got) != 0 {
		t.Errorf("n=0 should select nothing, got %v", textsOf(got))
	}
}
