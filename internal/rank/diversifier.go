package rank

import "sort"

// Diversifier selects the final bounded term set via quota-constrained MMR
// (maximal marginal relevance): per-category buckets are filled up to their
// quota by a greedy selection that trades relevance against similarity to
// already-selected terms, and any remaining slots are backfilled by pure
// score across categories.
//
// Safe for concurrent use; all fields are immutable after construction.
type Diversifier struct {
	lambda float64
	quotas map[Category]int
}

// NewDiversifier creates a Diversifier with the given relevance/redundancy
// trade-off lambda (in (0,1]) and per-category quotas.
func NewDiversifier(lambda float64, quotas map[Category]int) *Diversifier {
	q := make(map[Category]int, len(quotas))
	for k, v := range quotas {
		q[k] = v
	}
	return &Diversifier{lambda: lambda, quotas: q}
}

// Select picks at most n terms from the pool. Terms lacking a score are
// treated as score 0; terms lacking an embedding cannot be penalized for
// redundancy and count as similarity 0 to everything selected. The returned
// slice preserves selection order; callers re-sort by score for presentation.
func (d *Diversifier) Select(terms []*Term, n int) []*Term {
	if n <= 0 || len(terms) == 0 {
		return nil
	}

	byCategory := make(map[Category][]*Term)
	for _, t := range terms {
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	for _, bucket := range byCategory {
		sortByScoreStable(bucket)
	}

	var selected []*Term
	chosen := make(map[*Term]struct{})

	// Quotas are applied in the fixed category order so selection is
	// deterministic for a given pool.
	for _, cat := range Categories() {
		quota := d.quotas[cat]
		bucket := byCategory[cat]
		if quota == 0 || len(bucket) == 0 {
			continue
		}
		// Over-fetch 2x the quota so the diversity step has room to deviate
		// from pure score order.
		pool := bucket
		if len(pool) > quota*2 {
			pool = pool[:quota*2]
		}
		target := quota
		if len(pool) < target {
			target = len(pool)
		}
		for _, t := range d.mmr(pool, target) {
			selected = append(selected, t)
			chosen[t] = struct{}{}
		}
	}

	// Backfill remaining slots with the highest-scoring unselected terms,
	// ignoring category.
	if len(selected) < n {
		remaining := make([]*Term, 0, len(terms))
		for _, t := range terms {
			if _, ok := chosen[t]; !ok {
				remaining = append(remaining, t)
			}
		}
		sortByScoreStable(remaining)
		for _, t := range remaining {
			if len(selected) >= n {
				break
			}
			selected = append(selected, t)
		}
	}

	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

// mmr runs the greedy maximal-marginal-relevance loop over pool, selecting
// up to n terms. The highest-scoring term seeds the selection; each further
// round picks the term maximizing
//
//	lambda*score - (1-lambda)*maxSimilarityToSelected
//
// Ties break to the first candidate encountered, which is the stable
// score-descending pool order, so the selection is deterministic.
func (d *Diversifier) mmr(pool []*Term, n int) []*Term {
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	remaining := make([]*Term, len(pool))
	copy(remaining, pool)
	sortByScoreStable(remaining)

	selected := []*Term{remaining[0]}
	remaining = remaining[1:]

	for len(selected) < n && len(remaining) > 0 {
		bestIdx := -1
		bestMMR := 0.0
		for i, t := range remaining {
			maxSim := 0.0
			for _, s := range selected {
				if sim := cosine(t.Embedding, s.Embedding); sim > maxSim {
					maxSim = sim
				}
			}
			mmr := d.lambda*t.Score - (1-d.lambda)*maxSim
			if bestIdx == -1 || mmr > bestMMR {
				bestIdx = i
				bestMMR = mmr
			}
		}
		if bestIdx == -1 {
			break
		}
		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return selected
}

// sortByScoreStable sorts terms descending by score in place, preserving the
// incoming order for equal scores.
func sortByScoreStable(terms []*Term) {
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Score > terms[j].Score
	})
}
