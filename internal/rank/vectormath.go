package rank

import "math"

// cosine returns the cosine similarity of a and b. If either vector is the
// zero vector (or empty), it returns 0 rather than NaN, so degraded
// embeddings contribute "no signal" instead of poisoning downstream math.
func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// meanVector returns the component-wise arithmetic mean of vecs. Vectors
// shorter than the first one are padded implicitly with zeros. Returns nil
// for an empty input.
func meanVector(vecs [][]float32) []float32 {
	if len(vecs) == 0 {
		return nil
	}
	dim := 0
	for _, v := range vecs {
		if len(v) > dim {
			dim = len(v)
		}
	}
	mean := make([]float32, dim)
	for _, v := range vecs {
		for i, x := range v {
			mean[i] += x
		}
	}
	inv := float32(1) / float32(len(vecs))
	for i := range mean {
		mean[i] *= inv
	}
	return mean
}

// isZeroVector reports whether v is empty or all zeros, the sentinel for
// "embedding unavailable".
func isZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
