package similarity

import "math"

// Cosine computes the cosine similarity of two equal-length vectors: their
// dot product divided by the product of their L2 norms. A zero vector on
// either side yields 0 rather than NaN.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
