package vectorstore

import "math"

// CosineSimilarity returns the cosine of the angle between a and b,
// or 0 when either vector is zero or the dimensions differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

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

// Scored pairs a record with its similarity to a query vector.
type Scored struct {
	Record Record
	Score  float64
}

// TopK returns the k records most similar to the query embedding,
// highest score first.
func TopK(records []Record, query []float64, k int) []Scored {
	scored := make([]Scored, 0, len(records))
	for _, r := range records {
		scored = append(scored, Scored{Record: r, Score: CosineSimilarity(r.Embedding, query)})
	}

	// Insertion sort is fine at corpus scale; selection happens per query.
	for i := 1; i < len(scored); i++ {
		for j := i; j > 0 && scored[j].Score > scored[j-1].Score; j-- {
			scored[j], scored[j-1] = scored[j-1], scored[j]
		}
	}

	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
