package matching

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

// tfidfVectorize builds l2-normalized TF-IDF vectors over a small document
// corpus. Terms are unigrams and bigrams of the stop-word-filtered token
// stream, with smoothed inverse document frequency. Documents that produce
// no terms yield empty vectors.
func tfidfVectorize(docs []string) []map[string]float64 {
	termCounts := make([]map[string]float64, len(docs))
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts := make(map[string]float64)
		for _, term := range ngrams(doc) {
			counts[term]++
		}
		for term := range counts {
			docFreq[term]++
		}
		termCounts[i] = counts
	}

	n := float64(len(docs))
	vectors := make([]map[string]float64, len(docs))
	for i, counts := range termCounts {
		vec := make(map[string]float64, len(counts))
		var norm float64
		for term, tf := range counts {
			idf := math.Log((1+n)/(1+float64(docFreq[term]))) + 1
			w := tf * idf
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term, w := range vec {
				vec[term] = w / norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// ngrams returns the unigrams and bigrams of the tokenized text.
func ngrams(text string) []string {
	tokens := parsing.Tokenize(text)
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// cosineSimilarity computes the cosine of the angle between two sparse
// vectors. For l2-normalized vectors this is simply the dot product.
// Either vector being empty yields 0.
func cosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate over the smaller vector
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	return clamp01(dot)
}

// clamp01 clamps a score to the [0, 1] range.
func clamp01(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
