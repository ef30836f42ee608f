// Package ranking orders interview questions by relevance to a resume and
// assigns each a computed difficulty label.
package ranking

import (
	"math"

	"github.com/jonathan/interview-prep/internal/parsing"
)

// termVector is a sparse TF-IDF weight vector over the corpus vocabulary.
type termVector map[string]float64

// buildVectors computes TF-IDF vectors for every document in the corpus.
// The vector space is scoped to this corpus only; callers must not reuse
// vectors across different corpora. Pure function of its input.
func buildVectors(corpus []string) []termVector {
	tokenized := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		tokens := contentTokens(doc)
		tokenized[i] = tokens

		inDoc := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			inDoc[t] = struct{}{}
		}
		for t := range inDoc {
			df[t]++
		}
	}

	numDocs := float64(len(corpus))
	vectors := make([]termVector, len(corpus))
	for i, tokens := range tokenized {
		vec := make(termVector, len(tokens))
		if len(tokens) == 0 {
			vectors[i] = vec
			continue
		}
		counts := make(map[string]int, len(tokens))
		for _, t := range tokens {
			counts[t]++
		}
		docLen := float64(len(tokens))
		for term, count := range counts {
			tf := float64(count) / docLen
			idf := math.Log(1 + numDocs/float64(1+df[term]))
			vec[term] = tf * idf
		}
		vectors[i] = vec
	}
	return vectors
}

// cosineSimilarity is the normalized dot product of two term vectors. A
// zero-norm vector (empty document, no shared vocabulary) yields 0 rather
// than a division-by-zero.
func cosineSimilarity(a, b termVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// contentTokens tokenizes a document and drops stop words and short tokens.
func contentTokens(doc string) []string {
	raw := parsing.Tokenize(doc)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) > 2 && !stopWords[t] {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "has": true,
	"had": true, "was": true, "one": true, "our": true, "out": true,
	"with": true, "that": true, "this": true, "from": true, "have": true,
	"been": true, "will": true, "they": true, "when": true, "what": true,
	"your": true, "which": true, "their": true, "about": true, "would": true,
	"there": true, "should": true, "each": true, "make": true, "like": true,
	"than": true, "them": true, "then": true, "into": true, "some": true,
	"how": true, "why": true, "who": true, "where": true, "does": true,
	"did": true, "its": true, "also": true, "such": true, "these": true,
	"were": true, "more": true, "most": true, "other": true, "using": true,
}
