package ranking

import (
	"sort"

	"github.com/jonathan/interview-prep/internal/catalog"
	"github.com/jonathan/interview-prep/internal/types"
)

// Ranker orders catalog questions for a role by TF-IDF cosine similarity to
// the resume text. The catalog is read-only, so a Ranker is safe for
// concurrent use.
type Ranker struct {
	catalog *catalog.Catalog
}

// NewRanker creates a ranker over the given question catalog.
func NewRanker(c *catalog.Catalog) *Ranker {
	return &Ranker{catalog: c}
}

// Rank returns the topN questions for the role (and category, when not
// empty), ordered by descending relevance to the resume. The TF-IDF vector
// space is built fresh for each call from the resume plus the filtered
// questions; ties keep catalog order, ranks are 1-based, and fewer than topN
// candidates is not an error. An empty or vocabulary-disjoint resume yields
// relevance 0 for every candidate.
func (r *Ranker) Rank(resumeText, role string, category types.Category, topN int) []types.RankedQuestion {
	if topN <= 0 {
		return []types.RankedQuestion{}
	}

	candidates := r.catalog.QuestionsFor(role, category)
	if len(candidates) == 0 {
		return []types.RankedQuestion{}
	}

	// Corpus: resume first, then every candidate in catalog order.
	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, resumeText)
	for _, q := range candidates {
		corpus = append(corpus, q.Text)
	}
	vectors := buildVectors(corpus)
	resumeVec := vectors[0]

	ranked := make([]types.RankedQuestion, 0, len(candidates))
	for i, q := range candidates {
		ranked = append(ranked, types.RankedQuestion{
			Question:   q,
			Relevance:  cosineSimilarity(resumeVec, vectors[i+1]),
			Difficulty: ClassifyDifficulty(q.Text),
		})
	}

	// Stable sort keeps catalog order for equal scores, so identical inputs
	// always produce the identical sequence.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
