// Package analyzer orchestrates one analysis request: skill extraction, role
// matching, and question ranking over the read-only catalogs.
package analyzer

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-prep/internal/catalog"
	"github.com/jonathan/interview-prep/internal/extraction"
	"github.com/jonathan/interview-prep/internal/matching"
	"github.com/jonathan/interview-prep/internal/ranking"
	"github.com/jonathan/interview-prep/internal/types"
)

// DefaultTopN is the per-category question limit when the caller does not
// specify one.
const DefaultTopN = 10

// Recommendation score bands.
const (
	lowMatchThreshold      = 50.0
	moderateMatchThreshold = 75.0
)

// Analyzer wires the extractor, matcher and ranker over shared read-only
// catalogs. Dependencies are injected at construction; Analyze holds no
// state between calls, so a single Analyzer serves concurrent requests.
type Analyzer struct {
	catalog   *catalog.Catalog
	extractor *extraction.Extractor
	ranker    *ranking.Ranker
}

// New creates an analyzer over the given catalog and skill vocabulary. The
// annotator may be nil to disable the lexical-annotation pass.
func New(c *catalog.Catalog, vocab *catalog.Vocabulary, annotator extraction.Annotator) *Analyzer {
	return &Analyzer{
		catalog:   c,
		extractor: extraction.NewExtractor(vocab, annotator),
		ranker:    ranking.NewRanker(c),
	}
}

// ExtractSkills runs only the skill-extraction pass.
func (a *Analyzer) ExtractSkills(text string) types.SkillSet {
	return a.extractor.Extract(text)
}

// Analyze runs a full analysis of a resume against a role: extracted skills,
// match report, ranked questions per category (or a single category when
// category is non-empty), resume statistics, and a recommendation. Absent
// inputs degrade to empty results: an empty resume yields an empty skill set
// and an unknown role yields a zero-score report with empty question lists.
// Results are request-scoped and never cached.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, roleName string, category types.Category, topN int) (*types.Analysis, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	skills := a.extractor.Extract(resumeText)

	report := types.MatchReport{
		Role:          roleName,
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}
	if role, ok := a.catalog.RoleByName(roleName); ok {
		report = matching.Match(skills, role)
	}

	categories := types.Categories()
	if category != "" {
		categories = []types.Category{category}
	}

	// Rank each category concurrently. The ranker builds a fresh vector
	// space per call, so the goroutines share nothing mutable.
	questions := make(map[types.Category][]types.RankedQuestion, len(categories))
	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	for _, cat := range categories {
		g.Go(func() error {
			ranked := a.ranker.Rank(resumeText, roleName, cat, topN)
			mu.Lock()
			questions[cat] = ranked
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.Analysis{
		SessionID:      uuid.NewString(),
		Role:           roleName,
		Skills:         skills.Sorted(),
		Match:          report,
		Questions:      questions,
		Stats:          resumeStats(resumeText, skills),
		Recommendation: recommendation(report.Score),
	}, nil
}

// resumeStats computes simple lexical statistics for the statistics view.
func resumeStats(resumeText string, skills types.SkillSet) types.ResumeStats {
	return types.ResumeStats{
		Characters: len(resumeText),
		Words:      len(strings.Fields(resumeText)),
		Skills:     skills.Len(),
	}
}

// recommendation bands the match score into advice for the candidate.
func recommendation(score float64) string {
	switch {
	case score < lowMatchThreshold:
		return "Your resume has a low match score. Consider adding more relevant skills."
	case score < moderateMatchThreshold:
		return "Your resume has a moderate match score. Adding a few more skills could improve it."
	default:
		return "Your resume has a high match score! You're well-aligned with the role requirements."
	}
}
