// Package extraction detects vocabulary skills in resume text.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-prep/internal/catalog"
	"github.com/jonathan/interview-prep/internal/parsing"
	"github.com/jonathan/interview-prep/internal/types"
)

// Extractor scans normalized resume text against a fixed skill vocabulary.
// The vocabulary pass gives precision; an optional annotator pass adds recall
// by surfacing candidate terms outside the vocabulary. Both passes are pure
// and deterministic, so Extract is deterministic for a given text.
type Extractor struct {
	vocabulary *catalog.Vocabulary
	patterns   []vocabularyPattern
	annotator  Annotator
}

type vocabularyPattern struct {
	term    string // lowercase vocabulary term
	pattern *regexp.Regexp
}

// NewExtractor creates an extractor for the given vocabulary. The annotator
// may be nil, in which case only the vocabulary pass runs. Matching patterns
// are compiled once here; Extract itself does no setup work.
func NewExtractor(vocabulary *catalog.Vocabulary, annotator Annotator) *Extractor {
	terms := vocabulary.Terms()
	patterns := make([]vocabularyPattern, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, vocabularyPattern{
			term:    term,
			pattern: compileTermPattern(term),
		})
	}
	return &Extractor{
		vocabulary: vocabulary,
		patterns:   patterns,
		annotator:  annotator,
	}
}

// Extract returns the set of vocabulary terms present in the text as
// whole-phrase, word-boundary matches, unioned with any candidates from the
// annotator pass. Empty text yields an empty set. No I/O, no side effects.
func (e *Extractor) Extract(text string) types.SkillSet {
	found := types.NewSkillSet()
	if strings.TrimSpace(text) == "" {
		return found
	}

	normalized := parsing.NormalizeText(text)
	for _, vp := range e.patterns {
		if vp.pattern.MatchString(normalized) {
			found.Add(parsing.NormalizeSkillName(vp.term))
		}
	}

	if e.annotator != nil {
		for _, candidate := range e.annotator.Annotate(text) {
			found.Add(parsing.NormalizeSkillName(candidate))
		}
	}

	return found
}

// compileTermPattern builds a whole-phrase match pattern for a vocabulary
// term. Word boundaries prevent false positives such as "java" matching
// inside "javascript"; a \b anchor is only usable next to a word character,
// so terms that start or end with symbols ("c++", ".net") drop the anchor on
// that side.
func compileTermPattern(term string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(term)
	prefix, suffix := "", ""
	if isWordChar(rune(term[0])) {
		prefix = `\b`
	}
	if isWordChar(rune(term[len(term)-1])) {
		suffix = `\b`
	}
	return regexp.MustCompile(prefix + escaped + suffix)
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
