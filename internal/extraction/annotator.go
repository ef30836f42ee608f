package extraction

import (
	"strings"
	"unicode"
)

// Annotator is the capability interface for the optional lexical-annotation
// pass. Implementations surface candidate skill terms the static vocabulary
// misses; the extractor unions their output with the vocabulary matches.
// Annotate must be deterministic for a given text.
type Annotator interface {
	Annotate(text string) []string
}

// AcronymAnnotator is the default annotator: a lexical heuristic that treats
// standalone all-caps tokens (ETL, NLP, SRE) as candidate skill terms. It is
// a deliberately conservative stand-in for a proper-noun tagger.
type AcronymAnnotator struct {
	// MaxLen bounds candidate length; zero means the default of 6.
	MaxLen int
}

// acronymExclusions are common all-caps words that are not skills.
var acronymExclusions = map[string]struct{}{
	"AND": {}, "THE": {}, "FOR": {}, "NOT": {}, "ALL": {}, "ANY": {},
	"CV": {}, "USA": {}, "GPA": {}, "BSC": {}, "MSC": {}, "PHD": {},
	"LLC": {}, "INC": {}, "LTD": {},
}

// Annotate returns the distinct all-caps tokens of the text, in order of
// first appearance.
func (a *AcronymAnnotator) Annotate(text string) []string {
	maxLen := a.MaxLen
	if maxLen <= 0 {
		maxLen = 6
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	seen := make(map[string]struct{})
	var candidates []string
	for _, token := range tokens {
		if len(token) < 2 || len(token) > maxLen {
			continue
		}
		if token != strings.ToUpper(token) {
			continue
		}
		if _, excluded := acronymExclusions[token]; excluded {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		candidates = append(candidates, token)
	}
	return candidates
}

// NoopAnnotator disables the lexical pass; extraction then relies solely on
// the vocabulary.
type NoopAnnotator struct{}

// Annotate always returns nil.
func (NoopAnnotator) Annotate(string) []string {
	return nil
}
