// Package catalog provides the read-only reference data the analysis core
// consumes: the skill vocabulary, the job role catalog, and the interview
// question catalog. All three are loaded once at process start and are never
// mutated afterwards, so they are safe for concurrent readers without locks.
package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

// Vocabulary is the static set of canonical skill terms the extractor matches
// against resume text.
type Vocabulary struct {
	terms []string // lowercase, deduplicated, in stable sorted order
}

// NewVocabulary builds a vocabulary from raw terms, lowercasing and
// deduplicating them. Order of the input does not matter; terms are kept in
// sorted order so matching is deterministic.
func NewVocabulary(terms []string) *Vocabulary {
	seen := make(map[string]struct{}, len(terms))
	unique := make([]string, 0, len(terms))
	for _, term := range terms {
		lower := strings.ToLower(strings.TrimSpace(term))
		if lower == "" {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, lower)
	}
	sort.Strings(unique)
	return &Vocabulary{terms: unique}
}

// Terms returns the lowercase vocabulary terms in sorted order. The returned
// slice must not be modified.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Len returns the number of vocabulary terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Catalog is the load-once holder of roles and questions.
type Catalog struct {
	roles     []types.Role
	questions []types.Question
}

// New creates a catalog from already-loaded records. The slices are owned by
// the catalog after the call.
func New(roles []types.Role, questions []types.Question) *Catalog {
	return &Catalog{roles: roles, questions: questions}
}

// Roles returns all roles in catalog order.
func (c *Catalog) Roles() []types.Role {
	return c.roles
}

// RoleByName looks up a role case-insensitively.
func (c *Catalog) RoleByName(name string) (types.Role, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, role := range c.roles {
		if strings.ToLower(role.Name) == want {
			return role, true
		}
	}
	return types.Role{}, false
}

// QuestionsFor returns the questions for a role, optionally restricted to one
// category (empty category means all). Role comparison is case-insensitive
// and the catalog order of the records is preserved, which keeps downstream
// tie-breaking deterministic.
func (c *Catalog) QuestionsFor(role string, category types.Category) []types.Question {
	want := strings.ToLower(strings.TrimSpace(role))
	var filtered []types.Question
	for _, q := range c.questions {
		if strings.ToLower(q.Role) != want {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}
