// Package types provides type definitions for structured data used throughout the interview-prep system.
package types

import (
	"sort"
	"strings"
)

// SkillSet is a deduplicated, case-normalized collection of skill terms
// detected in a resume. Membership is keyed on the lowercase form; the
// canonical display form is preserved as the value.
type SkillSet struct {
	skills map[string]string // lowercase -> canonical display form
}

// NewSkillSet creates an empty SkillSet.
func NewSkillSet() SkillSet {
	return SkillSet{skills: make(map[string]string)}
}

// Add inserts a skill, deduplicating case-insensitively. The first canonical
// form seen for a given lowercase key wins.
func (s *SkillSet) Add(canonical string) {
	if canonical == "" {
		return
	}
	if s.skills == nil {
		s.skills = make(map[string]string)
	}
	key := strings.ToLower(canonical)
	if _, exists := s.skills[key]; !exists {
		s.skills[key] = canonical
	}
}

// Contains reports whether the skill is present, case-insensitively.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s.skills[strings.ToLower(skill)]
	return ok
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s.skills)
}

// Sorted returns the canonical skill names in lexical order. Sorting keeps
// the set's rendering deterministic regardless of insertion order.
func (s SkillSet) Sorted() []string {
	names := make([]string, 0, len(s.skills))
	for _, canonical := range s.skills {
		names = append(names, canonical)
	}
	sort.Strings(names)
	return names
}
