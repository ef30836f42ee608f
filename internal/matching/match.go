// Package matching computes the overlap between extracted resume skills and
// a role's required skills.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/interview-prep/internal/parsing"
	"github.com/jonathan/interview-prep/internal/types"
)

// Match compares an extracted skill set against a role's requirements. The
// required list is deduplicated case-insensitively before scoring since
// catalog data is not guaranteed deduplicated; matched and missing partition
// that deduplicated set and are reported in canonical form, sorted. Score is
// |matched| / |required| * 100 rounded to one decimal, and 0 when the role
// has no requirements. Pure function: identical inputs always produce an
// identical report.
func Match(extracted types.SkillSet, role types.Role) types.MatchReport {
	report := types.MatchReport{
		Role:          role.Name,
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	seen := make(map[string]struct{}, len(role.RequiredSkills))
	required := 0
	for _, raw := range role.RequiredSkills {
		canonical := parsing.NormalizeSkillName(raw)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		required++

		if extracted.Contains(canonical) {
			report.MatchedSkills = append(report.MatchedSkills, canonical)
		} else {
			report.MissingSkills = append(report.MissingSkills, canonical)
		}
	}

	sort.Strings(report.MatchedSkills)
	sort.Strings(report.MissingSkills)

	if required > 0 {
		report.Score = round1(100 * float64(len(report.MatchedSkills)) / float64(required))
	}
	return report
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
