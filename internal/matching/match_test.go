package matching

import (
	"testing"

	"github.com/jonathan/interview-prep/internal/types"
	"github.com/stretchr/testify/assert"
)

func skillSet(skills ...string) types.SkillSet {
	s := types.NewSkillSet()
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

func TestMatchPartialOverlap(t *testing.T) {
	extracted := skillSet("Python", "SQL", "Docker")
	role := types.Role{Name: "Data Analyst", RequiredSkills: []string{"Python", "SQL", "Excel"}}

	report := Match(extracted, role)

	assert.Equal(t, "Data Analyst", report.Role)
	assert.Equal(t, []string{"Python", "SQL"}, report.MatchedSkills)
	assert.Equal(t, []string{"Excel"}, report.MissingSkills)
	assert.Equal(t, 66.7, report.Score)
}

func TestMatchFullOverlap(t *testing.T) {
	extracted := skillSet("Python", "SQL")
	role := types.Role{Name: "Data Analyst", RequiredSkills: []string{"Python", "SQL"}}

	report := Match(extracted, role)

	assert.Equal(t, 100.0, report.Score)
	assert.Empty(t, report.MissingSkills)
}

func TestMatchNoOverlap(t *testing.T) {
	extracted := skillSet("Photoshop")
	role := types.Role{Name: "Data Analyst", RequiredSkills: []string{"Python", "SQL"}}

	report := Match(extracted, role)

	assert.Equal(t, 0.0, report.Score)
	assert.Empty(t, report.MatchedSkills)
	assert.Equal(t, []string{"Python", "SQL"}, report.MissingSkills)
}

func TestMatchEmptyRequirements(t *testing.T) {
	extracted := skillSet("Python")
	role := types.Role{Name: "Generalist"}

	report := Match(extracted, role)

	assert.Equal(t, 0.0, report.Score)
	assert.Empty(t, report.MatchedSkills)
	assert.Empty(t, report.MissingSkills)
	assert.NotNil(t, report.MatchedSkills)
	assert.NotNil(t, report.MissingSkills)
}

func TestMatchEmptyExtractedSkills(t *testing.T) {
	report := Match(types.NewSkillSet(), types.Role{Name: "Data Analyst", RequiredSkills: []string{"Python"}})

	assert.Equal(t, 0.0, report.Score)
	assert.Equal(t, []string{"Python"}, report.MissingSkills)
}

func TestMatchDeduplicatesRequired(t *testing.T) {
	extracted := skillSet("Python")
	role := types.Role{Name: "Data Analyst", RequiredSkills: []string{"Python", "python", "PYTHON", "SQL"}}

	report := Match(extracted, role)

	// Duplicates collapse before scoring: 1 of 2, not 3 of 4.
	assert.Equal(t, []string{"Python"}, report.MatchedSkills)
	assert.Equal(t, []string{"SQL"}, report.MissingSkills)
	assert.Equal(t, 50.0, report.Score)
}

func TestMatchCaseInsensitive(t *testing.T) {
	extracted := skillSet("python")
	role := types.Role{Name: "Data Analyst", RequiredSkills: []string{"Python"}}

	report := Match(extracted, role)

	assert.Equal(t, 100.0, report.Score)
}

func TestMatchNormalizesAliases(t *testing.T) {
	extracted := skillSet("Go")
	role := types.Role{Name: "Backend Engineer", RequiredSkills: []string{"Golang"}}

	report := Match(extracted, role)

	assert.Equal(t, []string{"Go"}, report.MatchedSkills)
	assert.Equal(t, 100.0, report.Score)
}

func TestMatchScoreRounding(t *testing.T) {
	extracted := skillSet("A")
	role := types.Role{Name: "X", RequiredSkills: []string{"A", "B", "C"}}

	report := Match(extracted, role)

	// 1/3 of 100 rounds to one decimal, not a long float tail.
	assert.Equal(t, 33.3, report.Score)
}
