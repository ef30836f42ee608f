package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/interview-prep/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchReport(&types.MatchReport{
		Role:          "Data Scientist",
		MatchedSkills: []string{"Python", "SQL"},
		MissingSkills: []string{"Machine Learning"},
		Score:         66.7,
	})

	out := buf.String()
	assert.Contains(t, out, "SKILL MATCH")
	assert.Contains(t, out, "Data Scientist")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "Python, SQL")
	assert.Contains(t, out, "Machine Learning")
}

func TestPrintMatchReportNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchReportEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchReport(&types.MatchReport{Role: "X"})

	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintSkillsTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]string, 20)
	for i := range skills {
		skills[i] = "Skill"
	}
	p.PrintSkills(skills)

	out := buf.String()
	assert.Contains(t, out, "Detected: 20")
	assert.Contains(t, out, "and 5 more")
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions(map[types.Category][]types.RankedQuestion{
		types.CategoryTechnical: {
			{
				Question:   types.Question{Category: types.CategoryTechnical, Text: "Explain overfitting"},
				Relevance:  0.5,
				Rank:       1,
				Difficulty: types.DifficultyEasy,
			},
		},
		types.CategoryBehavioral: {},
	})

	out := buf.String()
	assert.Contains(t, out, "TECHNICAL QUESTIONS")
	assert.Contains(t, out, "Q1 [Easy, 0.500] Explain overfitting")
	assert.Contains(t, out, "(none for this role)")
	assert.NotContains(t, out, "SCENARIO-BASED QUESTIONS", "absent categories are skipped entirely")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStats(&types.Analysis{
		Stats:          types.ResumeStats{Characters: 100, Words: 20, Skills: 4},
		Recommendation: "Your resume has a high match score!",
	})

	out := buf.String()
	assert.Contains(t, out, "Characters: 100")
	assert.Contains(t, out, "high match score")
}
