// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxSkillsToShow is the default number of skills to display in lists
	maxSkillsToShow = 15
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkills outputs the extracted skill set.
func (p *Printer) PrintSkills(skills []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected: %d\n", len(skills)))
	shown := skills
	if len(shown) > maxSkillsToShow {
		shown = shown[:maxSkillsToShow]
	}
	for _, skill := range shown {
		sb.WriteString(fmt.Sprintf("  • %s\n", skill))
	}
	if len(skills) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxSkillsToShow))
	}
	p.printBox("EXTRACTED SKILLS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchReport outputs a human-readable summary of the skill match.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:        %s\n", report.Role))
	sb.WriteString(fmt.Sprintf("Match score: %.1f%%\n", report.Score))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched (%d): %s\n", len(report.MatchedSkills), joinOrNone(report.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("Missing (%d): %s", len(report.MissingSkills), joinOrNone(report.MissingSkills)))
	p.printBox("SKILL MATCH", sb.String())
}

// PrintQuestions outputs the ranked questions grouped by category.
func (p *Printer) PrintQuestions(questions map[types.Category][]types.RankedQuestion) {
	for _, cat := range types.Categories() {
		ranked, ok := questions[cat]
		if !ok {
			continue
		}
		if len(ranked) == 0 {
			p.printBox(strings.ToUpper(string(cat))+" QUESTIONS", "(none for this role)")
			continue
		}

		var sb strings.Builder
		for _, rq := range ranked {
			sb.WriteString(fmt.Sprintf("Q%d [%s, %.3f] %s\n", rq.Rank, rq.Difficulty, rq.Relevance, rq.Question.Text))
		}
		p.printBox(strings.ToUpper(string(cat))+" QUESTIONS", strings.TrimRight(sb.String(), "\n"))
	}
}

// PrintStats outputs resume statistics and the recommendation.
func (p *Printer) PrintStats(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Characters: %d\n", analysis.Stats.Characters))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", analysis.Stats.Words))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", analysis.Stats.Skills))
	sb.WriteString("\n")
	sb.WriteString(analysis.Recommendation)
	p.printBox("RESUME STATISTICS", sb.String())
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
