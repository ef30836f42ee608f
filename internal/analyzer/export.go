package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jonathan/interview-prep/internal/types"
)

// ExportHeader is the column layout of the tabular question export.
var ExportHeader = []string{"Role", "Category", "Question", "Difficulty", "Relevance"}

// ExportRows renders the analysis's ranked questions as table rows matching
// ExportHeader, category-major in fixed category order. File writing is the
// caller's concern.
func ExportRows(analysis *types.Analysis) [][]string {
	var rows [][]string
	for _, cat := range types.Categories() {
		for _, rq := range analysis.Questions[cat] {
			rows = append(rows, []string{
				analysis.Role,
				string(rq.Question.Category),
				rq.Question.Text,
				string(rq.Difficulty),
				fmt.Sprintf("%.4f", rq.Relevance),
			})
		}
	}
	return rows
}

// WriteCSV serializes the export table, header first, to w.
func WriteCSV(w io.Writer, analysis *types.Analysis) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range ExportRows(analysis) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
