package ingestion

import (
	"regexp"
	"strings"
)

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes extracted resume text while preserving line structure:
// CRLF endings become LF, trailing whitespace is trimmed per line, and runs
// of blank lines collapse to at most one. Empty input yields empty output.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			line = ""
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
