package ranking

import (
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

// Lexical difficulty signals. The thresholds are a tunable heuristic; the
// only contract is that the label is one of the fixed three values and that
// the same text always yields the same label.
var (
	hardKeywords = []string{
		"design", "architecture", "scalability", "distributed", "algorithm",
		"complexity", "optimization", "system design", "concurrency",
	}
	mediumKeywords = []string{
		"explain", "difference", "how", "what", "describe", "implement",
	}
	easyKeywords = []string{
		"define", "list", "name", "what is", "basic",
	}
)

const (
	hardWordThreshold   = 30
	mediumWordThreshold = 15
)

// ClassifyDifficulty assigns a difficulty label based on the question's
// lexical content: complexity-signaling keywords and overall length.
func ClassifyDifficulty(text string) types.Difficulty {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	hard := countOccurring(lower, hardKeywords)
	medium := countOccurring(lower, mediumKeywords)
	easy := countOccurring(lower, easyKeywords)

	switch {
	case hard >= 2 || wordCount > hardWordThreshold:
		return types.DifficultyHard
	case medium > easy || wordCount > mediumWordThreshold:
		return types.DifficultyMedium
	default:
		return types.DifficultyEasy
	}
}

// countOccurring counts how many of the keywords appear in the text.
func countOccurring(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
