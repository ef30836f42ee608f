// Package parsing provides text and skill-name normalization for resume analysis.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText lowercases raw resume text and collapses whitespace runs to
// single spaces. Word boundaries are preserved so multi-word skill phrases
// ("machine learning") remain contiguous and searchable; the text is never
// split into single tokens here. Empty input yields empty output.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}
	lowered := strings.ToLower(raw)
	collapsed := whitespaceRun.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(collapsed)
}

// Tokenize splits text into lowercase word tokens consisting of letters and
// digits. Everything else is a separator.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":       "Go",
	"go lang":      "Go",
	"javascript":   "JavaScript",
	"js":           "JavaScript",
	"typescript":   "TypeScript",
	"ts":           "TypeScript",
	"k8s":          "Kubernetes",
	"kubernetes":   "Kubernetes",
	"node.js":      "Node.js",
	"nodejs":       "Node.js",
	"react.js":     "React",
	"reactjs":      "React",
	"vue.js":       "Vue",
	"vuejs":        "Vue",
	"postgres":     "PostgreSQL",
	"postgresql":   "PostgreSQL",
	"c++":          "C++",
	"c#":           "C#",
	"rest api":     "REST API",
	"ci/cd":        "CI/CD",
	"sql":          "SQL",
	"html":         "HTML",
	"html5":        "HTML5",
	"css":          "CSS",
	"css3":         "CSS3",
	"aws":          "AWS",
	"gcp":          "GCP",
	"ai":           "AI",
	"oop":          "OOP",
	"tdd":          "TDD",
	"php":          "PHP",
	"xml":          "XML",
	"json":         "JSON",
	"ios":          "iOS",
	"mysql":        "MySQL",
	"mongodb":      "MongoDB",
	"graphql":      "GraphQL",
	"fastapi":      "FastAPI",
	"numpy":        "NumPy",
	"pytorch":      "PyTorch",
	"tensorflow":   "TensorFlow",
	"scikit-learn": "scikit-learn",
	"jquery":       "jQuery",
	"github":       "GitHub",
	"gitlab":       "GitLab",
	"devops":       "DevOps",
	"npm":          "npm",
}

// NormalizeSkillName normalizes a skill term to its canonical display form.
// Known variants map through the alias table; otherwise all-lowercase or
// all-uppercase terms are title-cased per word, and mixed-case terms keep the
// source spelling.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Already mixed case: trust the source spelling.
	if normalized != strings.ToUpper(normalized) && normalized != lower {
		return normalized
	}

	// Short all-caps single words are acronyms (ETL, NLP, SRE); keep them.
	if normalized == strings.ToUpper(normalized) && normalized != lower &&
		!strings.Contains(normalized, " ") && len(normalized) <= 4 {
		return normalized
	}

	words := strings.Fields(lower)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
