package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Python Developer", "python developer"},
		{"Collapses spaces", "machine    learning", "machine learning"},
		{"Collapses tabs and newlines", "data\t\nanalysis", "data analysis"},
		{"Trims surrounding whitespace", "  SQL  ", "sql"},
		{"Preserves phrase boundaries", "Machine Learning\nand SQL", "machine learning and sql"},
		{"Empty input", "", ""},
		{"Whitespace only", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple words", "Python and SQL", []string{"python", "and", "sql"}},
		{"Punctuation separates", "python, sql; docker", []string{"python", "sql", "docker"}},
		{"Digits kept", "html5 css3", []string{"html5", "css3"}},
		{"Empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tokenize(tt.input)
			if tt.expected == nil {
				assert.Empty(t, result)
				return
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to Go", "Golang", "Go"},
		{"golang to Go", "golang", "Go"},
		{"JS to JavaScript", "js", "JavaScript"},
		{"k8s to Kubernetes", "k8s", "Kubernetes"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"sql to SQL", "sql", "SQL"},
		{"c++ preserved", "c++", "C++"},
		{"c# preserved", "c#", "C#"},
		{"python to Python", "python", "Python"},
		{"PYTHON to Python", "PYTHON", "Python"},
		{"Mixed case kept", "PyTorch", "PyTorch"},
		{"Short acronym kept", "NLP", "NLP"},
		{"ETL kept", "ETL", "ETL"},
		{"Long all-caps title-cased", "LEADERSHIP", "Leadership"},
		{"Multi-word title-cased", "machine learning", "Machine Learning"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(tt.input))
		})
	}
}
