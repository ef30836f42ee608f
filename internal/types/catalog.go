package types

// Role is a job role from the role catalog: an identifier plus the ordered
// list of required skills as supplied by the source data. The required list
// may contain duplicates; the matcher deduplicates before scoring.
type Role struct {
	Name           string   `json:"name" validate:"required,min=1"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1,dive,min=1"`
}

// Category is the closed set of question categories.
type Category string

// Question categories as they appear in the question catalog.
const (
	CategoryTechnical  Category = "Technical"
	CategoryBehavioral Category = "Behavioral"
	CategoryScenario   Category = "Scenario-based"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryTechnical, CategoryBehavioral, CategoryScenario}
}

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryTechnical, CategoryBehavioral, CategoryScenario:
		return true
	}
	return false
}

// Question is an immutable record from the question catalog. Difficulty is
// computed at ranking time, never read from source data (the source column is
// inconsistent and is ignored by the loader).
type Question struct {
	Role     string   `json:"role" validate:"required,min=1"`
	Category Category `json:"category" validate:"required"`
	Text     string   `json:"text" validate:"required,min=1"`
}

// Difficulty is the computed difficulty label for a question.
type Difficulty string

// The fixed 3-value difficulty set.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)
