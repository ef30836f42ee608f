package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the JSON body for POST /analyze. ResumeText may be empty
// (the analysis degrades to an empty skill set); Role is required.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text"`
	Role       string `json:"role" validate:"required,min=1"`
	Category   string `json:"category,omitempty"`
	TopN       int    `json:"top_n,omitempty" validate:"omitempty,min=1,max=100"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Category != "" && !ValidCategory(Category(r.Category)) {
		return &InvalidCategoryError{Category: r.Category}
	}
	return nil
}

// InvalidCategoryError indicates a category outside the closed category set.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return "invalid question category: " + e.Category
}
