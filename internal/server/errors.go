// Package server provides the HTTP REST API for the interview question generator.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedUpload indicates an uploaded resume in a format the ingestion
// layer cannot extract text from.
type ErrUnsupportedUpload struct {
	Filename string
}

func (e *ErrUnsupportedUpload) Error() string {
	return fmt.Sprintf("unsupported resume file: %s", e.Filename)
}

// ErrExtraction indicates text extraction from an uploaded resume failed.
type ErrExtraction struct {
	Filename string
	Cause    error
}

func (e *ErrExtraction) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ErrExtraction) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnsupportedUpload:
		return http.StatusUnsupportedMediaType
	case *ErrExtraction:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
