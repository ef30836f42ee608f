package catalog

import "fmt"

// LoadError indicates a catalog file could not be read or parsed. Catalog
// malformation is a load-time failure; the core never attempts partial
// recovery of a corrupt row.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RecordError indicates a single malformed catalog record, identified by its
// 1-based row number in the source file.
type RecordError struct {
	Path    string
	Row     int
	Message string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid record in %s (row %d): %s", e.Path, e.Row, e.Message)
}
