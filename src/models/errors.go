package models

import (
	"errors"
	"fmt"
)

// Boundary error kinds. All of these are raised during input validation,
// before the calculation pipeline runs; the pipeline itself assumes
// validated input.
var (
	ErrInvalidFilingStatus = errors.New("invalid filing status")
	ErrIncompleteInput     = errors.New("incomplete input")
	ErrUnsupportedScenario = errors.New("unsupported scenario")
)

// ValidationError describes a monetary or structural constraint violation
// with enough detail to identify the offending field and record.
type ValidationError struct {
	Field  string // e.g. "W-2", "1099-DIV", "hsaDeduction"
	Index  int    // record index within its list, -1 for scalar fields
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s #%d: %s", e.Field, e.Index+1, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field string, index int, reason string) *ValidationError {
	return &ValidationError{Field: field, Index: index, Reason: reason}
}
