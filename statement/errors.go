/*
errors.go - Centralized error types for statement building and validation

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine itself never fails mid-calculation; every error here is a
  boundary rejection of structurally invalid input.

USAGE:
  Callers branch with errors.Is / errors.As:

    if errors.Is(err, statement.ErrInvalidInput) {
        // 400, not 500
    }

    var verr *statement.ValidationError
    if errors.As(err, &verr) {
        log.Printf("field %s: %s", verr.Field, verr.Reason)
    }
*/
package statement

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a calculation input fails boundary
	// validation. The engine refuses to produce garbage numbers from
	// malformed facts.
	ErrInvalidInput = errors.New("invalid calculation input")

	// ErrCalculationNotFound is returned when a stored calculation does
	// not exist.
	ErrCalculationNotFound = errors.New("calculation not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports which input field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid builds a ValidationError for a field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCalculationNotFound)
}
