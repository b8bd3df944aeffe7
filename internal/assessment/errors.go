package assessment

import (
	"errors"
	"fmt"
)

// Validation failure kinds. All are detected before any scoring runs; there
// is no partial result on failure.
var (
	ErrMissingFactorResponse = errors.New("missing factor response")
	ErrOutOfRangeScore       = errors.New("score out of range")
	ErrInvalidWeightSum      = errors.New("factor weights do not sum to 1.0")
	ErrUnknownFactor         = errors.New("unknown factor")
	ErrDuplicateResponse     = errors.New("duplicate factor response")
)

// ValidationError carries the specific field that failed input validation.
// It unwraps to one of the sentinel kinds above for errors.Is checks.
type ValidationError struct {
	Kind   error
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}
