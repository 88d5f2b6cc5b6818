package errs

import (
	"errors"
	"fmt"
)

// ValidationError indicates malformed input, e.g. a CO-mapping upload with a
// missing required header or too few rows. It aborts only the offending
// request.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidation builds a ValidationError with a formatted message.
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PrerequisiteMissingError indicates that required upstream derived data is
// absent (e.g. no CIE composition or SEE marks row for a student). The
// calculator never invents missing inputs.
type PrerequisiteMissingError struct {
	What string
}

func (e *PrerequisiteMissingError) Error() string {
	return "prerequisite missing: " + e.What
}

// NotFoundError indicates that a referenced course, CO, student or marksheet
// does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// TransactionFailure wraps the original error from a failed multi-statement
// write after the transaction has been rolled back. The cause is preserved
// unmodified for the caller.
type TransactionFailure struct {
	Op  string
	Err error
}

func (e *TransactionFailure) Error() string {
	return fmt.Sprintf("transaction failed during %s: %v", e.Op, e.Err)
}

func (e *TransactionFailure) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPrerequisiteMissing reports whether err is a PrerequisiteMissingError.
func IsPrerequisiteMissing(err error) bool {
	var pe *PrerequisiteMissingError
	return errors.As(err, &pe)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
