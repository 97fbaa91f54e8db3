package entities

import (
	"fmt"
)

// AlreadyExistsError indicates a define collided with an existing entry.
type AlreadyExistsError struct {
	Name   string
	Origin Origin
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("workload type %s already exists (%s)", e.Name, e.Origin)
}

// NotFoundError indicates the named workload is not in the table.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workload type %s not found", e.Name)
}

// InvalidProfileError indicates a profile source could not be resolved or
// failed validation.
type InvalidProfileError struct {
	Source string
	Cause  error
}

func (e *InvalidProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile %s: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("invalid profile %s", e.Source)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}

// UsageError indicates malformed command input, such as an empty workload
// name. It is the only error class surfaced with a nonzero exit status by
// the undefine command.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Incorrect Usage: %s", e.Message)
}

// NewUsageError creates a new usage error.
func NewUsageError(message string) *UsageError {
	return &UsageError{Message: message}
}
