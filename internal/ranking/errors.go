// Package ranking scores jobs, courses and mentor profiles against a user and ranks the results.
package ranking

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a caller contract violation, such as a candidate without an identifier.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a structural problem with a record handed to the engine.
type InputError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match any InputError against ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
