package config

import "fmt"

// Error reports an invalid configuration value.
type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error: '%s' %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
