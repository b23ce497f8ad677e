package weather

import (
	"errors"
	"fmt"
)

// ErrInvalidLocation is returned when a location ID is not in the registry.
var ErrInvalidLocation = errors.New("invalid location ID")

// ProviderError wraps a failure raised by a Provider. Its message is the
// provider's own description.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NormalizationError reports a forecast record missing a required field.
type NormalizationError struct {
	Day   int
	Hour  int // -1 when the day itself is missing the field
	Field string
}

func (e *NormalizationError) Error() string {
	if e.Hour >= 0 {
		return fmt.Sprintf("forecast day %d hour %d: missing field %q", e.Day, e.Hour, e.Field)
	}
	return fmt.Sprintf("forecast day %d: missing field %q", e.Day, e.Field)
}
