package geo

import (
	"errors"
	"fmt"
)

// ErrUnknownUnits is returned for distance unit names that are not recognised.
var ErrUnknownUnits = errors.New("unknown units")

// ValidationError reports a coordinate, angle or encoded location that is
// outside its legal domain.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}
