package ioscope

import (
	"errors"
	"fmt"
)

// ErrIncompleteConfiguration is returned when a non-empty configuration
// omits one or more recognized I/O entities. Selecting some entities while
// leaving others unspecified would make their isolation behavior ambiguous,
// so it is rejected outright.
var ErrIncompleteConfiguration = errors.New("all I/O entities must be explicitly provided")

// InvalidEntityError reports a configuration key that is not a recognized
// I/O entity name.
type InvalidEntityError struct {
	Entity string
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid io entity: %q", e.Entity)
}

// InvalidValueError reports a configuration value that is not a strict
// boolean.
type InvalidValueError struct {
	Entity string
	Value  any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s=%v: boolean expected", e.Entity, e.Value)
}
