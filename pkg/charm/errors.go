package charm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField matches any MissingFieldError via errors.Is.
	ErrMissingField = errors.New("charm: missing field")
	// ErrInvalidIdentifier matches any InvalidIdentifierError via errors.Is.
	ErrInvalidIdentifier = errors.New("charm: invalid identifier")
	// ErrSerialization matches any SerializationError via errors.Is.
	ErrSerialization = errors.New("charm: value not representable as literal")
)

// MissingFieldError reports a required render context field that is absent or
// blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("charm: missing required field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidIdentifierError reports a value that cannot be emitted as a Python
// identifier (or dotted module path).
type InvalidIdentifierError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("charm: %s %q is not a valid identifier", e.Field, e.Value)
	}
	return fmt.Sprintf("charm: %s %q is not a valid identifier: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// SerializationError reports a value that cannot be written as a single line
// Python string literal. Index is the position inside a list field, or -1.
type SerializationError struct {
	Field  string
	Index  int
	Value  string
	Reason string
}

func (e *SerializationError) Error() string {
	field := e.Field
	if e.Index >= 0 {
		field = fmt.Sprintf("%s[%d]", e.Field, e.Index)
	}
	return fmt.Sprintf("charm: %s %q cannot be serialized: %s", field, e.Value, e.Reason)
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}
