package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidData is matched by every ValidationError via errors.Is.
var ErrInvalidData = errors.New("invalid entity data")

// ValidationError is returned by constructors and mutators when a field breaks an invariant.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidData
}

func invalidUser(field, reason string) error {
	return &ValidationError{Entity: "user", Field: field, Reason: reason}
}

func invalidAddress(field, reason string) error {
	return &ValidationError{Entity: "address", Field: field, Reason: reason}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
