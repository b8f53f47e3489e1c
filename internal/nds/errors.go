package nds

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	ErrOutOfRange  = errors.New("value out of range")
	ErrMalformedID = errors.New("malformed tile id")
)

// RangeError reports a numeric input outside its declared domain.
type RangeError struct {
	Field      string      // Input that failed validation
	Value      interface{} // The invalid value
	Constraint string      // The allowed range
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %v exceeds the allowed range %s", e.Field, e.Value, e.Constraint)
}

// Unwrap returns the underlying error type.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// PackedIDError reports a packed tile ID without a level marker bit.
type PackedIDError struct {
	ID int32 // The malformed packed ID
}

// Error implements the error interface.
func (e *PackedIDError) Error() string {
	return fmt.Sprintf("invalid packed tile id %d: no level bit present", e.ID)
}

// Unwrap returns the underlying error type.
func (e *PackedIDError) Unwrap() error {
	return ErrMalformedID
}
