package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown input or output format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Sort Errors.

	// ErrEmptyInput indicates a sort was requested on an empty sequence.
	// There is no element to seed the maximum from.
	ErrEmptyInput = errors.New("empty input: sequence must contain at least one value")

	// ErrNegativeValue indicates the sequence holds a value below zero.
	// Decimal digit extraction is only defined for non-negative integers.
	ErrNegativeValue = errors.New("negative value")

	// ErrExponentOverflow indicates a digit-position exponent does not fit in int64.
	ErrExponentOverflow = errors.New("exponent overflow")

	// ErrInvalidExponent indicates a digit-position exponent that is not a positive power of ten.
	ErrInvalidExponent = errors.New("invalid exponent: must be a positive power of ten")
)

// ValueError reports the offending element of a rejected sequence.
type ValueError struct {
	Index int
	Value int64
	Err   error
}

// Error implements error.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: element %d is %d", e.Err, e.Index, e.Value)
}

// Unwrap returns the sentinel the element violated.
func (e *ValueError) Unwrap() error {
	return e.Err
}
