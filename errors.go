package fxp

import (
	"errors"
	"strconv"
)

var (
	// ErrOverflow indicates that the exact result of an operation is outside
	// the range of its type.
	ErrOverflow = errors.New("value out of range")

	// ErrDivisionByZero is reported by every division policy when the
	// divisor is zero. It is never reported as ErrOverflow.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidShift indicates a shift count that is negative or not less
	// than the storage width.
	ErrInvalidShift = errors.New("invalid shift count")

	ErrSyntax = errors.New("invalid syntax")

	// ErrNonFiniteFloat indicates a NaN or infinite float argument.
	ErrNonFiniteFloat = errors.New("non-finite float")

	// ErrInvalidFrac indicates a type whose fractional bit count exceeds
	// its storage width.
	ErrInvalidFrac = errors.New("fractional bits exceed storage width")
)

// OpError records a failed operation. Panics raised by this package carry an
// *OpError, so a recovered value can be inspected with errors.Is.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return "fxp: " + e.Op + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// ParseError records a failed conversion from text. Err is ErrSyntax or
// ErrOverflow.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "fxp: parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
