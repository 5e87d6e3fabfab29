package fxp

import (
	"encoding"
	"fmt"
)

// Number is satisfied by every fixed-point type in this package: Int, Uint,
// Int128 and Uint128 for any Frac. It lets algorithms be written once over
// all widths, signedness and fractional bit counts:
//
//	func Lerp[X fxp.Number[X]](a, b, t X) X {
//		return a.Add(b.Sub(a).Mul(t))
//	}
//
// The unexported methods keep the set of implementations closed.
type Number[X any] interface {
	comparable
	fmt.Stringer
	encoding.TextMarshaler
	encoding.TextAppender

	FracBits() uint
	IntBits() uint
	Signed() bool
	Min() X
	Max() X
	Delta() X

	IsZero() bool
	Sign() int
	Cmp(y X) int
	Equal(y X) bool
	LessThan(y X) bool
	LessOrEqualTo(y X) bool
	GreaterThan(y X) bool
	GreaterOrEqualTo(y X) bool

	Float64() float64
	Float32() float32

	Add(y X) X
	CheckedAdd(y X) (X, error)
	WrappingAdd(y X) X
	SaturatingAdd(y X) X
	OverflowingAdd(y X) (X, bool)

	Sub(y X) X
	CheckedSub(y X) (X, error)
	WrappingSub(y X) X
	SaturatingSub(y X) X
	OverflowingSub(y X) (X, bool)

	Mul(y X) X
	CheckedMul(y X) (X, error)
	WrappingMul(y X) X
	SaturatingMul(y X) X
	OverflowingMul(y X) (X, bool)

	Div(y X) X
	CheckedDiv(y X) (X, error)
	WrappingDiv(y X) X
	SaturatingDiv(y X) X
	OverflowingDiv(y X) (X, bool)

	Neg() X
	CheckedNeg() (X, error)
	WrappingNeg() X
	SaturatingNeg() X
	OverflowingNeg() (X, bool)

	Abs() X
	CheckedAbs() (X, error)
	WrappingAbs() X
	SaturatingAbs() X
	OverflowingAbs() (X, bool)

	Shl(n int) X
	CheckedShl(n int) (X, error)
	WrappingShl(n int) X
	SaturatingShl(n int) X
	OverflowingShl(n int) (X, bool)
	Shr(n int) X

	Floor() X
	CheckedFloor() (X, error)
	WrappingFloor() X
	SaturatingFloor() X
	OverflowingFloor() (X, bool)

	Ceil() X
	CheckedCeil() (X, error)
	WrappingCeil() X
	SaturatingCeil() X
	OverflowingCeil() (X, bool)

	Round() X
	CheckedRound() (X, error)
	WrappingRound() X
	SaturatingRound() X
	OverflowingRound() (X, bool)

	// parts returns the sign and magnitude of the raw value.
	parts() (neg bool, mag U128)

	// withParts narrows a sign and magnitude back to X. carry reports that
	// mag has already lost bits above 2^128. The result is always the
	// wrapped value, accompanied by how it overflowed.
	withParts(neg bool, mag U128, carry bool) (X, overflow)

	withRandom(src RandSource) X
	appendBinary(dst []byte) []byte
	fromBinary(b []byte) (X, error)
}
