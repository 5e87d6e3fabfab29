package fxp

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

func intParts[N constraints.Integer](n N) (neg bool, mag U128) {
	if n < 0 {
		return true, U128{lo: -uint64(n)}
	}
	return false, U128{lo: uint64(n)}
}

func fromInt[X Number[X], N constraints.Integer](n N) (X, overflow) {
	var x X
	neg, m := intParts(n)
	m, carry := shlCarry(m, x.FracBits())
	return x.withParts(neg, m, carry)
}

// FromInt converts the integer n to X, panicking with ErrOverflow if it is out
// of range.
func FromInt[X Number[X], N constraints.Integer](n N) X {
	v, o := fromInt[X](n)
	return must("from int", v, o)
}

func CheckedFromInt[X Number[X], N constraints.Integer](n N) (X, error) {
	v, o := fromInt[X](n)
	return checked("from int", v, o)
}

func WrappingFromInt[X Number[X], N constraints.Integer](n N) X {
	v, _ := fromInt[X](n)
	return v
}

func SaturatingFromInt[X Number[X], N constraints.Integer](n N) X {
	v, o := fromInt[X](n)
	return saturating(v, o)
}

func OverflowingFromInt[X Number[X], N constraints.Integer](n N) (X, bool) {
	v, o := fromInt[X](n)
	return v, o != inRange
}

// FromI128 converts a 128-bit integer to X, returning an *OpError wrapping
// ErrOverflow if it is out of range.
func FromI128[X Number[X]](n I128) (X, error) {
	var x X
	m, carry := shlCarry(n.AbsU128(), x.FracBits())
	v, o := x.withParts(n.Sign() < 0, m, carry)
	return checked("from i128", v, o)
}

func FromU128[X Number[X]](n U128) (X, error) {
	var x X
	m, carry := shlCarry(n, x.FracBits())
	v, o := x.withParts(false, m, carry)
	return checked("from u128", v, o)
}

// intBounds returns the smallest and largest values of N.
func intBounds[N constraints.Integer]() (lo, hi N) {
	var zero N
	if ^zero < 0 {
		hi = N(uint64(1)<<(uint(unsafe.Sizeof(zero))*8-1) - 1)
		return -hi - 1, hi
	}
	return 0, ^zero
}

// narrowInt converts a sign and magnitude to N, wrapping modulo 2^width.
func narrowInt[N constraints.Integer](neg bool, m U128) (N, overflow) {
	var zero N
	v := N(m.lo)
	if neg {
		v = -v
	}

	if ^zero < 0 {
		limit := uint64(1) << (uint(unsafe.Sizeof(zero))*8 - 1)
		if m.hi != 0 || m.lo > limit || (!neg && m.lo == limit) {
			return v, signedOverflow(neg)
		}
		return v, inRange
	}

	if neg && !m.IsZero() {
		return v, overflowLow
	} else if m.hi != 0 || m.lo > uint64(^zero) {
		return v, overflowHigh
	}
	return v, inRange
}

func toInt[N constraints.Integer, X Number[X]](x X, round bool) (N, overflow) {
	neg, m := x.parts()
	if round {
		m = m.rshRound(x.FracBits())
	} else {
		m = m.Rsh(x.FracBits())
	}
	return narrowInt[N](neg, m)
}

func saturatingInt[N constraints.Integer](v N, o overflow) N {
	lo, hi := intBounds[N]()
	return saturate(v, o, lo, hi)
}

// ToInt converts x to the integer type N, truncating toward zero. It panics
// with ErrOverflow if the integer part does not fit in N.
func ToInt[N constraints.Integer, X Number[X]](x X) N {
	v, o := toInt[N](x, false)
	return must("to int", v, o)
}

func CheckedToInt[N constraints.Integer, X Number[X]](x X) (N, error) {
	v, o := toInt[N](x, false)
	return checked("to int", v, o)
}

func WrappingToInt[N constraints.Integer, X Number[X]](x X) N {
	v, _ := toInt[N](x, false)
	return v
}

func SaturatingToInt[N constraints.Integer, X Number[X]](x X) N {
	v, o := toInt[N](x, false)
	return saturatingInt(v, o)
}

func OverflowingToInt[N constraints.Integer, X Number[X]](x X) (N, bool) {
	v, o := toInt[N](x, false)
	return v, o != inRange
}

// RoundToInt converts x to the nearest value of the integer type N, with ties
// rounded away from zero.
func RoundToInt[N constraints.Integer, X Number[X]](x X) N {
	v, o := toInt[N](x, true)
	return must("round to int", v, o)
}

func CheckedRoundToInt[N constraints.Integer, X Number[X]](x X) (N, error) {
	v, o := toInt[N](x, true)
	return checked("round to int", v, o)
}

func WrappingRoundToInt[N constraints.Integer, X Number[X]](x X) N {
	v, _ := toInt[N](x, true)
	return v
}

func SaturatingRoundToInt[N constraints.Integer, X Number[X]](x X) N {
	v, o := toInt[N](x, true)
	return saturatingInt(v, o)
}

func OverflowingRoundToInt[N constraints.Integer, X Number[X]](x X) (N, bool) {
	v, o := toInt[N](x, true)
	return v, o != inRange
}

// ToI128 returns the integer part of x, truncated toward zero.
func ToI128[X Number[X]](x X) (I128, error) {
	neg, m := x.parts()
	m = m.Rsh(x.FracBits())
	if cmp := m.Cmp(minI128AsAbsU128); cmp > 0 || (!neg && cmp == 0) {
		return zeroI128, &OpError{Op: "to i128", Err: ErrOverflow}
	}
	if neg {
		return m.AsI128().Neg(), nil
	}
	return m.AsI128(), nil
}

func ToU128[X Number[X]](x X) (U128, error) {
	neg, m := x.parts()
	m = m.Rsh(x.FracBits())
	if neg && !m.IsZero() {
		return zeroU128, &OpError{Op: "to u128", Err: ErrOverflow}
	}
	return m, nil
}

// convert rescales x to Y's fractional bits, rounding to nearest with ties
// away from zero when bits are dropped.
func convert[Y Number[Y], X Number[X]](x X) (Y, overflow) {
	var y Y
	neg, m := x.parts()
	xf, yf := x.FracBits(), y.FracBits()

	var carry bool
	if yf >= xf {
		m, carry = shlCarry(m, yf-xf)
	} else {
		m = m.rshRound(xf - yf)
	}
	return y.withParts(neg, m, carry)
}

// Convert converts between fixed-point types, panicking with ErrOverflow if
// x is out of Y's range.
func Convert[Y Number[Y], X Number[X]](x X) Y {
	v, o := convert[Y](x)
	return must("convert", v, o)
}

func CheckedConvert[Y Number[Y], X Number[X]](x X) (Y, error) {
	v, o := convert[Y](x)
	return checked("convert", v, o)
}

func WrappingConvert[Y Number[Y], X Number[X]](x X) Y {
	v, _ := convert[Y](x)
	return v
}

func SaturatingConvert[Y Number[Y], X Number[X]](x X) Y {
	v, o := convert[Y](x)
	return saturating(v, o)
}

func OverflowingConvert[Y Number[Y], X Number[X]](x X) (Y, bool) {
	v, o := convert[Y](x)
	return v, o != inRange
}
