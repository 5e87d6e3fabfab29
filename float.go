package fxp

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	float64MantBits = 52
	float64ExpMask  = 0x7FF
	float64Bias     = 1023
)

// pow2 returns 2^n for the range of exponents a 128-bit magnitude and up to
// 128 fractional bits can produce.
func pow2(n int) float64 {
	return math.Float64frombits(uint64(n+float64Bias) << float64MantBits)
}

func toFloat64[X Number[X]](x X) float64 {
	neg, m := x.parts()
	f := m.AsFloat64() * pow2(-int(x.FracBits()))
	if neg {
		return -f
	}
	return f
}

// toFloat32 scales in float64 after a single rounding to 24 bits. The scaling
// is exact: results below the float32 normal range are multiples of 2^-128,
// which float32 subnormals represent exactly.
func toFloat32[X Number[X]](x X) float32 {
	neg, m := x.parts()
	var f float64
	if m.hi == 0 {
		f = float64(float32(m.lo))
	} else {
		top, shift := m.top64()
		f = float64(float32(top)) * pow2(int(shift))
	}
	r := float32(f * pow2(-int(x.FracBits())))
	if neg {
		return -r
	}
	return r
}

// floatParts scales f by 2^frac and rounds it to an integer magnitude, with
// ties to even. ok is false if f is NaN or infinite.
func floatParts(f float64, frac uint) (neg bool, mag U128, carry, ok bool) {
	b := math.Float64bits(f)
	neg = b>>63 != 0
	exp := int(b>>float64MantBits) & float64ExpMask
	mant := b & (1<<float64MantBits - 1)

	switch exp {
	case float64ExpMask:
		return neg, mag, false, false
	case 0:
		exp = 1
	default:
		mant |= 1 << float64MantBits
	}

	// f is mant * 2^shift.
	shift := exp - float64Bias - float64MantBits + int(frac)
	if shift >= 0 {
		mag, carry = shlCarry(U128{lo: mant}, uint(shift))
		return neg, mag, carry, true
	}

	n := uint(-shift)
	if n >= 64 {
		// mant < 2^53, so the value is below one half.
		return neg, mag, false, true
	}
	q := mant >> n
	rem := mant & (1<<n - 1)
	half := uint64(1) << (n - 1)
	if rem > half || (rem == half && q&1 != 0) {
		q++
	}
	return neg, U128{lo: q}, false, true
}

func fromFloat[X Number[X], FL constraints.Float](f FL) (v X, o overflow, ok bool) {
	neg, m, carry, ok := floatParts(float64(f), v.FracBits())
	if !ok {
		return v, inRange, false
	}
	v, o = v.withParts(neg, m, carry)
	return v, o, true
}

func nonFinite(op string) error { return &OpError{Op: op, Err: ErrNonFiniteFloat} }

// FromFloat converts f to the nearest X, with ties to even. It panics with
// ErrOverflow if f is out of range and with ErrNonFiniteFloat if f is NaN or
// infinite.
func FromFloat[X Number[X], FL constraints.Float](f FL) X {
	v, o, ok := fromFloat[X](f)
	if !ok {
		panic(nonFinite("from float"))
	}
	return must("from float", v, o)
}

func CheckedFromFloat[X Number[X], FL constraints.Float](f FL) (X, error) {
	v, o, ok := fromFloat[X](f)
	if !ok {
		var zero X
		return zero, nonFinite("from float")
	}
	return checked("from float", v, o)
}

// WrappingFromFloat converts f to X modulo 2^width. NaN and infinities have
// no wrapped value, so they panic with ErrNonFiniteFloat.
func WrappingFromFloat[X Number[X], FL constraints.Float](f FL) X {
	v, _, ok := fromFloat[X](f)
	if !ok {
		panic(nonFinite("from float"))
	}
	return v
}

// SaturatingFromFloat clamps f to the range of X. Infinities saturate; NaN
// panics with ErrNonFiniteFloat.
func SaturatingFromFloat[X Number[X], FL constraints.Float](f FL) X {
	v, o, ok := fromFloat[X](f)
	if !ok {
		if math.IsNaN(float64(f)) {
			panic(nonFinite("from float"))
		} else if f > 0 {
			return v.Max()
		}
		return v.Min()
	}
	return saturating(v, o)
}

func OverflowingFromFloat[X Number[X], FL constraints.Float](f FL) (X, bool) {
	v, o, ok := fromFloat[X](f)
	if !ok {
		panic(nonFinite("from float"))
	}
	return v, o != inRange
}
