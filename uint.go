package fxp

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Uint is an unsigned fixed-point number stored in a native integer T, with F
// fractional bits. Its value is Bits() / 2^F.
type Uint[T constraints.Unsigned, F Frac] struct {
	bits T
}

func UintFromBits[T constraints.Unsigned, F Frac](raw T) Uint[T, F] {
	return Uint[T, F]{bits: raw}
}

func (x Uint[T, F]) Bits() T { return x.bits }

func (x Uint[T, F]) width() uint { return uint(unsafe.Sizeof(x.bits)) * 8 }

func (x Uint[T, F]) FracBits() uint { return checkFrac[F](x.width()) }
func (x Uint[T, F]) IntBits() uint  { return x.width() - x.FracBits() }
func (x Uint[T, F]) Signed() bool   { return false }

func (x Uint[T, F]) Min() Uint[T, F]   { return Uint[T, F]{} }
func (x Uint[T, F]) Max() Uint[T, F]   { return Uint[T, F]{bits: ^T(0)} }
func (x Uint[T, F]) Delta() Uint[T, F] { return Uint[T, F]{bits: 1} }

// IntPart returns x with the fractional bits cleared.
func (x Uint[T, F]) IntPart() Uint[T, F] {
	f := x.FracBits()
	if f == x.width() {
		return Uint[T, F]{}
	}
	return Uint[T, F]{bits: x.bits &^ (T(1)<<f - 1)}
}

func (x Uint[T, F]) FracPart() Uint[T, F] {
	f := x.FracBits()
	if f == x.width() {
		return x
	}
	return Uint[T, F]{bits: x.bits & (T(1)<<f - 1)}
}

func (x Uint[T, F]) IsZero() bool { return x.bits == 0 }

func (x Uint[T, F]) Sign() int {
	if x.bits == 0 {
		return 0
	}
	return 1
}

func (x Uint[T, F]) Cmp(y Uint[T, F]) int {
	if x.bits < y.bits {
		return -1
	} else if x.bits > y.bits {
		return 1
	}
	return 0
}

func (x Uint[T, F]) add(y Uint[T, F]) (Uint[T, F], overflow) {
	r := x.bits + y.bits
	if r < x.bits {
		return Uint[T, F]{bits: r}, overflowHigh
	}
	return Uint[T, F]{bits: r}, inRange
}

func (x Uint[T, F]) sub(y Uint[T, F]) (Uint[T, F], overflow) {
	r := x.bits - y.bits
	if x.bits < y.bits {
		return Uint[T, F]{bits: r}, overflowLow
	}
	return Uint[T, F]{bits: r}, inRange
}

// Shr returns x >> n. It panics with ErrInvalidShift unless 0 <= n < width.
func (x Uint[T, F]) Shr(n int) Uint[T, F] {
	if n < 0 || uint(n) >= x.width() {
		panic(&OpError{Op: "shift", Err: ErrInvalidShift})
	}
	return Uint[T, F]{bits: x.bits >> uint(n)}
}

func (x Uint[T, F]) parts() (neg bool, mag U128) {
	return false, U128{lo: uint64(x.bits)}
}

func (x Uint[T, F]) withParts(neg bool, mag U128, carry bool) (Uint[T, F], overflow) {
	v := T(mag.lo)
	if neg {
		v = -v
	}
	out := Uint[T, F]{bits: v}

	if neg && (carry || !mag.IsZero()) {
		return out, overflowLow
	} else if carry || mag.hi != 0 || mag.lo > uint64(^T(0)) {
		return out, overflowHigh
	}
	return out, inRange
}

func (x Uint[T, F]) withRandom(src RandSource) Uint[T, F] {
	return Uint[T, F]{bits: T(src.Uint64())}
}

func (x Uint[T, F]) appendBinary(dst []byte) []byte {
	return appendRaw(dst, uint64(x.bits), x.width())
}

func (x Uint[T, F]) fromBinary(b []byte) (Uint[T, F], error) {
	raw, err := readRaw(b, x.width())
	if err != nil {
		return x, err
	}
	return Uint[T, F]{bits: T(raw)}, nil
}
