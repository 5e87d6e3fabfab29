package fxp

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Int is a signed fixed-point number stored in a native integer T, with F
// fractional bits. Its value is Bits() / 2^F.
//
// The zero value is 0. Int is a value type; all operations return new values.
type Int[T constraints.Signed, F Frac] struct {
	bits T
}

// IntFromBits returns the Int whose raw representation is raw.
func IntFromBits[T constraints.Signed, F Frac](raw T) Int[T, F] {
	return Int[T, F]{bits: raw}
}

// Bits returns the raw scaled integer.
func (x Int[T, F]) Bits() T { return x.bits }

func (x Int[T, F]) width() uint { return uint(unsafe.Sizeof(x.bits)) * 8 }

func (x Int[T, F]) FracBits() uint { return checkFrac[F](x.width()) }
func (x Int[T, F]) IntBits() uint  { return x.width() - x.FracBits() }
func (x Int[T, F]) Signed() bool   { return true }

func (x Int[T, F]) Min() Int[T, F] {
	return Int[T, F]{bits: T(-1) << (x.width() - 1)}
}

func (x Int[T, F]) Max() Int[T, F] {
	return Int[T, F]{bits: ^(T(-1) << (x.width() - 1))}
}

// Delta returns the smallest positive value, 2^-F.
func (x Int[T, F]) Delta() Int[T, F] { return Int[T, F]{bits: 1} }

// IntPart returns x with the fractional bits cleared, which is x rounded
// toward negative infinity. If F equals the storage width the result is 0.
func (x Int[T, F]) IntPart() Int[T, F] {
	f := x.FracBits()
	if f == x.width() {
		return Int[T, F]{}
	}
	return Int[T, F]{bits: x.bits &^ (T(1)<<f - 1)}
}

// FracPart returns the fractional bits of x as a non-negative raw pattern.
func (x Int[T, F]) FracPart() Int[T, F] {
	f := x.FracBits()
	if f == x.width() {
		return x
	}
	return Int[T, F]{bits: x.bits & (T(1)<<f - 1)}
}

func (x Int[T, F]) IsZero() bool { return x.bits == 0 }

func (x Int[T, F]) Sign() int {
	if x.bits < 0 {
		return -1
	} else if x.bits > 0 {
		return 1
	}
	return 0
}

func (x Int[T, F]) Cmp(y Int[T, F]) int {
	if x.bits < y.bits {
		return -1
	} else if x.bits > y.bits {
		return 1
	}
	return 0
}

func (x Int[T, F]) add(y Int[T, F]) (Int[T, F], overflow) {
	r := x.bits + y.bits
	if (x.bits^r)&(y.bits^r) < 0 {
		return Int[T, F]{bits: r}, signedOverflow(x.bits < 0)
	}
	return Int[T, F]{bits: r}, inRange
}

func (x Int[T, F]) sub(y Int[T, F]) (Int[T, F], overflow) {
	r := x.bits - y.bits
	if (x.bits^y.bits)&(x.bits^r) < 0 {
		return Int[T, F]{bits: r}, signedOverflow(x.bits < 0)
	}
	return Int[T, F]{bits: r}, inRange
}

// signedOverflow reports the direction of an add or sub overflow, which is
// always the sign of the left operand.
func signedOverflow(neg bool) overflow {
	if neg {
		return overflowLow
	}
	return overflowHigh
}

// Shr returns x >> n, an arithmetic shift that rounds toward negative
// infinity. It panics with ErrInvalidShift unless 0 <= n < width.
func (x Int[T, F]) Shr(n int) Int[T, F] {
	if n < 0 || uint(n) >= x.width() {
		panic(&OpError{Op: "shift", Err: ErrInvalidShift})
	}
	return Int[T, F]{bits: x.bits >> uint(n)}
}

func (x Int[T, F]) parts() (neg bool, mag U128) {
	v := int64(x.bits)
	if v < 0 {
		return true, U128{lo: uint64(-v)}
	}
	return false, U128{lo: uint64(v)}
}

func (x Int[T, F]) withParts(neg bool, mag U128, carry bool) (Int[T, F], overflow) {
	v := T(mag.lo)
	if neg {
		v = -v
	}
	out := Int[T, F]{bits: v}

	limit := uint64(1) << (x.width() - 1)
	if carry || mag.hi != 0 || mag.lo > limit || (!neg && mag.lo == limit) {
		return out, signedOverflow(neg)
	}
	return out, inRange
}

func (x Int[T, F]) withRandom(src RandSource) Int[T, F] {
	return Int[T, F]{bits: T(src.Uint64())}
}

func (x Int[T, F]) appendBinary(dst []byte) []byte {
	return appendRaw(dst, uint64(x.bits), x.width())
}

func (x Int[T, F]) fromBinary(b []byte) (Int[T, F], error) {
	raw, err := readRaw(b, x.width())
	if err != nil {
		return x, err
	}
	return Int[T, F]{bits: T(raw)}, nil
}

// appendRaw appends the low width bits of raw in big-endian order.
func appendRaw(dst []byte, raw uint64, width uint) []byte {
	switch width {
	case 8:
		return append(dst, byte(raw))
	case 16:
		return binary.BigEndian.AppendUint16(dst, uint16(raw))
	case 32:
		return binary.BigEndian.AppendUint32(dst, uint32(raw))
	default:
		return binary.BigEndian.AppendUint64(dst, raw)
	}
}

func readRaw(b []byte, width uint) (uint64, error) {
	if uint(len(b)) != width/8 {
		return 0, fmt.Errorf("fxp: binary value has %d bytes, want %d", len(b), width/8)
	}
	switch width {
	case 8:
		return uint64(b[0]), nil
	case 16:
		return uint64(binary.BigEndian.Uint16(b)), nil
	case 32:
		return uint64(binary.BigEndian.Uint32(b)), nil
	default:
		return binary.BigEndian.Uint64(b), nil
	}
}
