package fxp

import (
	"encoding/binary"
	"fmt"
)

// Uint128 is an unsigned fixed-point number stored in a U128, with F
// fractional bits.
type Uint128[F Frac] struct {
	bits U128
}

func Uint128FromBits[F Frac](raw U128) Uint128[F] {
	return Uint128[F]{bits: raw}
}

func (x Uint128[F]) Bits() U128 { return x.bits }

func (x Uint128[F]) FracBits() uint { return checkFrac[F](128) }
func (x Uint128[F]) IntBits() uint  { return 128 - x.FracBits() }
func (x Uint128[F]) Signed() bool   { return false }

func (x Uint128[F]) Min() Uint128[F]   { return Uint128[F]{} }
func (x Uint128[F]) Max() Uint128[F]   { return Uint128[F]{bits: MaxU128} }
func (x Uint128[F]) Delta() Uint128[F] { return Uint128[F]{bits: oneU128} }

func (x Uint128[F]) IntPart() Uint128[F] {
	return Uint128[F]{bits: x.bits.AndNot(fracMask(x.FracBits()))}
}

func (x Uint128[F]) FracPart() Uint128[F] {
	return Uint128[F]{bits: x.bits.And(fracMask(x.FracBits()))}
}

func (x Uint128[F]) IsZero() bool { return x.bits.IsZero() }

func (x Uint128[F]) Sign() int {
	if x.bits.IsZero() {
		return 0
	}
	return 1
}

func (x Uint128[F]) Cmp(y Uint128[F]) int { return x.bits.Cmp(y.bits) }

func (x Uint128[F]) add(y Uint128[F]) (Uint128[F], overflow) {
	r, carry := x.bits.AddCarry(y.bits)
	if carry {
		return Uint128[F]{bits: r}, overflowHigh
	}
	return Uint128[F]{bits: r}, inRange
}

func (x Uint128[F]) sub(y Uint128[F]) (Uint128[F], overflow) {
	r := x.bits.Sub(y.bits)
	if x.bits.LessThan(y.bits) {
		return Uint128[F]{bits: r}, overflowLow
	}
	return Uint128[F]{bits: r}, inRange
}

// Shr returns x >> n. It panics with ErrInvalidShift unless 0 <= n < 128.
func (x Uint128[F]) Shr(n int) Uint128[F] {
	if n < 0 || n >= 128 {
		panic(&OpError{Op: "shift", Err: ErrInvalidShift})
	}
	return Uint128[F]{bits: x.bits.Rsh(uint(n))}
}

func (x Uint128[F]) parts() (neg bool, mag U128) { return false, x.bits }

func (x Uint128[F]) withParts(neg bool, mag U128, carry bool) (Uint128[F], overflow) {
	v := mag
	if neg {
		v = v.Neg()
	}
	out := Uint128[F]{bits: v}

	if neg && (carry || !mag.IsZero()) {
		return out, overflowLow
	} else if carry {
		return out, overflowHigh
	}
	return out, inRange
}

func (x Uint128[F]) withRandom(src RandSource) Uint128[F] {
	return Uint128[F]{bits: RandU128(src)}
}

func (x Uint128[F]) appendBinary(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint64(dst, x.bits.hi)
	return binary.BigEndian.AppendUint64(dst, x.bits.lo)
}

func (x Uint128[F]) fromBinary(b []byte) (Uint128[F], error) {
	hi, lo, err := readRaw128(b)
	if err != nil {
		return x, err
	}
	return Uint128[F]{bits: U128{hi: hi, lo: lo}}, nil
}

func readRaw128(b []byte) (hi, lo uint64, err error) {
	if len(b) != 16 {
		return 0, 0, fmt.Errorf("fxp: binary value has %d bytes, want 16", len(b))
	}
	return binary.BigEndian.Uint64(b), binary.BigEndian.Uint64(b[8:]), nil
}
