package fxp

import "encoding/binary"

// Int128 is a signed fixed-point number stored in an I128, with F fractional
// bits.
type Int128[F Frac] struct {
	bits I128
}

func Int128FromBits[F Frac](raw I128) Int128[F] {
	return Int128[F]{bits: raw}
}

func (x Int128[F]) Bits() I128 { return x.bits }

func (x Int128[F]) FracBits() uint { return checkFrac[F](128) }
func (x Int128[F]) IntBits() uint  { return 128 - x.FracBits() }
func (x Int128[F]) Signed() bool   { return true }

func (x Int128[F]) Min() Int128[F]   { return Int128[F]{bits: MinI128} }
func (x Int128[F]) Max() Int128[F]   { return Int128[F]{bits: MaxI128} }
func (x Int128[F]) Delta() Int128[F] { return Int128[F]{bits: I128{lo: 1}} }

// IntPart returns x with the fractional bits cleared, which is x rounded
// toward negative infinity. If F is 128 the result is 0.
func (x Int128[F]) IntPart() Int128[F] {
	f := x.FracBits()
	if f == 128 {
		return Int128[F]{}
	}
	return Int128[F]{bits: x.bits.AsU128().AndNot(fracMask(f)).AsI128()}
}

func (x Int128[F]) FracPart() Int128[F] {
	return Int128[F]{bits: x.bits.AsU128().And(fracMask(x.FracBits())).AsI128()}
}

func (x Int128[F]) IsZero() bool { return x.bits.IsZero() }
func (x Int128[F]) Sign() int    { return x.bits.Sign() }

func (x Int128[F]) Cmp(y Int128[F]) int { return x.bits.Cmp(y.bits) }

func (x Int128[F]) add(y Int128[F]) (Int128[F], overflow) {
	r := x.bits.Add(y.bits)
	if (x.bits.hi^r.hi)&(y.bits.hi^r.hi)&signBit != 0 {
		return Int128[F]{bits: r}, signedOverflow(x.bits.hi&signBit != 0)
	}
	return Int128[F]{bits: r}, inRange
}

func (x Int128[F]) sub(y Int128[F]) (Int128[F], overflow) {
	r := x.bits.Sub(y.bits)
	if (x.bits.hi^y.bits.hi)&(x.bits.hi^r.hi)&signBit != 0 {
		return Int128[F]{bits: r}, signedOverflow(x.bits.hi&signBit != 0)
	}
	return Int128[F]{bits: r}, inRange
}

// Shr returns x >> n, an arithmetic shift that rounds toward negative
// infinity. It panics with ErrInvalidShift unless 0 <= n < 128.
func (x Int128[F]) Shr(n int) Int128[F] {
	if n < 0 || n >= 128 {
		panic(&OpError{Op: "shift", Err: ErrInvalidShift})
	}
	return Int128[F]{bits: x.bits.Rsh(uint(n))}
}

func (x Int128[F]) parts() (neg bool, mag U128) {
	return x.bits.hi&signBit != 0, x.bits.AbsU128()
}

func (x Int128[F]) withParts(neg bool, mag U128, carry bool) (Int128[F], overflow) {
	v := mag.AsI128()
	if neg {
		v = v.Neg()
	}
	out := Int128[F]{bits: v}

	if cmp := mag.Cmp(minI128AsAbsU128); carry || cmp > 0 || (!neg && cmp == 0) {
		return out, signedOverflow(neg)
	}
	return out, inRange
}

func (x Int128[F]) withRandom(src RandSource) Int128[F] {
	return Int128[F]{bits: RandI128(src)}
}

func (x Int128[F]) appendBinary(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint64(dst, x.bits.hi)
	return binary.BigEndian.AppendUint64(dst, x.bits.lo)
}

func (x Int128[F]) fromBinary(b []byte) (Int128[F], error) {
	hi, lo, err := readRaw128(b)
	if err != nil {
		return x, err
	}
	return Int128[F]{bits: I128{hi: hi, lo: lo}}, nil
}
