package fxp

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer. It is the raw storage of Uint128 and
// the magnitude type shared by every fixed-point operation.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	v, over, err := OverflowingParse[Uint128[F0]](s)
	if err != nil {
		return out, false, err
	}
	if over {
		return MaxU128, false, nil
	}
	return v.Bits(), true, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		default:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		}

	case 32:
		var w [4]uint64
		for i := 0; i < len(words); i++ {
			w[i] = uint64(words[i])
		}
		return U128{hi: w[3]<<32 | w[2], lo: w[1]<<32 | w[0]}, true

	default:
		panic("fxp: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	var buf [40]byte
	return string(appendU128(buf[:0], u))
}

func (u U128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Add(b, &lo)
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsFloat64 returns the nearest float64 to u, rounding ties to even.
func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	top, shift := u.top64()
	return float64(top) * pow2(int(shift))
}

// AsFloat32 returns the nearest float32 to u, rounding ties to even. Values
// of 2^128 - 2^103 and above round to +Inf.
func (u U128) AsFloat32() float32 {
	if u.hi == 0 {
		return float32(u.lo)
	}
	top, shift := u.top64()
	return float32(float64(float32(top)) * pow2(int(shift)))
}

// top64 returns the 64 most significant bits of u (which must have hi != 0)
// with a sticky low bit recording whether any discarded bit was set, and the
// number of bits discarded. Converting the result to a float rounds exactly
// as converting u would.
func (u U128) top64() (top uint64, shift uint) {
	shift = 64 - uint(bits.LeadingZeros64(u.hi))
	top = u.Rsh(shift).lo
	if u.lo<<(64-shift) != 0 {
		top |= 1
	}
	return top, shift
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports wehether i can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

// Bit returns the value of the i'th bit of u.
func (u U128) Bit(i uint) uint {
	if i < 64 {
		return uint(u.lo>>i) & 1
	} else if i < 128 {
		return uint(u.hi>>(i-64)) & 1
	}
	return 0
}

// BitLen returns the number of bits required to represent u.
func (u U128) BitLen() uint {
	return 128 - u.LeadingZeros()
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

// AddCarry returns u+n and whether the sum overflowed 128 bits.
func (u U128) AddCarry(n U128) (v U128, carry bool) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, c = bits.Add64(u.hi, n.hi, c)
	return v, c != 0
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// Neg returns the two's complement negation of u, modulo 2^128.
func (u U128) Neg() U128 {
	return U128{hi: ^u.hi, lo: ^u.lo}.Inc()
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

// Lsh returns u << n. Shifts of 128 or more produce 0.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh returns u >> n. Shifts of 128 or more produce 0.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}

	return v
}

// Mul returns the product of two U128s, wrapping modulo 2^128.
func (u U128) Mul(n U128) (dest U128) {
	hi, lo := bits.Mul64(u.lo, n.lo)
	dest.lo = lo
	dest.hi = hi + u.hi*n.lo + u.lo*n.hi
	return dest
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// U128 does not support big.Int.DivMod()-style Euclidean division.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.lo == 0 && by.hi == 0 {
		panic(&OpError{Op: "u128 quo", Err: ErrDivisionByZero})
	}

	if by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set if by.hi is 0:
		q.lo, r.lo = quorem128by64(u.hi, u.lo, by.lo, &q.hi)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	uLeading0 := u.LeadingZeros()
	return quorem128bin(u, by, uLeading0, byLeading0)
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	} else {
		return uint(bits.LeadingZeros64(u.hi))
	}
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	} else {
		return uint(bits.TrailingZeros64(u.lo))
	}
}

// quorem128by64 divides the 128-bit value (u1, u0) by v. The high word of
// the quotient is written to qhi; the low word and the remainder are
// returned.
func quorem128by64(u1, u0, v uint64, qhi *uint64) (qlo, r uint64) {
	*qhi = u1 / v
	qlo, r = bits.Div64(u1%v, u0, v)
	return qlo, r
}

func quorem128bin(u, by U128, uLeading0, byLeading0 uint) (q, r U128) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		// {{{ Rsh(1)
		by.lo = (by.lo >> 1) | (by.hi << 63)
		by.hi = by.hi >> 1
		// }}}

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("fxp: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
