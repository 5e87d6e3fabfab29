package fxp

import (
	"math/big"
	"math/bits"
)

// U256 exists to implement just enough of a 256-bit integer to hold the
// full-precision product and pre-shifted dividend of two 128-bit fixed-point
// values.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256From128(in U128) U256 {
	hi, lo := in.Raw()
	return U256{lm: hi, lo: lo}
}

func U256From64(in uint64) U256 {
	return U256{lo: in}
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets inRange to 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 256 {
		return MaxU256, false
	}

	var w [4]uint64
	switch intSize {
	case 64:
		for i, word := range v.Bits() {
			w[i] = uint64(word)
		}
	case 32:
		for i, word := range v.Bits() {
			w[i/2] |= uint64(word) << (32 * uint(i%2))
		}
	default:
		panic("fxp: unsupported bit size")
	}
	return U256{hi: w[3], hm: w[2], lm: w[1], lo: w[0]}, true
}

func (u U256) IsZero() bool { return u == U256{} }

func (u U256) Add(n U256) (v U256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.lm, c = bits.Add64(u.lm, n.lm, c)
	v.hm, c = bits.Add64(u.hm, n.hm, c)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u U256) And(n U256) U256 {
	u.hi = u.hi & n.hi
	u.hm = u.hm & n.hm
	u.lm = u.lm & n.lm
	u.lo = u.lo & n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi &^ n.hi
	u.hm = u.hm &^ n.hm
	u.lm = u.lm &^ n.lm
	u.lo = u.lo &^ n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi | n.hi
	u.hm = u.hm | n.hm
	u.lm = u.lm | n.lm
	u.lo = u.lo | n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi ^ n.hi
	u.hm = u.hm ^ n.hm
	u.lm = u.lm ^ n.lm
	u.lo = u.lo ^ n.lo
	return u
}

func (u U256) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	for _, w := range [...]uint64{u.hm, u.lm, u.lo} {
		var word big.Int
		word.SetUint64(w)
		b.Lsh(b, 64)
		b.Or(b, &word)
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Bit returns the value of the i'th bit of u.
func (u U256) Bit(i uint) uint {
	switch {
	case i < 64:
		return uint(u.lo>>i) & 1
	case i < 128:
		return uint(u.lm>>(i-64)) & 1
	case i < 192:
		return uint(u.hm>>(i-128)) & 1
	case i < 256:
		return uint(u.hi>>(i-192)) & 1
	}
	return 0
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Inc() U256 { return u.Add(U256{lo: 1}) }

func (u U256) Dec() U256 { return u.Sub(U256{lo: 1}) }

func (u U256) Equal(v U256) bool            { return u.Cmp(v) == 0 }
func (u U256) GreaterThan(v U256) bool      { return u.Cmp(v) > 0 }
func (u U256) GreaterOrEqualTo(v U256) bool { return u.Cmp(v) >= 0 }
func (u U256) LessThan(v U256) bool         { return u.Cmp(v) < 0 }
func (u U256) LessOrEqualTo(v U256) bool    { return u.Cmp(v) <= 0 }

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}
	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}
	} else {
		return U256{}
	}
}

// Mul64 returns u*m, wrapping modulo 2^256.
func (u U256) Mul64(m uint64) (v U256) {
	var hi, c uint64
	hi, v.lo = bits.Mul64(u.lo, m)

	carry := hi
	hi, v.lm = bits.Mul64(u.lm, m)
	v.lm, c = bits.Add64(v.lm, carry, 0)
	carry = hi + c

	hi, v.hm = bits.Mul64(u.hm, m)
	v.hm, c = bits.Add64(v.hm, carry, 0)
	carry = hi + c

	v.hi = u.hi*m + carry
	return v
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic(&OpError{Op: "u256 quo", Err: ErrDivisionByZero})
	}

	if by.hi == 0 && by.hm == 0 && by.lm == 0 {
		var rlo uint64
		q, rlo = u.quoRem64(by.lo)
		return q, U256{lo: rlo}
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem256bin(u, by, u.LeadingZeros(), by.LeadingZeros())
}

// QuoRem128 divides u by a 128-bit divisor. The remainder is always less
// than the divisor, so it is returned as a U128.
func (u U256) QuoRem128(by U128) (q U256, r U128) {
	if by.hi == 0 {
		var rlo uint64
		q, rlo = u.quoRem64(by.lo)
		return q, U128{lo: rlo}
	}
	q, rr := u.QuoRem(U256From128(by))
	return q, rr.AsU128()
}

// quoRem64 performs schoolbook long division by a single word, most
// significant limb first.
func (u U256) quoRem64(by uint64) (q U256, r uint64) {
	if by == 0 {
		panic(&OpError{Op: "u256 quo", Err: ErrDivisionByZero})
	}
	q.hi, r = bits.Div64(0, u.hi, by)
	q.hm, r = bits.Div64(r, u.hm, by)
	q.lm, r = bits.Div64(r, u.lm, by)
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}

func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n == 64 {
		return U256{hm: u.hi, lm: u.hm, lo: u.lm}

	} else if n < 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n == 128 {
		return U256{lm: u.hi, lo: u.hm}

	} else if n < 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}

	} else if n == 192 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi >> (n - 192)}

	} else {
		return U256{}
	}
}

func (u U256) String() string {
	if u.hi == 0 && u.hm == 0 {
		return u.AsU128().String()
	}
	return u.AsBigInt().String()
}

func (u U256) Sub(n U256) (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == 0 && u.hm == 0 && u.lm == 0 }

func (u U256) AsU128() U128 { return U128FromRaw(u.lm, u.lo) }

func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

func quorem256bin(u, by U256, uLeading0, byLeading0 uint) (q, r U256) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}
