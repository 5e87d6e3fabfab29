package fxp

import (
	"fmt"
	"math/big"
)

// I128 is a signed two's complement 128-bit integer. It is the raw storage
// of Int128.
type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF
)

// I128FromString creates a I128 from a string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I128FromString(s string) (out I128, accurate bool, err error) {
	v, over, err := OverflowingParse[Int128[F0]](s)
	if err != nil {
		return out, false, err
	}
	if over {
		if len(s) > 0 && s[0] == '-' {
			return MinI128, false, nil
		}
		return MaxI128, false, nil
	}
	return v.Bits(), true, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			out = MaxI128
		} else if cmp > 0 {
			out, accurate = MaxI128, false
		} else {
			out = u.AsI128()
		}

	} else {
		if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
			out = MinI128
		} else if cmp > 0 {
			out, accurate = MinI128, false
		} else {
			out = u.AsI128().Neg()
		}
	}

	return out, accurate
}

// RandI128 generates a signed 128-bit random integer from an external
// source, uniformly distributed over the whole range.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64(), lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	var buf [41]byte
	dst := buf[:0]
	if i.hi&signBit != 0 {
		dst = append(dst, '-')
	}
	return string(appendU128(dst, i.AbsU128()))
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	i.AbsU128().IntoBigInt(b)
	if i.hi&signBit != 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// AbsU128 returns the magnitude of i. Unlike Abs, it cannot overflow:
// the magnitude of MinI128 is 1<<127.
func (i I128) AbsU128() U128 {
	if i.hi&signBit != 0 {
		return i.AsU128().Neg()
	}
	return i.AsU128()
}

// IsU128 reports wehether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsFloat64 returns the nearest float64 to i, rounding ties to even.
func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.AbsU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	} else {
		return i.hi == 0 && i.lo <= maxInt64
	}
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	return i.AsU128().Inc().AsI128()
}

func (i I128) Dec() (v I128) {
	return i.AsU128().Dec().AsI128()
}

// Add returns i+n, wrapping on overflow as per the Go spec.
func (i I128) Add(n I128) (v I128) {
	return i.AsU128().Add(n.AsU128()).AsI128()
}

// Sub returns i-n, wrapping on overflow as per the Go spec.
func (i I128) Sub(n I128) (out I128) {
	return i.AsU128().Sub(n.AsU128()).AsI128()
}

// Neg returns -i. Negating MinI128 wraps back to MinI128.
func (i I128) Neg() (v I128) {
	return i.AsU128().Neg().AsI128()
}

// Abs returns |i|. The absolute value of MinI128 wraps back to MinI128; see
// AbsU128 for a conversion that cannot overflow.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Lsh returns i << n, wrapping as per the Go spec.
func (i I128) Lsh(n uint) I128 {
	return i.AsU128().Lsh(n).AsI128()
}

// Rsh returns i >> n using an arithmetic (sign-extending) shift.
func (i I128) Rsh(n uint) (v I128) {
	if i.hi&signBit == 0 {
		return i.AsU128().Rsh(n).AsI128()
	}
	// Shift the complement so the vacated bits fill with ones.
	return i.Not().AsU128().Rsh(n).AsI128().Not()
}

func (i I128) Not() I128 {
	return I128{hi: ^i.hi, lo: ^i.lo}
}

// Cmp compares u to n and returns:
//
//	< 0 if x <  y
//	  0 if x == y
//	> 0 if x >  y
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	return i.Cmp(n) >= 0
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	return i.Cmp(n) <= 0
}

// Mul returns the product of two I128s.
//
// Overflow should wrap around, as per the Go spec.
func (i I128) Mul(n I128) (dest I128) {
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
func (i I128) QuoRem(by I128) (q, r I128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI128) {
		qSign, rSign = -1, -1
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
	}

	qu, ru := i.AbsU128().QuoRem(by.AbsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

func (u I128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *I128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("fxp: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
