package fxp

import (
	"fmt"
	"math/bits"
)

const (
	pow10Chunk     = 10000000000000000000 // 10^19, the largest power of 10 in a uint64
	pow10ChunkSize = 19
)

// maxTextLen is the longest decimal any type can produce: a sign, 39 integer
// digits, the point and 128 fractional digits.
const maxTextLen = 1 + 39 + 1 + 128

// appendU128 appends the decimal digits of u.
func appendU128(dst []byte, u U128) []byte {
	if u.hi == 0 {
		return appendUint64(dst, u.lo)
	}

	// At most three chunks of 19 digits.
	var chunks [3]uint64
	n := 0
	for u.hi != 0 {
		var r uint64
		u.hi, r = bits.Div64(0, u.hi, pow10Chunk)
		u.lo, r = bits.Div64(r, u.lo, pow10Chunk)
		chunks[n] = r
		n++
	}
	dst = appendUint64(dst, u.lo)
	for n > 0 {
		n--
		dst = appendPadded(dst, chunks[n])
	}
	return dst
}

func appendUint64(dst []byte, v uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for v >= 10 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	buf[i] = byte('0' + v)
	return append(dst, buf[i:]...)
}

// appendPadded appends v as exactly 19 digits.
func appendPadded(dst []byte, v uint64) []byte {
	var buf [pow10ChunkSize]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:]...)
}

// appendFixed appends the shortest decimal representation of x that parses
// back to x.
func appendFixed[X Number[X]](dst []byte, x X) []byte {
	neg, m := x.parts()
	frac := x.FracBits()
	if neg {
		dst = append(dst, '-')
	}

	dst = appendU128(dst, m.Rsh(frac))
	if f := m.And(fracMask(frac)); !f.IsZero() {
		dst = append(dst, '.')
		dst = appendFrac(dst, f, frac)
	}
	return dst
}

// appendFrac appends the digits of the shortest decimal fraction that rounds
// to f/2^frac, for 0 < f < 2^frac.
//
// After k digits D, the exact value is D/10^k + r/(2^frac * 10^k). D is a
// valid rendering if it is closer than half a unit in the last place of the
// fixed-point value, that is 2r < 10^k; D+1 is valid if 2(2^frac - r) < 10^k.
// The expansion is exact after frac digits, so the loop terminates.
func appendFrac(dst []byte, f U128, frac uint) []byte {
	var digits [maxFracBits]byte
	var (
		r     = U256From128(f)
		one   = U256From64(1).Lsh(frac)
		mask  = one.Dec()
		scale = U256From64(1)
		limit = U256From64(1).Lsh(200)
	)

	for k := 0; k < len(digits); k++ {
		r = r.Mul64(10)
		digits[k] = byte(r.Rsh(frac).AsUint64())
		r = r.And(mask)

		if scale.LessThan(limit) {
			scale = scale.Mul64(10)
		}

		twiceDown := r.Lsh(1)
		twiceUp := one.Sub(r).Lsh(1)
		down := twiceDown.LessThan(scale)
		up := twiceUp.LessThan(scale)

		if down && (!up || twiceDown.LessOrEqualTo(twiceUp)) {
			return appendDigits(dst, digits[:k+1])
		} else if up {
			// 0.99... never rounds up to 1: the gap to 1 is a whole unit.
			i := k
			for digits[i] == 9 {
				digits[i] = 0
				i--
			}
			digits[i]++
			return appendDigits(dst, digits[:k+1])
		}
	}
	return appendDigits(dst, digits[:])
}

func appendDigits(dst []byte, digits []byte) []byte {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	for _, d := range digits[:n] {
		dst = append(dst, '0'+d)
	}
	return dst
}

func appendJSON[X Number[X]](dst []byte, x X) []byte {
	dst = append(dst, '"')
	dst = appendFixed(dst, x)
	return append(dst, '"')
}

// unmarshalJSON accepts a quoted decimal or a bare JSON number without an
// exponent. null leaves x unchanged.
func unmarshalJSON[X Number[X]](x X, b []byte) (X, error) {
	if string(b) == "null" {
		return x, nil
	}
	if len(b) > 0 && b[0] == '"' {
		ln := len(b)
		if ln < 2 || b[ln-1] != '"' {
			return x, fmt.Errorf("fxp: invalid JSON string %q", string(b))
		}
		b = b[1 : ln-1]
	}
	return Parse[X](string(b))
}
