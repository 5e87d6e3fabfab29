package fxp

// parseFixed parses s as [+-]?digits[.digits], where either side of the
// point may be empty but not both. The result is rounded to the nearest
// representable value, with ties to even. Out of range input yields the
// value modulo 2^width and an overflow.
func parseFixed[X Number[X]](s string) (x X, o overflow, err error) {
	frac := x.FracBits()
	in := s

	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var (
		ip       U128
		carry    bool
		sawDigit bool
	)
	for len(s) > 0 && s[0] != '.' {
		c := s[0]
		if c < '0' || c > '9' {
			return x, inRange, &ParseError{Input: in, Err: ErrSyntax}
		}
		var c2 bool
		ip, c2 = ip.mulAdd64(10, uint64(c-'0'))
		carry = carry || c2
		sawDigit = true
		s = s[1:]
	}

	var (
		digits [maxParseDigits]byte
		n      int
		sticky bool
	)
	if len(s) > 0 {
		s = s[1:] // '.'
		for ; len(s) > 0; s = s[1:] {
			c := s[0]
			if c < '0' || c > '9' {
				return x, inRange, &ParseError{Input: in, Err: ErrSyntax}
			}
			sawDigit = true
			if n < len(digits) {
				digits[n] = c - '0'
				n++
			} else if c != '0' {
				sticky = true
			}
		}
	}
	if !sawDigit {
		return x, inRange, &ParseError{Input: in, Err: ErrSyntax}
	}

	m, c2 := shlCarry(ip, frac)
	carry = carry || c2

	if n > 0 {
		f, half, rest := decimalToBinary(digits[:n], frac, sticky)
		m = m.Or(f)
		if half && (rest || m.lo&1 != 0) {
			m, c2 = m.AddCarry(oneU128)
			carry = carry || c2
		}
	}

	x, o = x.withParts(neg, m, carry)
	return x, o, nil
}

// decimalToBinary converts the decimal fraction 0.d[0]d[1]... to frac binary
// digits by repeated doubling. half reports that the discarded remainder is
// at least one half, and rest that it is more than that. sticky records
// non-zero digits that were dropped after the last element of d.
//
// d must hold at least frac+1 digits if any were dropped: every midpoint
// between two frac-bit values has an exact decimal expansion of frac+1
// digits, so truncating there cannot move the value across one.
func decimalToBinary(d []byte, frac uint, sticky bool) (f U128, half, rest bool) {
	for i := uint(0); i < frac; i++ {
		f = f.Lsh(1)
		if doubleDecimal(d) {
			f.lo |= 1
		}
	}

	if half = doubleDecimal(d); !half {
		return f, false, false
	}
	rest = sticky
	for _, c := range d {
		if c != 0 {
			rest = true
			break
		}
	}
	return f, half, rest
}

// doubleDecimal doubles the decimal fraction d in place and reports the
// integer digit that carried out of it.
func doubleDecimal(d []byte) bool {
	var carry byte
	for i := len(d) - 1; i >= 0; i-- {
		v := d[i]*2 + carry
		carry = v / 10
		d[i] = v % 10
	}
	return carry != 0
}

// Parse converts s to X. It returns a *ParseError wrapping ErrSyntax if s is
// malformed, or ErrOverflow if its value is out of range.
func Parse[X Number[X]](s string) (X, error) {
	x, o, err := parseFixed[X](s)
	if err != nil {
		return x, err
	}
	if o != inRange {
		var zero X
		return zero, &ParseError{Input: s, Err: ErrOverflow}
	}
	return x, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse[X Number[X]](s string) X {
	x, err := Parse[X](s)
	if err != nil {
		panic(err)
	}
	return x
}

// SaturatingParse is like Parse, but out of range values are clamped to the
// range of X instead of failing.
func SaturatingParse[X Number[X]](s string) (X, error) {
	x, o, err := parseFixed[X](s)
	if err != nil {
		return x, err
	}
	return saturating(x, o), nil
}

// WrappingParse is like Parse, but out of range values wrap modulo 2^width.
func WrappingParse[X Number[X]](s string) (X, error) {
	x, _, err := parseFixed[X](s)
	return x, err
}

func OverflowingParse[X Number[X]](s string) (x X, overflowed bool, err error) {
	x, o, err := parseFixed[X](s)
	return x, o != inRange, err
}
