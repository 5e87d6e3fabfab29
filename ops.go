package fxp

// The operations in this file work on the sign and magnitude of their
// operands, so one implementation serves every width. They return the
// wrapped result; the policy methods in ops_gen.go decide what to do with
// the overflow.

func mulFixed[X Number[X]](x, y X) (X, overflow) {
	xn, xm := x.parts()
	yn, ym := y.parts()
	m, carry := mulRescale(xm, ym, x.FracBits())
	return x.withParts(xn != yn, m, carry)
}

// divFixed panics with ErrDivisionByZero if y is zero, whatever the policy.
func divFixed[X Number[X]](x, y X) (X, overflow) {
	xn, xm := x.parts()
	yn, ym := y.parts()
	if ym.IsZero() {
		panic(&OpError{Op: "div", Err: ErrDivisionByZero})
	}
	m, carry := quoRescale(xm, ym, x.FracBits())
	return x.withParts(xn != yn, m, carry)
}

func negFixed[X Number[X]](x X) (X, overflow) {
	neg, m := x.parts()
	return x.withParts(!neg && !m.IsZero(), m, false)
}

func absFixed[X Number[X]](x X) (X, overflow) {
	_, m := x.parts()
	return x.withParts(false, m, false)
}

func shlFixed[X Number[X]](x X, n int) (X, overflow) {
	checkShift(x, n)
	neg, m := x.parts()
	m, carry := shlCarry(m, uint(n))
	return x.withParts(neg, m, carry)
}

func checkShift[X Number[X]](x X, n int) {
	if n < 0 || uint(n) >= x.IntBits()+x.FracBits() {
		panic(&OpError{Op: "shift", Err: ErrInvalidShift})
	}
}

type roundMode int8

const (
	roundTrunc roundMode = iota
	roundAway
	roundHalfAway
)

// roundMag rounds a magnitude with frac fractional bits to a whole number.
func roundMag(m U128, frac uint, mode roundMode) (out U128, carry bool) {
	if frac == 0 {
		return m, false
	}
	mask := fracMask(frac)

	switch mode {
	case roundAway:
		if m.And(mask).IsZero() {
			return m, false
		}
		if frac >= 128 {
			return zeroU128, true
		}
		return m.AndNot(mask).AddCarry(oneU128.Lsh(frac))

	case roundHalfAway:
		m, carry = m.AddCarry(oneU128.Lsh(frac - 1))
		return m.AndNot(mask), carry
	}
	return m.AndNot(mask), false
}

func floorFixed[X Number[X]](x X) (X, overflow) {
	neg, m := x.parts()
	mode := roundTrunc
	if neg {
		mode = roundAway
	}
	m, carry := roundMag(m, x.FracBits(), mode)
	return x.withParts(neg, m, carry)
}

func ceilFixed[X Number[X]](x X) (X, overflow) {
	neg, m := x.parts()
	mode := roundAway
	if neg {
		mode = roundTrunc
	}
	m, carry := roundMag(m, x.FracBits(), mode)
	return x.withParts(neg, m, carry)
}

func roundFixed[X Number[X]](x X) (X, overflow) {
	neg, m := x.parts()
	m, carry := roundMag(m, x.FracBits(), roundHalfAway)
	return x.withParts(neg, m, carry)
}
