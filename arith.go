package fxp

import "math/bits"

// mul128to256 returns the full 256-bit product of u and v.
func mul128to256(u, v U128) (out U256) {
	var c uint64
	out.lm, out.lo = bits.Mul64(u.lo, v.lo)
	out.hi, out.hm = bits.Mul64(u.hi, v.hi)

	thi, tlo := bits.Mul64(u.hi, v.lo)
	out.lm, c = bits.Add64(out.lm, tlo, 0)
	out.hm, c = bits.Add64(out.hm, thi, c)
	out.hi += c

	thi, tlo = bits.Mul64(u.lo, v.hi)
	out.lm, c = bits.Add64(out.lm, tlo, 0)
	out.hm, c = bits.Add64(out.hm, thi, c)
	out.hi += c

	return out
}

// rshRound returns u >> n, rounded to nearest with ties away from zero. u is
// a magnitude, so rounding the half bit up moves away from zero.
func (u U128) rshRound(n uint) U128 {
	if n == 0 {
		return u
	}
	half := u.Bit(n - 1)
	u = u.Rsh(n)
	if half != 0 {
		u = u.Inc()
	}
	return u
}

func (u U256) rshRound(n uint) U256 {
	if n == 0 {
		return u
	}
	half := u.Bit(n - 1)
	u = u.Rsh(n)
	if half != 0 {
		u = u.Inc()
	}
	return u
}

// mulRescale returns round(a*b / 2^frac). carry is set if the result does not
// fit in 128 bits, in which case the low 128 bits are returned.
func mulRescale(a, b U128, frac uint) (out U128, carry bool) {
	if a.hi == 0 && b.hi == 0 {
		hi, lo := bits.Mul64(a.lo, b.lo)
		return U128{hi: hi, lo: lo}.rshRound(frac), false
	}
	p := mul128to256(a, b).rshRound(frac)
	return p.AsU128(), !p.IsU128()
}

// quoRescale returns round(a*2^frac / b), which must have b != 0. carry is
// set if the result does not fit in 128 bits.
func quoRescale(a, b U128, frac uint) (out U128, carry bool) {
	if frac <= a.LeadingZeros() {
		q, r := a.Lsh(frac).QuoRem(b)
		if r.GreaterOrEqualTo(b.Sub(r)) {
			q = q.Inc()
		}
		return q, false
	}

	q, r := U256From128(a).Lsh(frac).QuoRem128(b)
	if r.GreaterOrEqualTo(b.Sub(r)) {
		q = q.Inc()
	}
	return q.AsU128(), !q.IsU128()
}

// shlCarry returns u << n and whether any set bit was shifted out.
func shlCarry(u U128, n uint) (out U128, carry bool) {
	if n >= 128 {
		return zeroU128, !u.IsZero()
	}
	return u.Lsh(n), u.LeadingZeros() < n
}

// mulAdd64 returns u*m + a and whether the result overflowed 128 bits.
func (u U128) mulAdd64(m, a uint64) (out U128, carry bool) {
	var c uint64
	hhi, hlo := bits.Mul64(u.hi, m)
	lhi, llo := bits.Mul64(u.lo, m)
	out.lo, c = bits.Add64(llo, a, 0)
	out.hi, c = bits.Add64(hlo, lhi, c)
	return out, hhi != 0 || c != 0
}

// fracMask returns a U128 with the low n bits set.
func fracMask(n uint) U128 {
	if n >= 128 {
		return MaxU128
	}
	return oneU128.Lsh(n).Dec()
}
