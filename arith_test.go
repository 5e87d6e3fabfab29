package fxp

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMul128To256(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 50000; i++ {
		u1, u2 := randU128(), randU128()
		rb := new(big.Int).Mul(u1.AsBigInt(), u2.AsBigInt())
		rc := mul128to256(u1, u2).AsBigInt()
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

// bigRound divides n by d, rounding to nearest with ties away from zero. n and
// d must not be negative.
func bigRound(n, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Lsh(r, 1).Cmp(d) >= 0 {
		q.Add(q, big1)
	}
	return q
}

func TestMulRescale(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		a, b := randU128(), randU128()
		frac := uint(globalRNG.Intn(129))

		want := bigRound(new(big.Int).Mul(a.AsBigInt(), b.AsBigInt()), new(big.Int).Lsh(big1, frac))
		carry := want.Cmp(maxBigU128) > 0
		want.And(want, maxBigU128)

		out, c := mulRescale(a, b, frac)
		tt.MustEqual(want.String(), out.String(), "%s * %s >> %d", a, b, frac)
		tt.MustEqual(carry, c, "%s * %s >> %d", a, b, frac)
	}
}

func TestMulRescaleTies(t *testing.T) {
	for idx, tc := range []struct {
		a, b U128
		frac uint
		out  U128
	}{
		{u64(1), u64(1), 1, u64(1)}, // 0.5 rounds up
		{u64(3), u64(1), 1, u64(2)}, // 1.5 rounds up
		{u64(5), u64(1), 1, u64(3)}, // 2.5 rounds away, not to even
		{u64(1), u64(1), 2, u64(0)}, // 0.25 rounds down
		{u64(3), u64(1), 2, u64(1)}, // 0.75 rounds up
		{MaxU128, MaxU128, 128, MaxU128.Sub(u64(1))},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s>>%d", idx, tc.a, tc.b, tc.frac), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, carry := mulRescale(tc.a, tc.b, tc.frac)
			tt.MustAssert(!carry)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestQuoRescale(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		a, b := randU128(), randU128()
		if b.IsZero() {
			continue
		}
		frac := uint(globalRNG.Intn(129))

		want := bigRound(new(big.Int).Lsh(a.AsBigInt(), frac), b.AsBigInt())
		carry := want.Cmp(maxBigU128) > 0

		out, c := quoRescale(a, b, frac)
		tt.MustEqual(carry, c, "%s << %d / %s", a, frac, b)
		if !carry {
			tt.MustEqual(want.String(), out.String(), "%s << %d / %s", a, frac, b)
		}
	}
}

func TestQuoRescaleTies(t *testing.T) {
	for idx, tc := range []struct {
		a, b U128
		frac uint
		out  U128
	}{
		{u64(1), u64(2), 0, u64(1)},  // 0.5
		{u64(5), u64(2), 0, u64(3)},  // 2.5
		{u64(1), u64(3), 0, u64(0)},  // 0.333
		{u64(2), u64(3), 0, u64(1)},  // 0.666
		{u64(1), u64(3), 4, u64(5)},  // 16/3 = 5.333
		{u64(1), u64(32), 4, u64(1)}, // 16/32 = 0.5
		{MaxU128, MaxU128, 127, u128s("0x8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d/%s", idx, tc.a, tc.frac, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, carry := quoRescale(tc.a, tc.b, tc.frac)
			tt.MustAssert(!carry)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestShlCarry(t *testing.T) {
	for idx, tc := range []struct {
		u     U128
		n     uint
		out   U128
		carry bool
	}{
		{u64(1), 0, u64(1), false},
		{u64(1), 127, u128s("0x8000000000000000 0000000000000000"), false},
		{u64(2), 127, u64(0), true},
		{u64(3), 127, u128s("0x8000000000000000 0000000000000000"), true},
		{u64(0), 128, u64(0), false},
		{u64(1), 128, u64(0), true},
		{MaxU128, 1, MaxU128.Sub(u64(1)), true},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d", idx, tc.u, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, carry := shlCarry(tc.u, tc.n)
			tt.MustEqual(tc.out, out)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestMulAdd64(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		u := randU128()
		m, a := globalRNG.Uint64(), globalRNG.Uint64()

		want := new(big.Int).Mul(u.AsBigInt(), bigU64(m))
		want.Add(want, bigU64(a))
		carry := want.Cmp(maxBigU128) > 0
		want.And(want, maxBigU128)

		out, c := u.mulAdd64(m, a)
		tt.MustEqual(want.String(), out.String())
		tt.MustEqual(carry, c)
	}
}

func TestFracMask(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u64(0), fracMask(0))
	tt.MustEqual(u64(0xF), fracMask(4))
	tt.MustEqual(U128{lo: maxUint64}, fracMask(64))
	tt.MustEqual(U128{hi: 1, lo: maxUint64}, fracMask(65))
	tt.MustEqual(MaxU128, fracMask(128))
}

var (
	BenchU128In1, BenchU128In2 = U128{hi: 1234, lo: 5678}, U128{hi: 9123, lo: 5678}
	BenchU256Result            U256
)

func BenchmarkMul128to256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = mul128to256(BenchU128In1, BenchU128In2)
	}
}

func BenchmarkMulRescale(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result, _ = mulRescale(BenchU128In1, BenchU128In2, 64)
	}
}

func BenchmarkQuoRescale(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result, _ = quoRescale(BenchU128In1, BenchU128In2, 64)
	}
}
