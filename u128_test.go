package fxp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

func randU128() U128 {
	u := U128{lo: globalRNG.Uint64()}
	if globalRNG.Intn(2) == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		u.hi = globalRNG.Uint64()
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
		carry   bool
	}{
		{u64(1), u64(2), u64(3), false},
		{MaxU128, u64(1), u64(0), true}, // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616"), false}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230"), false},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))

			v, carry := tc.a.AddCarry(tc.b)
			tt.MustEqual(tc.c, v)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestU128AsFloat64Random(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		num := randU128()
		want, _ := new(big.Float).SetInt(num.AsBigInt()).Float64()
		tt.MustEqual(want, num.AsFloat64(), "%s", num)
	}
}

func TestU128AsFloat32Random(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		num := randU128()
		want, _ := new(big.Float).SetInt(num.AsBigInt()).Float32()
		tt.MustEqual(want, num.AsFloat32(), "%s", num)
	}
}

func TestU128AsFloat64Direct(t *testing.T) {
	for _, tc := range []struct {
		a   U128
		out float64
	}{
		{u128s("2384067163226812360730"), 2384067163226812448768},
		{MaxU128, 340282366920938463463374607431768211456},

		// Ties to even: 2^64 + 2^11 is halfway between two float64s.
		{u128s("0x1 0000000000000800"), 18446744073709551616},
		{u128s("0x1 0000000000001800"), 18446744073709559808},

		// One bit past the halfway point rounds up.
		{u128s("0x1 0000000000000801"), 18446744073709555712},
	} {
		t.Run(fmt.Sprintf("float64(%s)=%v", tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsFloat64())
		})
	}
}

func TestU128AsFloat32Overflow(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(math.IsInf(float64(MaxU128.AsFloat32()), 1))
}

func TestU128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(0)},
		{u64(10), u64(9)},
		{u64(maxUint64), u128s("18446744073709551614")},
		{u64(0), MaxU128},
		{u64(maxUint64).Add(u64(1)), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128{hi: 0x1, lo: 0x0}, true},                // 1 << 64
		{bigs("36893488147419103231"), U128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}, true}, // (1<<65) - 1
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), MaxU128, true},
		{bigs("0x 1 0000000000000000 00000000000000000"), MaxU128, false},
		{bigI64(-1), u64(0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestU128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out U128
		acc bool
		err error
	}{
		{"0", u64(0), true, nil},
		{"18446744073709551616", U128{hi: 1}, true, nil},
		{"340282366920938463463374607431768211455", MaxU128, true, nil},
		{"340282366920938463463374607431768211456", MaxU128, false, nil},
		{"1x", u64(0), false, ErrSyntax},
		{"", u64(0), false, ErrSyntax},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc, err := U128FromString(tc.in)
			if tc.err != nil {
				tt.MustAssert(err != nil)
				tt.MustAssert(errors.Is(err, tc.err), "%v", err)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.out, v)
		})
	}
}

func TestU128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(U128From8(255), u128s("255"))
	tt.MustEqual(U128From16(65535), u128s("65535"))
	tt.MustEqual(U128From32(4294967295), u128s("4294967295"))
}

func TestU128Inc(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(2)},
		{u64(maxUint64), u128s("18446744073709551616")},
		{MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			inc := tc.a.Inc()
			tt.MustAssert(tc.b.Equal(inc), "%s + 1 != %s, found %s", tc.a, tc.b, inc)
		})
	}
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: u128s("5080864651895"), by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
		{u: u64(1), by: 127, r: u128s("0x8000000000000000 0000000000000000")},
		{u: u64(1), by: 128, r: u64(0)},
		{u: MaxU128, by: 200, r: u64(0)},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Mul(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U128From64(maxUint64)
	v := u.Mul(U128From64(maxUint64))

	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)
	tt.MustEqual(v.String(), v1.Mul(&v1, &v2).String())
}

func TestU128MulRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a, b := randU128(), randU128()
		want := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		want.And(want, maxBigU128)
		tt.MustEqual(want.String(), a.Mul(b).String())
	}
}

func TestU128Neg(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(MaxU128, u64(1).Neg())
	tt.MustEqual(u64(0), u64(0).Neg())
	tt.MustEqual(u128s("0x8000000000000000 0000000000000000"), u128s("0x8000000000000000 0000000000000000").Neg())
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},

		// Investigate possible div/0 where lo of divisor is 0:
		{u: U128{hi: 0, lo: 1}, by: U128{hi: 1, lo: 0}, q: u64(0), r: u64(1)},

		// 128-bit 'cmp == 0' shortcut branch:
		{u128s("0x123456789012345678901234"), u128s("0x123456789012345678901234"), u64(1), u64(0)},

		// 128-bit 'cmp < 0' shortcut branch:
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},

		// These test cases were found by the fuzzer and exposed a bug in the 128-bit divisor
		// branch of divmod128by128:
		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760"), u64(355211139435), u128s("5082573385653101693888")},
		{u128s("555579170280843546177"), u128s("21475569273528505412"), u64(25), u128s("18689938442630910877")},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()
			qBig, rBig := new(big.Int).QuoRem(uBig, byBig, new(big.Int))

			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(qBig.String(), q.String())
			tt.MustEqual(rBig.String(), r.String())
			tt.MustEqual(tc.q.String(), q.String())
		})
	}
}

func TestU128QuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		u, by := randU128(), randU128()
		if by.IsZero() {
			continue
		}
		qBig, rBig := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		q, r := u.QuoRem(by)
		tt.MustEqual(qBig.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(rBig.String(), r.String(), "%s %% %s", u, by)
	}
}

func TestU128QuoByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		err, _ := recover().(error)
		tt.MustAssert(errors.Is(err, ErrDivisionByZero), "%v", err)
	}()
	u64(1).Quo(u64(0))
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u64(1), by: 2, r: u64(0)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("11595557904603123290159404941902684322"), by: 50, r: u128s("10298924295251697538375")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
		{u: MaxU128, by: 128, r: u64(0)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128String(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		u := randU128()
		tt.MustEqual(u.AsBigInt().String(), u.String())
	}
	tt.MustEqual("340282366920938463463374607431768211455", MaxU128.String())
	tt.MustEqual("10000000000000000000", u64(10000000000000000000).String())
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		u := randU128()

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func TestU128JSONForm(t *testing.T) {
	tt := assert.WrapTB(t)

	b, err := u64(1234).MarshalJSON()
	tt.MustOK(err)
	tt.MustEqual(`"1234"`, string(b))

	var u U128
	tt.MustOK(u.UnmarshalJSON([]byte(`340282366920938463463374607431768211455`)))
	tt.MustEqual(MaxU128, u)
	tt.MustAssert(u.UnmarshalJSON([]byte(`"12`)) != nil)
	tt.MustAssert(u.UnmarshalJSON([]byte(`"1.5x"`)) != nil)
}

func TestU128Rem(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(u64(1), u64(10).Rem(u64(3)))
	for i := 0; i < 5000; i++ {
		u, by := randU128(), randU128()
		if by.IsZero() {
			continue
		}
		want := new(big.Int).Rem(u.AsBigInt(), by.AsBigInt())
		tt.MustEqual(want.String(), u.Rem(by).String(), "%s %% %s", u, by)
	}
}

func TestU128Xor(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(u64(0xF0F0), u64(0xFF00).Xor(u64(0x0FF0)))
	tt.MustEqual(u64(1), U128FromRaw(1, 0).Xor(U128FromRaw(1, 1)))
	for i := 0; i < 1000; i++ {
		a, b := randU128(), randU128()
		want := new(big.Int).Xor(a.AsBigInt(), b.AsBigInt())
		tt.MustEqual(want.String(), a.Xor(b).String())
		tt.MustAssert(a.Xor(b).Xor(b).Equal(a))
	}
}

func TestU128IsI128(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(u64(0).IsI128())
	tt.MustAssert(maxI128AsU128.IsI128())
	tt.MustAssert(!maxI128AsU128.Inc().IsI128())
	tt.MustAssert(!MaxU128.IsI128())
}

var (
	BenchU128Result   U128
	BenchStringResult string
)

func BenchmarkU128Mul(b *testing.B) {
	u := U128From64(maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Mul(u)
	}
}

func BenchmarkU128QuoRem(b *testing.B) {
	u, by := u128s("0x123456789012345678901234"), u128s("0x1234567890")
	for i := 0; i < b.N; i++ {
		BenchU128Result, _ = u.QuoRem(by)
	}
}

func BenchmarkU128String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = MaxU128.String()
	}
}
