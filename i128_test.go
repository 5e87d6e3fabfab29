package fxp

import (
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var i64 = I128From64

func randI128() I128 {
	i := randU128().AsI128()
	if globalRNG.Intn(2) == 1 {
		i = i.Neg()
	}
	return i
}

func TestI128Abs(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(1), i64(1)},
		{I128{lo: maxUint64}, I128{lo: maxUint64}},
		{i64(-1), i64(1)},
		{I128{hi: maxUint64}, I128{hi: 1}},

		{MinI128, MinI128}, // Overflow
	} {
		t.Run(fmt.Sprintf("%d/|%s|=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Abs())
		})
	}
}

func TestI128AbsU128(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b U128
	}{
		{i64(0), u64(0)},
		{i64(-1), u64(1)},
		{i64(minInt64), u64(1 << 63)},
		{MaxI128, maxI128AsU128},
		{MinI128, minI128AsAbsU128},
	} {
		t.Run(fmt.Sprintf("%d/|%s|=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.AbsU128())
		})
	}
}

func TestI128Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I128
	}{
		{i64(-2), i64(-1), i64(-3)},
		{i64(-2), i64(1), i64(-1)},
		{i64(-1), i64(1), i64(0)},
		{i64(1), i64(2), i64(3)},

		// Hi/lo carry:
		{I128{lo: 0xFFFFFFFFFFFFFFFF}, i64(1), I128{hi: 1, lo: 0}},
		{I128{hi: 1, lo: 0}, i64(-1), I128{lo: 0xFFFFFFFFFFFFFFFF}},

		// Overflow wraps:
		{MaxI128, i64(1), MinI128},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestI128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b *big.Int
	}{
		{I128{0, 2}, bigI64(2)},
		{I128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigI64(-2)},
		{I128{0x1, 0x0}, bigs("18446744073709551616")},
		{I128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{I128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{I128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("-1")},
		{I128{0x8000000000000000, 0}, bigs("-170141183460469231731687303715884105728")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI128AsFloat64Random(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		num := randI128()
		want, _ := new(big.Float).SetInt(num.AsBigInt()).Float64()
		tt.MustEqual(want, num.AsFloat64(), "%s", num)
	}
}

func TestI128AsInt64(t *testing.T) {
	for idx, tc := range []struct {
		a   I128
		out int64
		is  bool
	}{
		{i64(-1), -1, true},
		{i64(minInt64), minInt64, true},
		{i64(maxInt64), maxInt64, true},
		{i128s("9223372036854775808"), minInt64, false},  // (maxInt64 + 1) overflows to min
		{i128s("-9223372036854775809"), maxInt64, false}, // (minInt64 - 1) underflows to max
	} {
		t.Run(fmt.Sprintf("%d/int64(%s)=%d", idx, tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsInt64())
			tt.MustEqual(tc.is, tc.a.IsInt64())
		})
	}
}

func TestI128Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   I128
		result int
	}{
		{i64(0), i64(0), 0},
		{i64(1), i64(0), 1},
		{i64(10), i64(9), 1},
		{i64(-1), i64(1), -1},
		{i64(1), i64(-1), 1},
		{MinI128, MaxI128, -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.result < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.result > 0, tc.a.GreaterThan(tc.b))
		})
	}
}

func TestI128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b I128
	}{
		{i64(1), i64(0)},
		{i64(10), i64(9)},
		{MinI128, MaxI128}, // underflow
		{I128{hi: 1}, I128{lo: 0xFFFFFFFFFFFFFFFF}}, // carry
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestI128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   I128
		acc bool
	}{
		{bigI64(0), i64(0), true},
		{bigI64(-2), i64(-2), true},
		{bigs("18446744073709551616"), I128{0x1, 0x0}, true}, // 1 << 64
		{bigs("170141183460469231731687303715884105727"), MaxI128, true},
		{bigs("-170141183460469231731687303715884105728"), MinI128, true},
		{bigs("170141183460469231731687303715884105728"), MaxI128, false},
		{bigs("-170141183460469231731687303715884105729"), MinI128, false},
		{bigs("-1"), I128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, true},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := I128FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestI128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out I128
		acc bool
	}{
		{"0", i64(0), true},
		{"-1", i64(-1), true},
		{"+12", i64(12), true},
		{"-170141183460469231731687303715884105728", MinI128, true},
		{"170141183460469231731687303715884105727", MaxI128, true},
		{"170141183460469231731687303715884105728", MaxI128, false},
		{"-170141183460469231731687303715884105729", MinI128, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc, err := I128FromString(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.out, v)
		})
	}
}

func TestI128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(I128From8(127), i128s("127"))
	tt.MustEqual(I128From8(-128), i128s("-128"))
	tt.MustEqual(I128From16(32767), i128s("32767"))
	tt.MustEqual(I128From16(-32768), i128s("-32768"))
	tt.MustEqual(I128From32(2147483647), i128s("2147483647"))
	tt.MustEqual(I128From32(-2147483648), i128s("-2147483648"))
	tt.MustEqual(I128FromInt(-5), i128s("-5"))
	tt.MustEqual(I128FromU64(maxUint64), i128s("18446744073709551615"))
}

func TestI128Inc(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(-1), i64(0)},
		{i64(-2), i64(-1)},
		{i64(1), i64(2)},
		{i64(maxInt64), i128s("9223372036854775808")},
		{i128s("-18446744073709551617"), i128s("-18446744073709551616")},
	} {
		t.Run(fmt.Sprintf("%d/%s+1=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			inc := tc.a.Inc()
			tt.MustAssert(tc.b.Equal(inc), "%s + 1 != %s, found %s", tc.a, tc.b, inc)
		})
	}
}

func TestI128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		a  I128
		by uint
		c  I128
	}{
		{i64(1), 1, i64(2)},
		{i64(-1), 1, i64(-2)},
		{i64(-1), 127, MinI128},
		{i64(1), 127, MinI128},
		{i64(3), 64, I128{hi: 3}},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.a, tc.by, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Lsh(tc.by))
		})
	}
}

func TestI128Rsh(t *testing.T) {
	for idx, tc := range []struct {
		a  I128
		by uint
	}{
		{i64(-1), 1},
		{i64(-2), 1},
		{i64(-3), 1},
		{MinI128, 127},
		{MinI128, 64},
		{i128s("-18446744073709551617"), 3},
		{MaxI128, 100},
		{i64(5), 1},
	} {
		t.Run(fmt.Sprintf("%d/%s>>%d", idx, tc.a, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			want := new(big.Int).Rsh(tc.a.AsBigInt(), tc.by)
			tt.MustEqual(want.String(), tc.a.Rsh(tc.by).String())
		})
	}
}

func TestI128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		n := randI128()

		bts, err := json.Marshal(n)
		tt.MustOK(err)

		var result I128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n))
	}
}

func TestI128JSONForm(t *testing.T) {
	tt := assert.WrapTB(t)

	b, err := i64(-1234).MarshalJSON()
	tt.MustOK(err)
	tt.MustEqual(`"-1234"`, string(b))

	var n I128
	tt.MustOK(n.UnmarshalJSON([]byte(`-170141183460469231731687303715884105728`)))
	tt.MustEqual(MinI128, n)
	tt.MustAssert(n.UnmarshalJSON([]byte(`"-1`)) != nil)
	tt.MustAssert(n.UnmarshalJSON([]byte(`"x"`)) != nil)
}

func TestI128Rem(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(i64(-1), i64(-10).Rem(i64(3)))
	tt.MustEqual(i64(1), i64(10).Rem(i64(-3)))
	for i := 0; i < 5000; i++ {
		n, by := randI128(), randI128()
		if by.IsZero() {
			continue
		}
		want := new(big.Int).Rem(n.AsBigInt(), by.AsBigInt())
		tt.MustEqual(want.String(), n.Rem(by).String(), "%s %% %s", n, by)
	}
}

func TestI128Mul(t *testing.T) {
	for _, tc := range []struct {
		a, b, out I128
	}{
		{i64(1), i64(0), i64(0)},
		{i64(-2), i64(2), i64(-4)},
		{i64(-2), i64(-2), i64(4)},
		{i64(maxInt64), i64(maxInt64), i128s("85070591730234615847396907784232501249")},
		{i64(minInt64), i64(minInt64), i128s("85070591730234615865843651857942052864")},
		{i64(minInt64), i64(maxInt64), i128s("-85070591730234615856620279821087277056")},
		{MaxI128, i64(2), i128s("-2")}, // Overflow. "math.MaxInt64 * 2" produces the same result, "-2".
		{MaxI128, MaxI128, i128s("1")}, // Overflow
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.Mul(tc.b)
			tt.MustAssert(tc.out.Equal(v), "%s * %s != %s, found %s", tc.a, tc.b, tc.out, v)
		})
	}
}

func TestI128Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(-2), i64(2)},
		{i64(2), i64(-2)},

		// hi/lo carry:
		{I128{lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}},
		{I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}, I128{lo: 0xFFFFFFFFFFFFFFFF}},
		{I128{hi: 1, lo: 0}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 0x0}},

		// Negating MaxI128 should yield MinI128 + 1:
		{I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0x8000000000000000, lo: 1}},

		// Negating MinI128 should yield MinI128:
		{I128{hi: 0x8000000000000000, lo: 0}, I128{hi: 0x8000000000000000, lo: 0}},
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.b.Equal(tc.a.Neg()))
		})
	}
}

func TestI128QuoRem(t *testing.T) {
	for _, tc := range []struct {
		i, by, q, r I128
	}{
		{i: i64(1), by: i64(2), q: i64(0), r: i64(1)},
		{i: i64(10), by: i64(3), q: i64(3), r: i64(1)},
		{i: i64(10), by: i64(-3), q: i64(-3), r: i64(1)},
		{i: i64(-10), by: i64(3), q: i64(-3), r: i64(-1)},
		{i: i64(-10), by: i64(-3), q: i64(3), r: i64(-1)},
		{i: i64(10), by: i64(10), q: i64(1), r: i64(0)},
		{i: i128s("0x12345678901234567"), by: i128s("0x12345678901234567"), q: i64(1), r: i64(0)},
		{i: MinI128, by: i64(2), q: i128s("-0x4000000000000000 0000000000000000"), r: i64(0)},
	} {
		t.Run(fmt.Sprintf("%s÷%s=%s,%s", tc.i, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.i.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			qBig, rBig := new(big.Int).QuoRem(tc.i.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			tt.MustEqual(qBig.String(), q.String())
			tt.MustEqual(rBig.String(), r.String())
		})
	}
}

func TestI128Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I128
	}{
		{i64(-2), i64(-1), i64(-1)},
		{i64(-2), i64(1), i64(-3)},
		{i64(1), i64(2), i64(-1)},  // crossing zero
		{i64(-1), i64(-2), i64(1)}, // crossing zero

		{MinI128, i64(1), MaxI128},  // Overflow wraps
		{MaxI128, i64(-1), MinI128}, // Overflow wraps

		{i128s("0x10000000000000000"), i64(1), i128s("0xFFFFFFFFFFFFFFFF")},  // carry down
		{i128s("0xFFFFFFFFFFFFFFFF"), i64(-1), i128s("0x10000000000000000")}, // carry up
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Sub(tc.b)))
		})
	}
}

var BenchI128Result I128

func BenchmarkI128FromBigInt(b *testing.B) {
	bi := bigs("-170141183460469231731687303715884105")
	for i := 0; i < b.N; i++ {
		BenchI128Result, _ = I128FromBigInt(bi)
	}
}

func BenchmarkI128QuoRem(b *testing.B) {
	i, by := i128s("-0x123456789012345678901234"), i128s("0x1234567890")
	for n := 0; n < b.N; n++ {
		BenchI128Result, _ = i.QuoRem(by)
	}
}
