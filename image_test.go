package fxp

import (
	"errors"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/image/math/fixed"
)

func TestInt26_6(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := FromInt26_6[I16F16](fixed.I(3))
	tt.MustOK(err)
	tt.MustEqual("3", v.String())

	v, err = FromInt26_6[I16F16](fixed.Int26_6(-33))
	tt.MustOK(err)
	tt.MustEqual(int32(-33<<10), v.Bits())
	tt.MustEqual("-0.51562", v.String())

	f, err := ToInt26_6(MustParse[I16F16]("1.5"))
	tt.MustOK(err)
	tt.MustEqual(fixed.Int26_6(96), f)
	tt.MustEqual("1:32", f.String())

	// Half a 26.6 unit rounds away from zero.
	f, err = ToInt26_6(MustParse[I16F16]("0.0078125"))
	tt.MustOK(err)
	tt.MustEqual(fixed.Int26_6(1), f)
	f, err = ToInt26_6(MustParse[I16F16]("-0.0078125"))
	tt.MustOK(err)
	tt.MustEqual(fixed.Int26_6(-1), f)

	_, err = ToInt26_6(FromInt[I64F64](1 << 30))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)

	_, err = FromInt26_6[I4F4](fixed.I(100))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
}

func TestInt52_12(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := FromInt52_12[I32F32](fixed.Int52_12(5<<12 | 1<<11))
	tt.MustOK(err)
	tt.MustEqual("5.5", v.String())

	f, err := ToInt52_12(MustParse[I64F64]("-2.25"))
	tt.MustOK(err)
	tt.MustEqual(fixed.Int52_12(-9<<10), f)

	_, err = ToInt52_12(I64F64{}.Max())
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
}

func TestPoint26_6(t *testing.T) {
	tt := assert.WrapTB(t)

	x, y, err := FromPoint26_6[I16F16](fixed.P(1, -2))
	tt.MustOK(err)
	tt.MustEqual("1", x.String())
	tt.MustEqual("-2", y.String())

	p, err := ToPoint26_6(MustParse[I8F8]("0.5"), MustParse[I8F8]("-0.25"))
	tt.MustOK(err)
	tt.MustEqual(fixed.Point26_6{X: 32, Y: -16}, p)

	_, _, err = FromPoint26_6[I4F4](fixed.P(0, 9))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
}
