package fxp

import "golang.org/x/image/math/fixed"

// FromInt26_6 converts a golang.org/x/image/math/fixed 26.6 value to X,
// rounding to nearest with ties away from zero if X has fewer than 6
// fractional bits.
func FromInt26_6[X Number[X]](v fixed.Int26_6) (X, error) {
	return CheckedConvert[X](IntFromBits[int32, F6](int32(v)))
}

// ToInt26_6 converts x to a 26.6 value, as used by font rasterizers.
func ToInt26_6[X Number[X]](x X) (fixed.Int26_6, error) {
	v, err := CheckedConvert[I26F6](x)
	return fixed.Int26_6(v.Bits()), err
}

func FromInt52_12[X Number[X]](v fixed.Int52_12) (X, error) {
	return CheckedConvert[X](IntFromBits[int64, F12](int64(v)))
}

func ToInt52_12[X Number[X]](x X) (fixed.Int52_12, error) {
	v, err := CheckedConvert[I52F12](x)
	return fixed.Int52_12(v.Bits()), err
}

// FromPoint26_6 converts both coordinates of p.
func FromPoint26_6[X Number[X]](p fixed.Point26_6) (x, y X, err error) {
	if x, err = FromInt26_6[X](p.X); err != nil {
		return x, y, err
	}
	y, err = FromInt26_6[X](p.Y)
	return x, y, err
}

func ToPoint26_6[X Number[X]](x, y X) (p fixed.Point26_6, err error) {
	if p.X, err = ToInt26_6(x); err != nil {
		return p, err
	}
	p.Y, err = ToInt26_6(y)
	return p, err
}
