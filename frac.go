package fxp

//go:generate go run mkfrac.go
//go:generate go run mkops.go

// Frac selects the number of fractional bits of a fixed-point type. It is
// implemented only by the zero-size markers F0 through F128.
type Frac interface {
	fracBits() uint
}

// checkFrac returns F's fractional bit count, panicking with ErrInvalidFrac if
// it does not fit in a width-bit storage integer.
func checkFrac[F Frac](width uint) uint {
	var f F
	n := f.fracBits()
	if n > width {
		panic(&OpError{Op: "frac", Err: ErrInvalidFrac})
	}
	return n
}
