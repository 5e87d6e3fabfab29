package fxp

// overflow classifies the result of a primitive operation. Every primitive
// returns the wrapped result together with an overflow; the Checked,
// Wrapping, Saturating and Overflowing families are derived from that pair.
type overflow int8

const (
	inRange overflow = iota
	overflowHigh
	overflowLow
)

func must[X any](op string, v X, o overflow) X {
	if o != inRange {
		panic(&OpError{Op: op, Err: ErrOverflow})
	}
	return v
}

func checked[X any](op string, v X, o overflow) (X, error) {
	if o != inRange {
		var zero X
		return zero, &OpError{Op: op, Err: ErrOverflow}
	}
	return v, nil
}

func saturate[X any](v X, o overflow, lo, hi X) X {
	switch o {
	case overflowHigh:
		return hi
	case overflowLow:
		return lo
	}
	return v
}

func saturating[X Number[X]](v X, o overflow) X {
	return saturate(v, o, v.Min(), v.Max())
}
