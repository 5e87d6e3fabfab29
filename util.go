package fxp

// RandSource supplies random bits. *math/rand.Rand and *math/rand/v2.Rand
// satisfy it.
type RandSource interface {
	Uint64() uint64
}

// Rand returns an X whose raw value is uniformly distributed over every bit
// pattern of its storage.
func Rand[X Number[X]](src RandSource) X {
	var x X
	return x.withRandom(src)
}

func Larger[X Number[X]](a, b X) X {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func Smaller[X Number[X]](a, b X) X {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}

// Clamp returns x limited to the closed interval [lo, hi].
func Clamp[X Number[X]](x, lo, hi X) X {
	return Smaller(Larger(x, lo), hi)
}

// Difference subtracts the smaller of a and b from the larger. The result
// only overflows for signed types whose operands are more than Max() apart.
func Difference[X Number[X]](a, b X) X {
	if a.Cmp(b) < 0 {
		return b.Sub(a)
	}
	return a.Sub(b)
}
