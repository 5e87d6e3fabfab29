package fxp

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	intSize = 32 << (^uint(0) >> 63)

	// maxFracBits is the widest storage, and so the largest F any type
	// in the package can carry.
	maxFracBits = 128

	// maxParseDigits is the number of fractional digits parse keeps before
	// collapsing the rest into a sticky bit: one more than the largest F
	// is always enough to decide rounding exactly.
	maxParseDigits = maxFracBits + 1
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxU256 = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	oneU128 = U128{lo: 1}
)
