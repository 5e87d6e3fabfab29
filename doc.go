/*
Package fxp provides binary fixed-point numbers: signed and unsigned values
stored as a scaled integer raw / 2^F, for storage widths of 8, 16, 32, 64 and
128 bits and any F from 0 to the width.

Arithmetic needs no floating point unit and never allocates. All types are
value types; all operations return new values.

Simple example:

	a := fxp.MustParse[fxp.I16F16]("1.5")
	b := fxp.FromInt[fxp.I16F16](3)
	fmt.Println(a.Mul(b))
	// Output: 4.5

Types are instances of four generic families, with the fractional bit count
chosen by a marker type F0 through F128:

	Int[T constraints.Signed, F Frac]      int8, int16, int32, int64 storage
	Uint[T constraints.Unsigned, F Frac]   uint8, uint16, uint32, uint64 storage
	Int128[F Frac]                         I128 storage
	Uint128[F Frac]                        U128 storage

Aliases such as I16F16, U8F8 and I64F64 name the common layouts. Every type
satisfies Number, so algorithms can be written once for all of them.

Each operation that can overflow comes in five forms:

	Mul(y)             panics with ErrOverflow
	CheckedMul(y)      returns an *OpError wrapping ErrOverflow
	WrappingMul(y)     wraps modulo 2^width
	SaturatingMul(y)   clamps to Min() or Max()
	OverflowingMul(y)  returns the wrapped value and whether it overflowed

Multiplication, division, Round, RoundToInt and Convert round to nearest with
ties away from zero. FromFloat and Parse round to nearest with ties to even.

All types support the following formatting and marshalling interfaces:

  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.TextAppender
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler

The 128-bit integers I128 and U128, which the 128-bit families store, are
usable on their own and implement most of the big.Int API.
*/
package fxp
