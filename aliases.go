package fxp

// Common layouts, named by integer and fractional bits.
type (
	I1F7   = Int[int8, F7]
	I4F4   = Int[int8, F4]
	I8F8   = Int[int16, F8]
	I16F16 = Int[int32, F16]
	I26F6  = Int[int32, F6]
	I32F32 = Int[int64, F32]
	I52F12 = Int[int64, F12]
	I64F64 = Int128[F64]

	U4F4   = Uint[uint8, F4]
	U8F8   = Uint[uint16, F8]
	U16F16 = Uint[uint32, F16]
	U32F32 = Uint[uint64, F32]
	U64F64 = Uint128[F64]
)
