package wide

// U16x8 represents 8 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// It occupies the same 128 bits as U8x16 and is used for nibble unpacking.
type U16x8 [8]uint16

// SplatU16 creates U16x8 with all elements set to n.
// This is useful for initializing masks or broadcasting a single value.
func SplatU16(n uint16) U16x8 {
	var result U16x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Or performs element-wise bitwise OR.
func (v U16x8) Or(other U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// And performs element-wise bitwise AND.
func (v U16x8) And(other U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Shl shifts each element left by n bits. Bits shifted out are lost.
func (v U16x8) Shl(n uint) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] << n
	}
	return result
}

// Shr shifts each element right by n bits, filling with zeros.
func (v U16x8) Shr(n uint) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] >> n
	}
	return result
}

// ExtendLow zero-extends elements 0..3 into 32-bit lanes.
func (v U16x8) ExtendLow() U32x4 {
	var result U32x4
	for i := range result {
		result[i] = uint32(v[i])
	}
	return result
}

// ExtendHigh zero-extends elements 4..7 into 32-bit lanes.
func (v U16x8) ExtendHigh() U32x4 {
	var result U32x4
	for i := range result {
		result[i] = uint32(v[i+4])
	}
	return result
}

// U8 reinterprets the elements as 16 bytes in little-endian order.
func (v U16x8) U8() U8x16 {
	var result U8x16
	for i := range v {
		// Intentional truncation - each element is split into its two bytes
		result[2*i] = uint8(v[i])        // #nosec G115
		result[2*i+1] = uint8(v[i] >> 8) // #nosec G115
	}
	return result
}
