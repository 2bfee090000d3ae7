package wide

// U8x16 represents 16 uint8 lanes for SIMD-style byte operations.
// It matches one 128-bit vector register (SSE, NEON) lane for lane.
type U8x16 [16]uint8

// LoadU8 loads the first 16 bytes of src into a U8x16.
// src must have at least 16 bytes; no alignment is required.
func LoadU8(src []byte) U8x16 {
	_ = src[15] // bounds check hint
	var result U8x16
	copy(result[:], src[:16])
	return result
}

// Store writes all 16 lanes to the first 16 bytes of dst.
func (v U8x16) Store(dst []byte) {
	_ = dst[15] // bounds check hint
	copy(dst[:16], v[:])
}

// SplatU8 creates U8x16 with all lanes set to n.
func SplatU8(n uint8) U8x16 {
	var result U8x16
	for i := range result {
		result[i] = n
	}
	return result
}

// FromU64 places x into lanes 0..7 in little-endian order.
// Lanes 8..15 are zero.
func FromU64(x uint64) U8x16 {
	var result U8x16
	for i := 0; i < 8; i++ {
		result[i] = uint8(x >> (8 * i)) // #nosec G115
	}
	return result
}

// Add performs lane-wise wrapping addition.
func (v U8x16) Add(other U8x16) U8x16 {
	var result U8x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise wrapping subtraction.
func (v U8x16) Sub(other U8x16) U8x16 {
	var result U8x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// CmpGt compares lanes as signed 8-bit integers.
// A lane is 0xff where int8(v[i]) > int8(other[i]) and 0x00 otherwise.
func (v U8x16) CmpGt(other U8x16) U8x16 {
	var result U8x16
	for i := range v {
		if int8(v[i]) > int8(other[i]) {
			result[i] = 0xff
		}
	}
	return result
}

// Shuffle uses idx as a byte permutation over v.
// Lane i of the result is v[idx[i]&15], or zero when the high bit of idx[i]
// is set. With v holding a 16-entry table this is a table lookup.
func (v U8x16) Shuffle(idx U8x16) U8x16 {
	var result U8x16
	for i := range idx {
		if idx[i]&0x80 == 0 {
			result[i] = v[idx[i]&0x0f]
		}
	}
	return result
}

// Select picks a[i] where the high bit of mask[i] is set, else b[i].
func Select(mask, a, b U8x16) U8x16 {
	var result U8x16
	for i := range mask {
		if mask[i]&0x80 != 0 {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// ExtendLow zero-extends lanes 0..7 into 16-bit lanes.
func (v U8x16) ExtendLow() U16x8 {
	var result U16x8
	for i := range result {
		result[i] = uint16(v[i])
	}
	return result
}

// ExtendHigh zero-extends lanes 8..15 into 16-bit lanes.
func (v U8x16) ExtendHigh() U16x8 {
	var result U16x8
	for i := range result {
		result[i] = uint16(v[i+8])
	}
	return result
}

// U16 reinterprets the 16 bytes as eight little-endian 16-bit lanes.
func (v U8x16) U16() U16x8 {
	var result U16x8
	for i := range result {
		result[i] = uint16(v[2*i]) | uint16(v[2*i+1])<<8
	}
	return result
}
