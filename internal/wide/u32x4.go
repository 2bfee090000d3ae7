package wide

// U32x4 represents 4 uint32 values, the widest lane split of a 128-bit vector.
type U32x4 [4]uint32

// U8 reinterprets the elements as 16 bytes in little-endian order.
func (v U32x4) U8() U8x16 {
	var result U8x16
	for i := range v {
		x := v[i]
		result[4*i] = uint8(x)         // #nosec G115
		result[4*i+1] = uint8(x >> 8)  // #nosec G115
		result[4*i+2] = uint8(x >> 16) // #nosec G115
		result[4*i+3] = uint8(x >> 24) // #nosec G115
	}
	return result
}
