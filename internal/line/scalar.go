package line

const hexDigits = "0123456789abcdef"

// EncodeScalar produces exactly the bytes Encode produces, one source byte
// at a time. It is the fallback for targets without byte-shuffle vector
// units and the oracle the lane encoder is tested against.
func EncodeScalar(dst, src []byte, offset uint64, digits int) int {
	n := LineSize(digits)
	_ = dst[n-1] // bounds check hint
	_ = src[Columns-1]

	for i := 0; i < digits; i++ {
		shift := uint(4 * (digits - 1 - i))
		dst[i] = hexDigits[(offset>>shift)&0x0f]
	}
	dst[digits] = ' '
	dst[digits+1] = ' '

	p := dst[digits+sepWidth:]
	for i := 0; i < Columns; i++ {
		b := src[i]
		cell := p[CellWidth*i:]
		cell[0] = hexDigits[b>>4]
		cell[1] = hexDigits[b&0x0f]
		cell[2] = ' '
		cell[3] = ' '

		p[hexWidth+i] = SidebarByte(b)
	}
	p[hexWidth+asciiWidth] = '\n'
	return n
}

// SidebarByte returns the sidebar character for b: b itself when the signed
// byte b+1 exceeds ' ', else '.'. Only 0x20..0x7e pass; 0x7f wraps to -128
// and 0x80..0xff are negative as int8, so all of them show as '.'.
func SidebarByte(b byte) byte {
	if int8(b+1) > ' ' {
		return b
	}
	return '.'
}
