package line

// Patch blanks the cells of the line that ends out for source bytes at index
// valid and above. It is used after encoding a final block that held fewer
// than 16 real bytes: each missing byte turns into two spaces in the hex area
// and one space in the sidebar. Cells below valid are left untouched.
//
// out must end exactly at the end of the most recently written line, which
// was encoded with the given digits. valid below 0 is treated as 0; valid of
// 16 or more leaves the line unchanged.
func Patch(out []byte, valid, digits int) {
	start := len(out) - LineSize(digits)
	base := out[start+digits+sepWidth : len(out)-1]
	for i := max(valid, 0); i < Columns; i++ {
		base[CellWidth*i] = ' '
		base[CellWidth*i+1] = ' '
		base[hexWidth+i] = ' '
	}
}
