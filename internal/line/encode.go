// Package line formats 16-byte blocks into fixed-size hex dump lines.
//
// A line for an offset field of d digits is laid out as
//
//	offset(d)  hh  hh  ... (16 cells of 4 bytes)  sidebar(16) '\n'
//
// for a total of LineSize(d) bytes. Encode builds the line from 128-bit lane
// operations (package wide) without per-byte branches; EncodeScalar produces
// the same bytes with plain table lookups. Patch blanks the cells of a short
// final block after it has been encoded.
//
// Neither encoder checks how many source bytes are meaningful: both always
// read 16 bytes, so callers over-allocate their input buffers and patch the
// last line.
package line

import "github.com/gogpu/xd/internal/wide"

// Layout constants.
const (
	// Columns is the number of source bytes per line.
	Columns = 16

	// MaxDigits is the widest supported offset field.
	MaxDigits = 16

	// CellWidth is the number of bytes a source byte takes in the hex area.
	CellWidth = 4

	hexWidth   = Columns * CellWidth
	asciiWidth = Columns
	sepWidth   = 2
)

// LineSize returns the number of bytes one line occupies for a given
// offset width.
func LineSize(digits int) int {
	return digits + sepWidth + hexWidth + asciiWidth + 1
}

// Encode formats the 16 bytes at src as one line for offset into dst and
// returns LineSize(digits).
//
// src must hold at least 16 bytes and dst at least LineSize(digits) bytes.
// digits must be in [1, MaxDigits]; offsets wider than digits are truncated
// to their low digits.
func Encode(dst, src []byte, offset uint64, digits int) int {
	n := LineSize(digits)
	_ = dst[n-1] // bounds check hint

	// Offset: 16 nibbles, reversed into the first digits lanes.
	ofs := finish(flip(hexBase(nibblesForward(wide.FromU64(offset))), digits))
	ofs.Store(dst)
	dst[digits] = ' '
	dst[digits+1] = ' '
	p := dst[digits+sepWidth:]

	// Hex cells, four source bytes per 16-byte group.
	ar := wide.LoadU8(src)
	lo := hexBase(nibblesLow(ar))
	hi := hexBase(nibblesHigh(ar))
	finish(widenLow(lo)).Store(p[0:])
	finish(widenHigh(lo)).Store(p[16:])
	finish(widenLow(hi)).Store(p[32:])
	finish(widenHigh(hi)).Store(p[48:])

	// Sidebar.
	wide.Select(printable(ar), ar, dots).Store(p[hexWidth:])
	p[hexWidth+asciiWidth] = '\n'
	return n
}
