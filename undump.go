package xd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/xd/internal/line"
)

// Undump reverses Dump: it reads hex dump lines written with the given
// offset width from r and writes the original bytes to w. It returns the
// number of bytes written.
//
// Every line must have the exact layout Dump produces: an offset equal to
// the running position (compared on its low digits), lowercase hex cells
// followed by two spaces, and a sidebar that matches the decoded bytes. A
// blank hex cell ends the data; only the last line may contain one.
func Undump(w io.Writer, r io.Reader, digits int) (int64, error) {
	if digits < 1 || digits > line.MaxDigits {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidAddrDigits, digits)
	}

	width := line.LineSize(digits) - 1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, width+1), width+1)

	var (
		total  int64
		offset uint64
		buf    [Columns]byte
		short  bool
	)
	bw := bufio.NewWriter(w)
	for lineNo := 1; sc.Scan(); lineNo++ {
		text := sc.Bytes()
		if short {
			return total, fmt.Errorf("%w: line %d: data after a short line", ErrMalformedLine, lineNo)
		}
		n, err := parseLine(text, offset, digits, buf[:])
		if err != nil {
			return total, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, lineNo, err)
		}
		if _, err := bw.Write(buf[:n]); err != nil {
			return total, fmt.Errorf("xd: write output: %w", err)
		}
		total += int64(n)
		offset += Columns
		short = n < Columns
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return total, fmt.Errorf("%w: line longer than %d bytes", ErrMalformedLine, width)
		}
		return total, fmt.Errorf("xd: read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("xd: write output: %w", err)
	}
	return total, nil
}

// parseLine decodes one dump line into dst and returns the number of bytes
// it carried.
func parseLine(text []byte, offset uint64, digits int, dst []byte) (int, error) {
	if len(text) != line.LineSize(digits)-1 {
		return 0, fmt.Errorf("length %d, want %d", len(text), line.LineSize(digits)-1)
	}

	var want [line.MaxDigits]byte
	for i := 0; i < digits; i++ {
		shift := uint(4 * (digits - 1 - i))
		want[i] = "0123456789abcdef"[(offset>>shift)&0x0f]
	}
	if string(text[:digits]) != string(want[:digits]) {
		return 0, fmt.Errorf("offset %q, want %q", text[:digits], want[:digits])
	}
	if text[digits] != ' ' || text[digits+1] != ' ' {
		return 0, errors.New("missing offset separator")
	}

	cells := text[digits+2:]
	sidebar := cells[line.Columns*line.CellWidth:]
	n := 0
	for ; n < Columns; n++ {
		cell := cells[line.CellWidth*n : line.CellWidth*(n+1)]
		if string(cell) == "    " {
			break
		}
		hi, okHi := hexValue(cell[0])
		lo, okLo := hexValue(cell[1])
		if !okHi || !okLo {
			return 0, fmt.Errorf("cell %d: invalid hex %q", n, cell[:2])
		}
		if cell[2] != ' ' || cell[3] != ' ' {
			return 0, fmt.Errorf("cell %d gap %q, want two spaces", n, cell[2:])
		}
		dst[n] = hi<<4 | lo
		if c := line.SidebarByte(dst[n]); sidebar[n] != c {
			return 0, fmt.Errorf("sidebar %d: %q, want %q", n, sidebar[n], c)
		}
	}
	for i := n; i < Columns; i++ {
		if string(cells[line.CellWidth*i:line.CellWidth*(i+1)]) != "    " {
			return 0, fmt.Errorf("cell %d follows a blank cell", i)
		}
	}
	for i := n; i < Columns; i++ {
		if sidebar[i] != ' ' {
			return 0, fmt.Errorf("sidebar %d: %q, want ' '", i, sidebar[i])
		}
	}
	return n, nil
}

// hexValue decodes one lowercase hex digit, the only case Dump writes.
func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
