package line

import (
	"bytes"
	"strings"
	"testing"
)

func TestPatchShortBlock(t *testing.T) {
	// Five real bytes followed by stale buffer contents.
	src := []byte("ABCDE\xde\xad\xbe\xef0123456")
	dst := make([]byte, LineSize(12))
	n := Encode(dst, src, 0, 12)
	Patch(dst[:n], 5, 12)

	want := "000000000000  41  42  43  44  45  " +
		strings.Repeat("    ", 11) +
		"ABCDE" + strings.Repeat(" ", 11) + "\n"
	if got := string(dst[:n]); got != want {
		t.Errorf("patched line =\n%q\nwant\n%q", got, want)
	}
}

func TestPatchBlanksOnlyMissingCells(t *testing.T) {
	src := []byte("0123456789abcdef")
	for digits := 1; digits <= MaxDigits; digits++ {
		for valid := 0; valid < Columns; valid++ {
			orig := make([]byte, LineSize(digits))
			Encode(orig, src, 0x40, digits)
			line := bytes.Clone(orig)
			Patch(line, valid, digits)

			hexStart := digits + 2
			sideStart := hexStart + 64
			for i := 0; i < Columns; i++ {
				cell := line[hexStart+CellWidth*i : hexStart+CellWidth*i+CellWidth]
				side := line[sideStart+i]
				if i < valid {
					if !bytes.Equal(cell, orig[hexStart+CellWidth*i:hexStart+CellWidth*i+CellWidth]) || side != orig[sideStart+i] {
						t.Fatalf("digits=%d valid=%d: cell %d changed", digits, valid, i)
					}
				} else if string(cell) != "    " || side != ' ' {
					t.Fatalf("digits=%d valid=%d: cell %d = %q/%q, want blank", digits, valid, i, cell, side)
				}
			}
			if !bytes.Equal(line[:hexStart], orig[:hexStart]) {
				t.Errorf("digits=%d valid=%d: offset field changed", digits, valid)
			}
			if line[len(line)-1] != '\n' {
				t.Errorf("digits=%d valid=%d: newline lost", digits, valid)
			}
		}
	}
}

func TestPatchValidBounds(t *testing.T) {
	src := []byte("0123456789abcdef")
	orig := make([]byte, LineSize(8))
	Encode(orig, src, 0, 8)

	t.Run("full line untouched", func(t *testing.T) {
		line := bytes.Clone(orig)
		Patch(line, Columns, 8)
		if !bytes.Equal(line, orig) {
			t.Errorf("Patch(16) changed the line:\n%q", line)
		}
	})

	t.Run("negative blanks all", func(t *testing.T) {
		a := bytes.Clone(orig)
		b := bytes.Clone(orig)
		Patch(a, -3, 8)
		Patch(b, 0, 8)
		if !bytes.Equal(a, b) {
			t.Errorf("Patch(-3) = %q, want Patch(0) = %q", a, b)
		}
		if got := string(b[8+2+64 : 8+2+64+16]); got != strings.Repeat(" ", 16) {
			t.Errorf("sidebar after Patch(0) = %q", got)
		}
	})
}

// Patch only touches the last line of a longer buffer.
func TestPatchLastLineOnly(t *testing.T) {
	src := []byte("0123456789abcdef0123456789abcdef")
	size := LineSize(12)
	out := make([]byte, 2*size)
	p := Encode(out, src, 0, 12)
	p += Encode(out[p:], src[16:], 16, 12)
	first := bytes.Clone(out[:size])

	Patch(out[:p], 3, 12)
	if !bytes.Equal(out[:size], first) {
		t.Errorf("first line changed:\n%q", out[:size])
	}
	want := "000000000010  30  31  32  " + strings.Repeat("    ", 13) + "012" + strings.Repeat(" ", 13) + "\n"
	if got := string(out[size:p]); got != want {
		t.Errorf("last line =\n%q\nwant\n%q", got, want)
	}
}
