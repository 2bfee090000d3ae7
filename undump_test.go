package xd

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndumpRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 4))
	for _, digits := range []int{1, 8, 12, 16} {
		for _, size := range []int{0, 1, 5, 15, 16, 17, 32, 100, 1000, 4097} {
			data := randomBytes(rng, size)

			var dump bytes.Buffer
			_, err := Dump(&dump, bytes.NewReader(data), WithAddrDigits(digits), WithChunkSize(256))
			require.NoError(t, err)

			var back bytes.Buffer
			n, err := Undump(&back, &dump, digits)
			require.NoError(t, err, "digits=%d size=%d", digits, size)
			assert.Equal(t, int64(size), n)
			// Compare as strings: an empty buffer returns nil bytes.
			assert.Equal(t, string(data), back.String(), "digits=%d size=%d", digits, size)
		}
	}
}

func TestUndumpMissingFinalNewline(t *testing.T) {
	var dump bytes.Buffer
	_, err := Dump(&dump, strings.NewReader("ABCDE"))
	require.NoError(t, err)

	var back bytes.Buffer
	_, err = Undump(&back, strings.NewReader(strings.TrimSuffix(dump.String(), "\n")), DefaultAddrDigits)
	require.NoError(t, err)
	assert.Equal(t, "ABCDE", back.String())
}

func TestUndumpMalformed(t *testing.T) {
	full := "000000000000  48  65  6c  6c  6f  2c  20  57  6f  72  6c  64  21  0a  00  00  Hello, World!...\n"
	short := "000000000010  41  42  " + strings.Repeat("    ", 14) + "AB" + strings.Repeat(" ", 14) + "\n"
	shortFirst := strings.Replace(short, "000000000010", "000000000000", 1)

	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"truncated line", full[:40] + "\n", "length"},
		{"bad offset", strings.Replace(full, "000000000000", "000000000020", 1), "offset"},
		{"bad separator", strings.Replace(full, "000000000000  ", "000000000000 x", 1), "separator"},
		{"bad hex", strings.Replace(full, "48  ", "4g  ", 1), "cell 0"},
		{"hole in cells", strings.Replace(shortFirst, "41  ", "    ", 1), "follows a blank cell"},
		{"data after short line", full + short + strings.Replace(full, "000000000000", "000000000020", 1), "after a short line"},
		{"overlong line", strings.Repeat("0", 500) + "\n", "longer than"},
		{"cell gap", strings.Replace(full, "48  ", "48zz", 1), "cell 0 gap"},
		{"uppercase hex", strings.Replace(full, "6c  6c  ", "6C  6c  ", 1), "cell 2"},
		{"sidebar byte", strings.Replace(full, "Hello", "XXXXX", 1), "sidebar 0"},
		{"sidebar shows non-printable", strings.Replace(full, "!...", "!.\x00.", 1), "sidebar 14"},
		{"sidebar of blank cell", shortFirst[:len(shortFirst)-2] + "x\n", "sidebar 15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var back bytes.Buffer
			_, err := Undump(&back, strings.NewReader(tt.input), DefaultAddrDigits)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUndumpAcceptsEveryByte(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	var dump bytes.Buffer
	_, err := Dump(&dump, bytes.NewReader(data))
	require.NoError(t, err)

	var back bytes.Buffer
	n, err := Undump(&back, &dump, DefaultAddrDigits)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, back.Bytes())
}

func TestUndumpInvalidDigits(t *testing.T) {
	_, err := Undump(&bytes.Buffer{}, strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrInvalidAddrDigits)
}
