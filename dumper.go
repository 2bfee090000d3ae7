package xd

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/xd/backend"
	"github.com/gogpu/xd/internal/line"
)

// Defaults and layout constants.
const (
	// Columns is the number of input bytes rendered per line.
	Columns = line.Columns

	// DefaultAddrDigits is the default width of the offset field.
	DefaultAddrDigits = 12

	// DefaultChunkSize is the default number of input bytes read per write.
	DefaultChunkSize = 2 << 20

	// inputMargin keeps the encoder's 16-byte reads inside the input buffer
	// when the final block is short.
	inputMargin = 256
)

// Stats reports what one Dump call processed.
type Stats struct {
	Bytes  int64 // input bytes consumed
	Lines  int64 // lines written
	Chunks int   // chunks read (and writes issued)
}

// Dumper converts byte streams into hex dump text.
//
// A Dumper owns its input and output buffers, sized once in New, so it must
// not be used from more than one goroutine at a time. It may be reused for
// any number of streams; each Dump call starts again at offset 0.
type Dumper struct {
	digits int
	chunk  int
	enc    backend.LineEncoder
	in     []byte
	out    []byte
}

// New creates a Dumper.
//
// Example:
//
//	d, err := xd.New(xd.WithAddrDigits(8))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := d.Dump(os.Stdout, f); err != nil {
//		log.Fatal(err)
//	}
func New(opts ...Option) (*Dumper, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.digits < 1 || o.digits > line.MaxDigits {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidAddrDigits, o.digits)
	}
	if o.chunk <= 0 || o.chunk%Columns != 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidChunkSize, o.chunk)
	}
	enc, err := o.resolveBackend()
	if err != nil {
		if errors.Is(err, ErrUnknownBackend) {
			return nil, fmt.Errorf("%w %q (available: %v)", err, o.backend, backend.Available())
		}
		return nil, err
	}

	d := &Dumper{
		digits: o.digits,
		chunk:  o.chunk,
		enc:    enc,
		in:     make([]byte, o.chunk+inputMargin),
		out:    make([]byte, o.chunk/Columns*line.LineSize(o.digits)),
	}

	Logger().Info("xd: dumper ready",
		"backend", enc.Name(),
		"digits", o.digits,
		"chunk", o.chunk)
	return d, nil
}

// Backend returns the name of the line encoder in use.
func (d *Dumper) Backend() string { return d.enc.Name() }

// AddrDigits returns the width of the offset field.
func (d *Dumper) AddrDigits() int { return d.digits }

// LineSize returns the size in bytes of every line this Dumper writes.
func (d *Dumper) LineSize() int { return line.LineSize(d.digits) }

// Dump reads r to the end and writes its hex dump to w.
//
// Input is consumed in full chunks; the output of each chunk is handed to w
// in a single Write. A final block shorter than 16 bytes produces one line
// whose missing cells are blank. Read and write errors end the dump and are
// returned wrapped; the returned Stats cover everything written before that.
func (d *Dumper) Dump(w io.Writer, r io.Reader) (Stats, error) {
	var (
		st     Stats
		offset uint64
	)
	log := Logger()

	for {
		n, rerr := io.ReadFull(r, d.in[:d.chunk])
		if n > 0 {
			p := d.encodeChunk(n, offset)
			if _, err := w.Write(d.out[:p]); err != nil {
				return st, fmt.Errorf("xd: write output: %w", err)
			}

			lines := (n + Columns - 1) / Columns
			offset += uint64(lines) * Columns // #nosec G115
			st.Bytes += int64(n)
			st.Lines += int64(lines)
			st.Chunks++
			log.Debug("xd: chunk written",
				"bytes", n,
				"lines", lines,
				"offset", offset)
		}

		switch {
		case rerr == nil:
			continue
		case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
			return st, nil
		default:
			return st, fmt.Errorf("xd: read input: %w", rerr)
		}
	}
}

// encodeChunk encodes the first n bytes of the input buffer starting at
// offset and returns the number of output bytes produced.
func (d *Dumper) encodeChunk(n int, offset uint64) int {
	p := 0
	for i := 0; i < n; i += Columns {
		p += d.enc.Encode(d.out[p:], d.in[i:], offset, d.digits)
		offset += Columns
	}
	if rem := n % Columns; rem != 0 {
		line.Patch(d.out[:p], rem, d.digits)
	}
	return p
}

// Dump writes the hex dump of r to w using a Dumper configured by opts.
func Dump(w io.Writer, r io.Reader, opts ...Option) (Stats, error) {
	d, err := New(opts...)
	if err != nil {
		return Stats{}, err
	}
	return d.Dump(w, r)
}
