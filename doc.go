// Package xd writes canonical hex dumps at memory speed.
//
// # Overview
//
// xd turns a byte stream into lines of three columns: the offset, sixteen
// hex byte cells, and a sidebar showing printable bytes. Every 16-byte block
// is formatted by one line encoder call that works on whole 128-bit lanes
// (nibble unpacking, table lookups, widening, masked selects) instead of
// looping over bytes.
//
// # Quick Start
//
//	import "github.com/gogpu/xd"
//
//	// Dump a file to stdout with the default settings
//	f, _ := os.Open("firmware.bin")
//	defer f.Close()
//	if _, err := xd.Dump(os.Stdout, f); err != nil {
//		log.Fatal(err)
//	}
//
// # Output Layout
//
// With the default offset width of 12 digits, the 16 bytes
// "Hello, World!\n\x00\x00" at offset 0 become
//
//	000000000000  48  65  6c  6c  6f  2c  20  57  6f  72  6c  64  21  0a  00  00  Hello, World!...
//
// Each byte takes a four-character cell. The sidebar shows bytes 0x20
// through 0x7e as themselves and everything else as '.'. When the input
// length is not a multiple of 16 the cells of the missing bytes on the last
// line are blank. Every line has the same length, see Dumper.LineSize.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Dumper, Dump, Undump, options, logging
//   - backend: registry of line encoders ("lanes" and "scalar")
//   - Internal: wide (128-bit lane types), line (encoder and tail patch)
//
// # Performance
//
// Input is read in large chunks (2 MiB by default) and each chunk's output
// is written with a single Write, so wrapping the destination in a
// bufio.Writer brings no benefit.
package xd

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
