package backend

import (
	"github.com/gogpu/xd/internal/line"
)

// Backend name constants.
const (
	// BackendLanes is the name of the 128-bit lane transform backend.
	BackendLanes = "lanes"
	// BackendScalar is the name of the per-byte table lookup backend.
	BackendScalar = "scalar"
)

// init registers the built-in backends on package import.
func init() {
	Register(LanesEncoder{})
	Register(ScalarEncoder{})
}

// LanesEncoder encodes a line with 16-lane byte vector operations.
// It has no per-byte branches and is written so the compiler can keep
// each step in one vector register.
type LanesEncoder struct{}

// Name returns the backend identifier.
func (LanesEncoder) Name() string { return BackendLanes }

// Encode writes one line and returns its length.
func (LanesEncoder) Encode(dst, src []byte, offset uint64, digits int) int {
	return line.Encode(dst, src, offset, digits)
}

// ScalarEncoder encodes a line one byte at a time through lookup tables.
type ScalarEncoder struct{}

// Name returns the backend identifier.
func (ScalarEncoder) Name() string { return BackendScalar }

// Encode writes one line and returns its length.
func (ScalarEncoder) Encode(dst, src []byte, offset uint64, digits int) int {
	return line.EncodeScalar(dst, src, offset, digits)
}
