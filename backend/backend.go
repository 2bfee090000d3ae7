package backend

import (
	"errors"
)

// ErrBackendNotAvailable is returned when a requested backend is not available.
var ErrBackendNotAvailable = errors.New("backend: not available")

// LineEncoder is the interface for line encoding backends.
//
// Encode formats the 16 bytes at src as one dump line for offset into dst
// and returns the number of bytes written, which is always
// line.LineSize(digits). src must hold at least 16 bytes even when fewer are
// meaningful; dst must hold at least line.LineSize(digits) bytes. digits is
// the width of the offset field, 1 to 16.
//
// Encoders are registered once with Register and shared by all callers
// through Get, Lookup and Default, so implementations must be safe for
// concurrent use.
type LineEncoder interface {
	// Name returns the backend identifier (e.g., "lanes", "scalar").
	Name() string

	// Encode writes one line and returns its length.
	Encode(dst, src []byte, offset uint64, digits int) int
}
