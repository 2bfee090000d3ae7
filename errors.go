package xd

import "errors"

// Configuration and parse errors.
var (
	// ErrInvalidAddrDigits is returned when the offset width is outside 1..16.
	ErrInvalidAddrDigits = errors.New("xd: offset digits must be between 1 and 16")

	// ErrInvalidChunkSize is returned when the chunk size is not a positive
	// multiple of 16.
	ErrInvalidChunkSize = errors.New("xd: chunk size must be a positive multiple of 16")

	// ErrUnknownBackend is returned when WithBackend names an unregistered backend.
	ErrUnknownBackend = errors.New("xd: unknown backend")

	// ErrMalformedLine is returned by Undump for input that is not a dump line.
	ErrMalformedLine = errors.New("xd: malformed dump line")
)
