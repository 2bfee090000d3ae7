package xd

import "github.com/gogpu/xd/backend"

// Option configures a Dumper during creation.
// Use functional options to customize Dumper behavior.
//
// Example:
//
//	// Defaults: 12 offset digits, 2 MiB chunks, best backend for the CPU
//	d, err := xd.New()
//
//	// 8 offset digits, forced scalar backend
//	d, err := xd.New(xd.WithAddrDigits(8), xd.WithBackend("scalar"))
type Option func(*options)

// options holds optional configuration for Dumper creation.
type options struct {
	digits  int
	chunk   int
	backend string
}

// defaultOptions returns the default dumper options.
func defaultOptions() options {
	return options{
		digits:  DefaultAddrDigits,
		chunk:   DefaultChunkSize,
		backend: "", // Will be set to backend.Default() if empty
	}
}

// WithAddrDigits sets the width of the offset field in hex digits (1..16).
// Offsets that need more digits than this lose their leading digits, so pick
// a width that covers the largest input you expect.
func WithAddrDigits(n int) Option {
	return func(o *options) {
		o.digits = n
	}
}

// WithChunkSize sets how many input bytes are read and encoded per write.
// n must be a positive multiple of 16. The output buffer grows with it: one
// chunk of input needs about six times its size in output.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunk = n
	}
}

// WithBackend selects a line encoder by registry name.
//
// Example:
//
//	d, err := xd.New(xd.WithBackend(backend.BackendScalar))
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// resolveBackend returns the encoder named by o, or the default encoder.
func (o options) resolveBackend() (backend.LineEncoder, error) {
	if o.backend == "" {
		if enc := backend.Default(); enc != nil {
			return enc, nil
		}
		return nil, backend.ErrBackendNotAvailable
	}
	enc := backend.Get(o.backend)
	if enc == nil {
		return nil, ErrUnknownBackend
	}
	return enc, nil
}
