// Package backend provides pluggable line encoders for the xd hex dumper.
//
// Every backend turns one 16-byte block plus its offset into one formatted
// dump line, and all backends produce byte-identical output. They differ only
// in how the work is done.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The built-in backends are registered on import:
//
//	import _ "github.com/gogpu/xd/backend"
//
// # Backend Selection
//
// Use Default() to get the best backend for the running CPU, or Get() to
// request a specific backend by name:
//
//	// Get the default (best available) backend
//	enc := backend.Default()
//
//	// Or request a specific backend
//	enc := backend.Get("scalar")
//
// # Available Backends
//
// - "lanes": 128-bit lane transforms (internal/wide), chosen when the CPU has
// byte-shuffle vector units the compiler can target
// - "scalar": per-byte table lookups, chosen everywhere else
package backend
