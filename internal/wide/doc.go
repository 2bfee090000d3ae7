// Package wide provides SIMD-friendly wide types for 128-bit byte lane processing.
//
// This package implements wide types (U8x16, U16x8, U32x4) that are designed to
// enable Go compiler auto-vectorization. By using fixed-size arrays and simple
// loops, these types allow the compiler to generate SIMD instructions on
// supported architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// All three types cover the same 128 bits and convert between each other
// without changing the underlying bytes (little-endian), like a vector register
// viewed with different lane widths:
//
//	U8x16: 16 bytes (loads, stores, table lookups, compares, selects)
//	U16x8: 8 uint16 values (nibble unpacking with shifts and masks)
//	U32x4: 4 uint32 values (widening digit pairs into spaced cells)
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - No data-dependent branching across lanes; per-lane conditions are masks
//
// # Usage Example
//
//	// Map 16 nibbles (0..15) to ASCII hex digits
//	table := wide.U8x16{'0', '1', '2', '3', '4', '5', '6', '7',
//		'8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
//	digits := table.Shuffle(nibbles)
//	digits.Store(dst)
package wide
