package line

import "github.com/gogpu/xd/internal/wide"

// z offsets a character by -' ' so hexTable entries stay below 0x80.
func z(c byte) byte { return c - ' ' }

// Lookup tables shared by every encode. Never written after init.
var (
	hexTable = wide.U8x16{
		z('0'), z('1'), z('2'), z('3'), z('4'), z('5'), z('6'), z('7'),
		z('8'), z('9'), z('a'), z('b'), z('c'), z('d'), z('e'), z('f'),
	}
	flipTable = wide.U8x16{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

	ones       = wide.SplatU8(1)
	spaces     = wide.SplatU8(' ')
	dots       = wide.SplatU8('.')
	nibbleMask = wide.SplatU16(0x0f0f)
)

// nibblesForward splits lanes 0..7 of x into 16 nibbles, least significant
// first: lane 2i holds the low nibble of x[i], lane 2i+1 its high nibble.
func nibblesForward(x wide.U8x16) wide.U8x16 {
	y := x.ExtendLow()
	return y.Or(y.Shl(4)).And(nibbleMask).U8()
}

// nibblesLow splits bytes 0..7 of x into nibble pairs in text order:
// lane 2i holds the high nibble of x[i], lane 2i+1 its low nibble.
func nibblesLow(x wide.U8x16) wide.U8x16 {
	y := x.ExtendLow()
	return y.Or(y.Shl(12)).Shr(4).U8()
}

// nibblesHigh is nibblesLow for bytes 8..15.
func nibblesHigh(x wide.U8x16) wide.U8x16 {
	y := x.ExtendHigh()
	return y.Or(y.Shl(12)).Shr(4).U8()
}

// hexBase maps nibbles to hex digits, still offset by -' '.
func hexBase(x wide.U8x16) wide.U8x16 {
	return hexTable.Shuffle(x)
}

// printable marks lanes where the signed byte x+1 exceeds ' '. The compare
// is signed, so 0x7f (x+1 wraps to -128) and 0x80..0xff (negative) are not
// printable; only 0x20..0x7e are.
func printable(x wide.U8x16) wide.U8x16 {
	return x.Add(ones).CmpGt(spaces)
}

// widenLow spreads the digit pairs of bytes 0..3 (or 8..11) into 4-byte cells.
func widenLow(x wide.U8x16) wide.U8x16 {
	return x.U16().ExtendLow().U8()
}

// widenHigh spreads the digit pairs of bytes 4..7 (or 12..15) into 4-byte cells.
func widenHigh(x wide.U8x16) wide.U8x16 {
	return x.U16().ExtendHigh().U8()
}

// flip reverses the first digits lanes of x into most-significant-first
// order. Lanes at digits and above come out zero.
func flip(x wide.U8x16, digits int) wide.U8x16 {
	return x.Shuffle(flipTable.Sub(wide.SplatU8(uint8(16 - digits)))) // #nosec G115
}

// finish undoes the -' ' table offset. Zero lanes become spaces.
func finish(x wide.U8x16) wide.U8x16 {
	return spaces.Add(x)
}
