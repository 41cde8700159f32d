// SPDX-License-Identifier: Apache-2.0
// Source: github.com/woozymasta/zopgz

package zopgz

import "math/bits"

// LZ77 symbol mapping per the DEFLATE spec: the length side is tabulated,
// the distance side is computed from the top-bit position of dist-1.

// lengthSymbolTable maps match length (3–258) to its literal/length symbol (257–285).
var lengthSymbolTable = [maxMatch + 1]uint16{
	0, 0, 0, 257, 258, 259, 260, 261, 262, 263, 264,
	265, 265, 266, 266, 267, 267, 268, 268,
	269, 269, 269, 269, 270, 270, 270, 270,
	271, 271, 271, 271, 272, 272, 272, 272,
	273, 273, 273, 273, 273, 273, 273, 273,
	274, 274, 274, 274, 274, 274, 274, 274,
	275, 275, 275, 275, 275, 275, 275, 275,
	276, 276, 276, 276, 276, 276, 276, 276,
	277, 277, 277, 277, 277, 277, 277, 277,
	277, 277, 277, 277, 277, 277, 277, 277,
	278, 278, 278, 278, 278, 278, 278, 278,
	278, 278, 278, 278, 278, 278, 278, 278,
	279, 279, 279, 279, 279, 279, 279, 279,
	279, 279, 279, 279, 279, 279, 279, 279,
	280, 280, 280, 280, 280, 280, 280, 280,
	280, 280, 280, 280, 280, 280, 280, 280,
	281, 281, 281, 281, 281, 281, 281, 281,
	281, 281, 281, 281, 281, 281, 281, 281,
	281, 281, 281, 281, 281, 281, 281, 281,
	281, 281, 281, 281, 281, 281, 281, 281,
	282, 282, 282, 282, 282, 282, 282, 282,
	282, 282, 282, 282, 282, 282, 282, 282,
	282, 282, 282, 282, 282, 282, 282, 282,
	282, 282, 282, 282, 282, 282, 282, 282,
	283, 283, 283, 283, 283, 283, 283, 283,
	283, 283, 283, 283, 283, 283, 283, 283,
	283, 283, 283, 283, 283, 283, 283, 283,
	283, 283, 283, 283, 283, 283, 283, 283,
	284, 284, 284, 284, 284, 284, 284, 284,
	284, 284, 284, 284, 284, 284, 284, 284,
	284, 284, 284, 284, 284, 284, 284, 284,
	284, 284, 284, 284, 284, 284, 284, 285,
}

// lengthExtraBitsTable maps match length to the number of extra bits after its symbol.
var lengthExtraBitsTable = [maxMatch + 1]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 0,
}

// lengthSymbol returns the literal/length symbol for a match length.
func lengthSymbol(length int) int {
	return int(lengthSymbolTable[length])
}

// lengthExtraBits returns the number of extra bits for a match length.
func lengthExtraBits(length int) int {
	return int(lengthExtraBitsTable[length])
}

// lengthExtraValue returns the value of the extra bits for a match length.
// The base length of a symbol is the smallest length mapping to it.
func lengthExtraValue(length int) int {
	n := lengthExtraBits(length)
	if n == 0 {
		return 0
	}
	// Lengths 3..258 partition into runs of 2^n per symbol; 258 is the lone
	// exception with its own zero-extra-bit symbol.
	return (length - 3) & ((1 << n) - 1)
}

// distSymbol returns the distance symbol (0–29) for a distance in [1..32768].
func distSymbol(dist int) int {
	if dist < 5 {
		return dist - 1
	}
	l := bits.Len32(uint32(dist-1)) - 1
	r := ((dist - 1) >> (l - 1)) & 1
	return l*2 + r
}

// distExtraBits returns the number of extra bits for a distance.
func distExtraBits(dist int) int {
	if dist < 5 {
		return 0
	}
	return bits.Len32(uint32(dist-1)) - 2
}

// distExtraValue returns the value of the extra bits for a distance.
func distExtraValue(dist int) int {
	if dist < 5 {
		return 0
	}
	l := bits.Len32(uint32(dist-1)) - 1
	return (dist - (1 + 1<<l)) & (1<<(l-1) - 1)
}
