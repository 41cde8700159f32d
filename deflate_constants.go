// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zopgz

package zopgz

// DEFLATE format constants (RFC 1951): window and match bounds, alphabet
// sizes, block types, and the code-length-code transmission order.

// Window and match bounds.
const (
	windowSize  = 32768
	windowMask  = windowSize - 1
	minMatch    = 3
	maxMatch    = 258
	maxDistance = 32768
)

// Alphabet sizes.
const (
	numLitLenSymbols = 286 // literals 0–255, end-of-block 256, lengths 257–285
	numDistSymbols   = 30
	numClSymbols     = 19 // code-length-code alphabet
	endOfBlock       = 256
	maxCodeBits      = 15
	maxClBits        = 7
)

// Block types as encoded in the 2-bit BTYPE field.
const (
	blockStored  = 0
	blockStatic  = 1
	blockDynamic = 2
)

// maxStoredBlock is the largest LEN a stored block can carry.
const maxStoredBlock = 65535

// clOrder is the order in which code-length-code lengths are transmitted.
var clOrder = [numClSymbols]byte{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// Match finder hash parameters.
const (
	hashLog  = 15
	hashSize = 1 << hashLog
	hashMask = hashSize - 1
)
