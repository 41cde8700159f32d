// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/zopgz

package zopgz

import "errors"

// Package sentinels. Decompression failures fold into three stream error
// kinds plus an empty-input error and the caller-imposed size caps; read
// errors from DecompressFromReader's source are returned unchanged.
// Compression itself cannot fail except on an out-of-range options record.
var (
	// ErrEmptyInput: Decompress was handed zero bytes, so there is not even
	// a header to look at.
	ErrEmptyInput = errors.New("no data to decompress")
	// ErrHeader: the bytes at the current offset are not a well-formed gzip
	// or zlib member header.
	ErrHeader = errors.New("malformed header")
	// ErrCorrupt: the DEFLATE payload is undecodable, or a trailer checksum
	// or size field disagrees with the decoded data.
	ErrCorrupt = errors.New("corrupt payload")
	// ErrTruncated: the member ends mid-header, mid-payload or mid-trailer.
	ErrTruncated = errors.New("truncated stream")
	// ErrInputLimit: DecompressFromReader hit the MaxInputSize cap before
	// the source stream ended.
	ErrInputLimit = errors.New("compressed stream larger than the configured limit")
	// ErrOutputLimit: decoding would grow the output past MaxOutputSize.
	ErrOutputLimit = errors.New("decompressed data larger than the configured limit")
	// ErrBadOptions: Compress was given an options record with an unknown
	// container or block-split mode.
	ErrBadOptions = errors.New("invalid options")
)
