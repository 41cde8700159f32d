// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/zopgz

/*
Package zopgz implements an iterative DEFLATE recompressor (Zopfli-style) with
gzip and zlib framing, plus a streaming gzip/zlib decompressor.

The compressor trades time for ratio: it re-encodes the same input repeatedly,
feeding each pass's symbol statistics back into the cost model of the next,
then splits the token stream into blocks and emits length-limited Huffman
codes built with boundary package-merge. Output is a standards-conformant
RFC 1951 stream wrapped per RFC 1952 (gzip) or RFC 1950 (zlib).

# Compress

Options may be nil (gzip container, level 9):

	out, err := zopgz.Compress(data, nil)
	out, err := zopgz.Compress(data, &zopgz.CompressOptions{Level: 5, Container: zopgz.Zlib})

# Decompress

Auto-detects gzip or zlib, handles concatenated members, verifies trailers:

	out, err := zopgz.Decompress(compressed, nil)

DecompressN additionally reports how far into the buffer the decoder got,
which lets a caller carve valid members out of a stream that carries
unrelated bytes after them:

	out, nRead, err := zopgz.DecompressN(compressed, nil)
	trailing := compressed[nRead:]

From an io.Reader:

	out, err := zopgz.DecompressFromReader(r, nil)
*/
package zopgz
