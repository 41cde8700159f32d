// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zopgz

package zopgz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/adler32"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/flate"
)

// Decompress decodes all concatenated gzip/zlib members in src and returns
// the decompressed bytes. opts may be nil. Trailing non-member bytes after
// at least one valid member are ignored; use DecompressN to detect them.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	return out, err
}

// DecompressN is Decompress returning also the number of input bytes
// consumed (e.g. for streams followed by unrelated data).
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	var out []byte
	off := 0
	members := 0

	for off < len(src) {
		hdr, hlen, err := parseMemberHeader(src[off:])
		if err != nil {
			if members > 0 {
				// Trailing non-member bytes after complete members.
				break
			}
			return nil, off, err
		}

		before := len(out)
		br := bytes.NewReader(src[off+hlen:])
		out, err = inflateAppend(out, br, opts.MaxOutputSize)
		if err != nil {
			return nil, off, err
		}
		// br consumed the DEFLATE stream exactly; whatever it has not read
		// is the trailer plus any following members.
		off = len(src) - br.Len()

		off, err = verifyTrailer(src, off, hdr.Format, out[before:])
		if err != nil {
			return nil, off, err
		}

		members++
		if opts.SingleMember {
			break
		}
	}

	return out, off, nil
}

// inflateAppend inflates the DEFLATE stream at the reader's position onto
// dst. br must be an io.ByteReader so no input beyond the stream is consumed.
func inflateAppend(dst []byte, br *bytes.Reader, maxOut int) ([]byte, error) {
	fr := flate.NewReader(br)
	defer fr.Close()

	var buf [32 << 10]byte
	for {
		n, err := fr.Read(buf[:])
		dst = append(dst, buf[:n]...)
		if maxOut > 0 && len(dst) > maxOut {
			return nil, ErrOutputLimit
		}
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, mapInflateError(err)
		}
	}
}

// mapInflateError folds inflater errors into the package sentinels.
func mapInflateError(err error) error {
	var corrupt flate.CorruptInputError
	if errors.As(err, &corrupt) {
		return ErrCorrupt
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return ErrTruncated
	}
	var internal flate.InternalError
	if errors.As(err, &internal) {
		return ErrCorrupt
	}
	return err
}

// verifyTrailer checks the member trailer at src[off:] against the
// decompressed bytes and returns the offset past it.
func verifyTrailer(src []byte, off int, format Container, decoded []byte) (int, error) {
	switch format {
	case Zlib:
		if len(src)-off < 4 {
			return off, ErrTruncated
		}
		if binary.BigEndian.Uint32(src[off:off+4]) != adler32.Checksum(decoded) {
			return off, ErrCorrupt
		}
		return off + 4, nil

	default: // gzip
		if len(src)-off < 8 {
			return off, ErrTruncated
		}
		if binary.LittleEndian.Uint32(src[off:off+4]) != crc32.ChecksumIEEE(decoded) {
			return off, ErrCorrupt
		}
		if binary.LittleEndian.Uint32(src[off+4:off+8]) != uint32(len(decoded)) {
			return off, ErrCorrupt
		}
		return off + 8, nil
	}
}
