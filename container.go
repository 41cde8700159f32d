// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zopgz

package zopgz

import (
	"encoding/binary"
	"hash/adler32"
	"hash/crc32"
	"time"
)

// gzip member flag bits (RFC 1952).
const (
	flagText    = 1 << 0
	flagHdrCRC  = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// gzip header filler bytes: XFL 2 marks maximum compression, OS 3 is Unix.
const (
	gzipXFL = 2
	gzipOS  = 3
)

// gzipWrap frames the DEFLATE payload per RFC 1952. name, when non-empty,
// is stored NUL-terminated in FNAME; mtime, when non-zero, in MTIME.
func gzipWrap(payload, src []byte, name string, mtime time.Time) []byte {
	var flg byte
	if name != "" {
		flg |= flagName
	}

	var mt uint32
	if !mtime.IsZero() {
		if u := mtime.Unix(); u > 0 {
			mt = uint32(u)
		}
	}

	out := make([]byte, 0, len(payload)+20+len(name))
	out = append(out, 0x1f, 0x8b, 8, flg)
	out = binary.LittleEndian.AppendUint32(out, mt)
	out = append(out, gzipXFL, gzipOS)
	if name != "" {
		out = append(out, name...)
		out = append(out, 0)
	}
	out = append(out, payload...)
	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(src))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(src)))
	return out
}

// zlibWrap frames the DEFLATE payload per RFC 1950. CMF 0x78 is method 8
// with a 32K window; FLG 0xda marks maximum compression and satisfies the
// mod-31 check.
func zlibWrap(payload, src []byte) []byte {
	out := make([]byte, 0, len(payload)+6)
	out = append(out, 0x78, 0xda)
	out = append(out, payload...)
	out = binary.BigEndian.AppendUint32(out, adler32.Checksum(src))
	return out
}
