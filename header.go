// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zopgz

package zopgz

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"time"
)

// MemberHeader describes one parsed gzip or zlib member header.
type MemberHeader struct {
	// Format is Gzip or Zlib.
	Format Container
	// Name is the gzip FNAME field, empty when absent.
	Name string
	// Comment is the gzip FCOMMENT field, empty when absent.
	Comment string
	// Extra is the gzip FEXTRA payload, nil when absent.
	Extra []byte
	// ModTime is the gzip MTIME field; zero when absent or unset.
	ModTime time.Time
	// OS is the gzip operating-system byte.
	OS byte
}

// ParseHeader parses the member header at the start of src and returns it
// together with its encoded length. It does not touch the payload.
func ParseHeader(src []byte) (*MemberHeader, int, error) {
	return parseMemberHeader(src)
}

// parseMemberHeader detects the framing and parses the header.
// ErrHeader means src does not start with a gzip or zlib member.
func parseMemberHeader(b []byte) (*MemberHeader, int, error) {
	if len(b) == 0 {
		return nil, 0, ErrTruncated
	}
	if b[0] == 0x1f {
		if len(b) < 2 {
			return nil, 0, ErrTruncated
		}
		if b[1] == 0x8b {
			return parseGzipHeader(b)
		}
		return nil, 0, ErrHeader
	}
	if isZlibHeader(b) {
		return &MemberHeader{Format: Zlib}, 2, nil
	}
	return nil, 0, ErrHeader
}

// isZlibHeader reports whether b starts with a valid RFC 1950 header:
// method 8, window ≤ 32K, mod-31 check, no preset dictionary.
func isZlibHeader(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	if b[0]&0x0f != 8 || b[0]>>4 > 7 {
		return false
	}
	if b[1]&0x20 != 0 {
		return false
	}
	return (uint32(b[0])<<8|uint32(b[1]))%31 == 0
}

// parseGzipHeader parses a full RFC 1952 member header, including the
// optional FEXTRA, FNAME, FCOMMENT and FHCRC fields.
func parseGzipHeader(b []byte) (*MemberHeader, int, error) {
	if len(b) < 10 {
		return nil, 0, ErrTruncated
	}
	if b[2] != 8 {
		return nil, 0, ErrHeader
	}

	flg := b[3]
	if flg&0xe0 != 0 {
		// Reserved flag bits must be zero.
		return nil, 0, ErrHeader
	}

	h := &MemberHeader{Format: Gzip, OS: b[9]}
	if mt := binary.LittleEndian.Uint32(b[4:8]); mt != 0 {
		h.ModTime = time.Unix(int64(mt), 0)
	}

	pos := 10
	if flg&flagExtra != 0 {
		if len(b) < pos+2 {
			return nil, 0, ErrTruncated
		}
		xlen := int(binary.LittleEndian.Uint16(b[pos : pos+2]))
		pos += 2
		if len(b) < pos+xlen {
			return nil, 0, ErrTruncated
		}
		h.Extra = append([]byte(nil), b[pos:pos+xlen]...)
		pos += xlen
	}
	if flg&flagName != 0 {
		nul := bytes.IndexByte(b[pos:], 0)
		if nul < 0 {
			return nil, 0, ErrTruncated
		}
		h.Name = string(b[pos : pos+nul])
		pos += nul + 1
	}
	if flg&flagComment != 0 {
		nul := bytes.IndexByte(b[pos:], 0)
		if nul < 0 {
			return nil, 0, ErrTruncated
		}
		h.Comment = string(b[pos : pos+nul])
		pos += nul + 1
	}
	if flg&flagHdrCRC != 0 {
		if len(b) < pos+2 {
			return nil, 0, ErrTruncated
		}
		want := binary.LittleEndian.Uint16(b[pos : pos+2])
		if uint16(crc32.ChecksumIEEE(b[:pos])) != want {
			return nil, 0, ErrHeader
		}
		pos += 2
	}

	return h, pos, nil
}
