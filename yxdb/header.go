// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yxdb implements the YXDB container: the fixed-size header, the
// streaming producer/consumer pipeline that reconstructs the header and
// block index only after the record stream has been fully consumed, and
// the public read/write API.
package yxdb

import (
	"encoding/binary"

	"github.com/solidcoredata/yxdb/yerr"
)

// HeaderSize is the fixed byte length of the YXDB file prelude.
const HeaderSize = 512

const descriptionSize = 64
const reservedSize = HeaderSize - 116

// FileID magic values.
const (
	FileIDWithSpatialIndex    uint32 = 0x00440205
	FileIDWithoutSpatialIndex uint32 = 0x00440204
)

// CompressionVersion is the value writers set for Header.CompressionVersion.
const CompressionVersion = 1

// Header is the fixed 512-byte file prelude.
type Header struct {
	Description string

	FileID       uint32
	CreationDate uint32
	Flags1       uint32
	Flags2       uint32

	MetaInfoLength uint32
	Mystery        uint32

	SpatialIndexPos      uint64
	RecordBlockIndexPos  uint64
	NumRecords           uint64
	CompressionVersion   uint32

	// Reserved is the opaque trailing padding, preserved verbatim on
	// round-trip.
	Reserved [reservedSize]byte
}

// EncodeHeader renders h as exactly HeaderSize bytes.
func EncodeHeader(h Header) []byte {
	out := make([]byte, HeaderSize)
	copy(out[:descriptionSize], []byte(h.Description))

	off := descriptionSize
	binary.LittleEndian.PutUint32(out[off:], h.FileID)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], h.CreationDate)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], h.Flags1)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], h.Flags2)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], h.MetaInfoLength)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], h.Mystery)
	off += 4
	binary.LittleEndian.PutUint64(out[off:], h.SpatialIndexPos)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], h.RecordBlockIndexPos)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], h.NumRecords)
	off += 8
	binary.LittleEndian.PutUint32(out[off:], h.CompressionVersion)
	off += 4
	copy(out[off:], h.Reserved[:])
	return out
}

// DecodeHeader parses exactly HeaderSize bytes into a Header, rejecting
// anything whose FileID does not match a known magic. A reader that opens
// a file still being written will observe a zero or partial header here
// and must reject it via the magic check.
func DecodeHeader(raw []byte) (Header, error) {
	if len(raw) != HeaderSize {
		return Header{}, &yerr.HeaderError{Msg: "header must be exactly 512 bytes"}
	}
	var h Header
	h.Description = trimNulString(raw[:descriptionSize])

	off := descriptionSize
	h.FileID = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	h.CreationDate = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	h.Flags1 = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	h.Flags2 = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	h.MetaInfoLength = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	h.Mystery = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	h.SpatialIndexPos = binary.LittleEndian.Uint64(raw[off:])
	off += 8
	h.RecordBlockIndexPos = binary.LittleEndian.Uint64(raw[off:])
	off += 8
	h.NumRecords = binary.LittleEndian.Uint64(raw[off:])
	off += 8
	h.CompressionVersion = binary.LittleEndian.Uint32(raw[off:])
	off += 4
	copy(h.Reserved[:], raw[off:])

	if h.FileID != FileIDWithSpatialIndex && h.FileID != FileIDWithoutSpatialIndex {
		return Header{}, &yerr.HeaderError{Msg: "unrecognized file magic"}
	}
	return h, nil
}

func trimNulString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
