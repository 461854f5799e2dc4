// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calgary implements the Calgary container: an alternative YXDB
// outer layout sharing the field, record and schema codecs of package
// recordinfo, but laid out for random access with an explicit u32 offset
// table (no count prefix) rather than YXDB's count-prefixed u64 block
// index, and record-vector blocks with no per-block compression header
// bit.
package calgary

import (
	"encoding/binary"

	"github.com/solidcoredata/yxdb/yerr"
)

// HeaderSize treats the Calgary header as an opaque fixed-size prelude
// with one known field at a known offset. IndexPosition is placed at
// offset 0, the only field this codec interprets; everything else is
// opaque reserved bytes preserved verbatim on round-trip, following the
// same discipline as yxdb.Header.Reserved.
const HeaderSize = 32

// Header is the Calgary file's fixed-size prelude.
type Header struct {
	IndexPosition uint32
	Reserved      [HeaderSize - 4]byte
}

// EncodeHeader renders h as exactly HeaderSize bytes.
func EncodeHeader(h Header) []byte {
	out := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(out, h.IndexPosition)
	copy(out[4:], h.Reserved[:])
	return out
}

// DecodeHeader parses exactly HeaderSize bytes into a Header.
func DecodeHeader(raw []byte) (Header, error) {
	if len(raw) != HeaderSize {
		return Header{}, &yerr.HeaderError{Msg: "calgary header must be exactly 32 bytes"}
	}
	var h Header
	h.IndexPosition = binary.LittleEndian.Uint32(raw)
	copy(h.Reserved[:], raw[4:])
	return h, nil
}
