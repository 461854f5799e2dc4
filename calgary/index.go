// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calgary

import (
	"encoding/binary"

	"github.com/solidcoredata/yxdb/yerr"
)

// EncodeIndex renders offsets as the Calgary block index: an ordered
// sequence of u32 LE offsets with no leading count. Unlike the YXDB block
// index (block.EncodeIndex), the count is implied by the remaining byte
// length of the trailer.
func EncodeIndex(offsets []uint32) []byte {
	out := make([]byte, 4*len(offsets))
	for i, off := range offsets {
		binary.LittleEndian.PutUint32(out[4*i:], off)
	}
	return out
}

// DecodeIndex parses a Calgary block index from raw, asserting that its
// length is a multiple of 4.
func DecodeIndex(raw []byte) ([]uint32, error) {
	if len(raw)%4 != 0 {
		return nil, &yerr.IndexError{Msg: "calgary block index trailer length is not a multiple of 4"}
	}
	offsets := make([]uint32, len(raw)/4)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return offsets, nil
}
