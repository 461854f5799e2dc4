// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"

	"github.com/solidcoredata/yxdb/yerr"
)

// EncodeIndex renders offsets as the trailing block-index table: a u32 LE
// count followed by count u64 LE absolute byte offsets.
func EncodeIndex(offsets []int64) []byte {
	out := make([]byte, 4+8*len(offsets))
	binary.LittleEndian.PutUint32(out, uint32(len(offsets)))
	for i, off := range offsets {
		binary.LittleEndian.PutUint64(out[4+8*i:], uint64(off))
	}
	return out
}

// DecodeIndex parses the block-index table from raw, asserting that
// exactly count*8 bytes follow the count field and that the resulting
// offsets are strictly increasing.
func DecodeIndex(raw []byte) ([]int64, error) {
	if len(raw) < 4 {
		return nil, &yerr.IndexError{Msg: "block index shorter than its 4-byte count"}
	}
	count := binary.LittleEndian.Uint32(raw)
	want := 4 + 8*int64(count)
	if int64(len(raw)) != want {
		return nil, &yerr.IndexError{Offset: 4, Msg: "block index trailer length mismatch"}
	}
	offsets := make([]int64, count)
	for i := range offsets {
		offsets[i] = int64(binary.LittleEndian.Uint64(raw[4+8*i:]))
		if i > 0 && offsets[i] <= offsets[i-1] {
			return nil, &yerr.IndexError{Offset: int64(4 + 8*i), Msg: "block index offsets are not strictly increasing"}
		}
	}
	return offsets, nil
}
