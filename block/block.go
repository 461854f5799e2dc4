// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"

	"github.com/solidcoredata/yxdb/yerr"
)

// DecompressBufferSize is the fixed output buffer decompression targets:
// every block's decompressed length must fit within it.
const DecompressBufferSize = 0x40000

// literalBit is bit 31 of the writtenSize u32: clear means the payload is
// LZ4-compressed, set means it is stored literally.
const literalBit = uint32(1) << 31

// Encode renders payload as one on-disk block: a u32 LE writtenSize
// followed by [writtenSize & 0x7FFFFFFF] bytes.
//
// Compression rule: try to compress into a buffer of size len(payload)-1.
// If that fits, write the compressed bytes with bit 31 clear. Otherwise
// write payload verbatim with bit 31 set, so the stored size is never
// larger than len(payload) and the compression bit stays a stable
// predicate of whether compression shrank the block.
func Encode(payload []byte, c Compressor) ([]byte, error) {
	budget := len(payload) - 1
	if budget > 0 {
		compressed, ok, err := c.Compress(payload, budget)
		if err != nil {
			return nil, &yerr.BlockError{Msg: "compress: " + err.Error(), Err: err}
		}
		if ok {
			out := make([]byte, 4+len(compressed))
			binary.LittleEndian.PutUint32(out, uint32(len(compressed)))
			copy(out[4:], compressed)
			return out, nil
		}
	}
	out := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(out, uint32(len(payload))|literalBit)
	copy(out[4:], payload)
	return out, nil
}

// Decode reads one on-disk block from the front of raw and returns its
// decompressed payload. raw must contain at least the block's full bytes;
// trailing bytes beyond the block are ignored.
func Decode(raw []byte, c Compressor) ([]byte, error) {
	if len(raw) < 4 {
		return nil, &yerr.BlockError{Msg: "block shorter than its 4-byte length prefix"}
	}
	writtenSize := binary.LittleEndian.Uint32(raw)
	literal := writtenSize&literalBit != 0
	size := writtenSize &^ literalBit
	if int64(4)+int64(size) > int64(len(raw)) {
		return nil, &yerr.BlockError{Offset: 0, Msg: "block length prefix overruns remaining range"}
	}
	payload := raw[4 : 4+size]
	if literal {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}
	out, err := c.Decompress(payload, DecompressBufferSize)
	if err != nil {
		return nil, &yerr.BlockError{Msg: "decompress: " + err.Error(), Err: err}
	}
	return out, nil
}

// OnDiskLength returns the number of bytes an already-encoded block
// occupies on disk. Used by the writer's statistics accumulator to
// compute block index offsets without re-reading blocks back off disk.
func OnDiskLength(encoded []byte) int64 {
	return int64(len(encoded))
}
