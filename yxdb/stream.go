// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yxdb

import (
	"io"

	"github.com/solidcoredata/yxdb/block"
	"github.com/solidcoredata/yxdb/recordinfo"
)

// BlockSource yields one decoded (decompressed) block payload per call,
// and io.EOF once exhausted. Downstream calls it only when it wants more,
// and upstream does no work until asked.
type BlockSource func() ([]byte, error)

// RecordSource yields one Record per call, and io.EOF once exhausted.
type RecordSource func() (recordinfo.Record, error)

// BlocksToRecords returns a stage that decodes a BlockSource into a
// RecordSource: each block's payload is a concatenation of encoded
// records, decoded one at a time per call, with a fresh block
// pulled from src only once the previous block's cursor is exhausted.
func BlocksToRecords(ri recordinfo.RecordInfo) func(src BlockSource) RecordSource {
	return func(src BlockSource) RecordSource {
		var cur *recordinfo.Cursor
		return func() (recordinfo.Record, error) {
			for {
				if cur == nil || cur.Remaining() == 0 {
					payload, err := src()
					if err != nil {
						return nil, err
					}
					cur = recordinfo.NewCursor(payload)
				}
				return recordinfo.DecodeRecord(ri, cur)
			}
		}
	}
}

// miniblockThreshold is the soft payload size at which the aggregator
// closes a block early, keeping each block's uncompressed payload within
// block.DecompressBufferSize. A single record larger than the threshold
// still goes into one block.
const miniblockThreshold = block.DecompressBufferSize / 2

// RecordsToBlocks returns a stage that aggregates a RecordSource into a
// BlockSource of uncompressed block payloads, buffering up to
// recordsPerBlock records, or until the payload reaches miniblockThreshold
// bytes, before emitting one. The final, possibly short, block is emitted
// when src is exhausted.
func RecordsToBlocks(ri recordinfo.RecordInfo) func(src RecordSource) BlockSource {
	return func(src RecordSource) BlockSource {
		done := false
		return func() ([]byte, error) {
			if done {
				return nil, io.EOF
			}
			var payload []byte
			count := 0
			for count < recordsPerBlock && len(payload) < miniblockThreshold {
				rec, err := src()
				if err == io.EOF {
					done = true
					break
				}
				if err != nil {
					return nil, err
				}
				b, err := recordinfo.EncodeRecord(rec, ri)
				if err != nil {
					return nil, err
				}
				payload = append(payload, b...)
				count++
			}
			if count == 0 {
				return nil, io.EOF
			}
			return payload, nil
		}
	}
}

// SliceRecordSource adapts an in-memory []Record to a RecordSource, for
// callers who already hold the full record set in memory (tests, or small
// fixtures assembled programmatically).
func SliceRecordSource(records []recordinfo.Record) RecordSource {
	i := 0
	return func() (recordinfo.Record, error) {
		if i >= len(records) {
			return nil, io.EOF
		}
		r := records[i]
		i++
		return r, nil
	}
}
