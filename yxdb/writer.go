// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yxdb

import (
	"io"
	"time"

	"github.com/solidcoredata/yxdb/block"
	"github.com/solidcoredata/yxdb/recordinfo"
	"github.com/solidcoredata/yxdb/yerr"
)

// recordsPerBlock bounds how many records the aggregator buffers before
// emitting one block.
const recordsPerBlock = 0x10000

// WriteSeeker is a sequential-write file handle with absolute seek.
// Implementations that cannot seek (e.g. pipes) must buffer the whole
// file themselves or reject the write; that is a hard requirement of this
// package's write path, not something it softens.
type WriteSeeker interface {
	io.Writer
	io.Seeker
}

// nowFunc is the wall-clock now() -> unix seconds capability, overridable
// by tests so a fixture's creationDate is deterministic.
var nowFunc = func() uint32 { return uint32(time.Now().Unix()) }

// writeStats is the statistics accumulator private to the writer:
// metadataLength, the on-disk length of each emitted block in emission
// order, and the cumulative record count.
type writeStats struct {
	metadataLength int64
	blockLengths   []int64
	numRecords     uint64
}

// SinkRecords writes a complete YXDB file to w, consuming src to
// exhaustion, via a writer state progression of Init -> SchemaWritten ->
// BlocksBuffering -> Finalizing -> Done. A failure at any point aborts;
// the partially written file is left on disk uncleaned.
func SinkRecords(w WriteSeeker, ri recordinfo.RecordInfo, src RecordSource) error {
	stats := &writeStats{}

	// Init: placeholder header.
	if _, err := w.Write(make([]byte, HeaderSize)); err != nil {
		return &yerr.IOError{Stage: "write header placeholder", Err: err}
	}

	// SchemaWritten.
	schemaBytes, err := recordinfo.EncodeSchema(ri)
	if err != nil {
		return err
	}
	stats.metadataLength = int64(len(schemaBytes))
	if _, err := w.Write(schemaBytes); err != nil {
		return &yerr.IOError{Stage: "write schema", Err: err}
	}

	// BlocksBuffering: self-loops pulling records, emitting a block each
	// time the aggregator fills or the record stream ends.
	counted := countingSource(src, &stats.numRecords)
	blocks := RecordsToBlocks(ri)(counted)
	compressor := block.LZ4Compressor{}
	for {
		payload, err := blocks()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		encoded, err := block.Encode(payload, compressor)
		if err != nil {
			return err
		}
		stats.blockLengths = append(stats.blockLengths, block.OnDiskLength(encoded))
		if _, err := w.Write(encoded); err != nil {
			return &yerr.IOError{Stage: "write block", Err: err}
		}
	}

	// Finalizing: compute the block index and the final header, then
	// seek-and-patch.
	startOfBlocks := HeaderSize + stats.metadataLength
	offsets := make([]int64, len(stats.blockLengths))
	pos := startOfBlocks
	for i, n := range stats.blockLengths {
		offsets[i] = pos
		pos += n
	}
	recordBlockIndexPos := pos

	h := Header{
		FileID:              FileIDWithSpatialIndex,
		CreationDate:        nowFunc(),
		MetaInfoLength:      uint32(stats.metadataLength / 2),
		SpatialIndexPos:     0,
		RecordBlockIndexPos: uint64(recordBlockIndexPos),
		NumRecords:          stats.numRecords,
		CompressionVersion:  CompressionVersion,
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return &yerr.IOError{Stage: "seek to header", Err: err}
	}
	if _, err := w.Write(EncodeHeader(h)); err != nil {
		return &yerr.IOError{Stage: "write header", Err: err}
	}
	if _, err := w.Seek(recordBlockIndexPos, io.SeekStart); err != nil {
		return &yerr.IOError{Stage: "seek to block index", Err: err}
	}
	if _, err := w.Write(block.EncodeIndex(offsets)); err != nil {
		return &yerr.IOError{Stage: "write block index", Err: err}
	}

	// Done.
	return nil
}

// countingSource wraps src, incrementing *n for every record it yields
// before the caller's own block-aggregation stage consumes it.
func countingSource(src RecordSource, n *uint64) RecordSource {
	return func() (recordinfo.Record, error) {
		r, err := src()
		if err != nil {
			return nil, err
		}
		*n++
		return r, nil
	}
}
