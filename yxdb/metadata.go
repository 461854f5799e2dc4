// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yxdb

import (
	"io"
	"os"

	"github.com/solidcoredata/yxdb/block"
	"github.com/solidcoredata/yxdb/recordinfo"
	"github.com/solidcoredata/yxdb/yerr"
)

// Metadata is the lazily-readable handle produced by GetMetadata: header,
// schema and block index, with no records loaded.
type Metadata struct {
	Header     Header
	RecordInfo recordinfo.RecordInfo
	BlockIndex []int64
}

// GetMetadata reads the header, schema and block index of the file at
// path without touching any record block.
func GetMetadata(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, &yerr.IOError{Stage: "open", Err: err}
	}
	defer f.Close()
	return readMetadata(f)
}

func readMetadata(f *os.File) (Metadata, error) {
	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(f, headerBuf); err != nil {
		return Metadata{}, &yerr.HeaderError{Msg: "truncated header", Err: err}
	}
	h, err := DecodeHeader(headerBuf)
	if err != nil {
		return Metadata{}, err
	}

	schemaBuf := make([]byte, 2*int64(h.MetaInfoLength))
	if _, err := io.ReadFull(f, schemaBuf); err != nil {
		return Metadata{}, &yerr.SchemaError{Stage: "read", Msg: "truncated schema", Err: err}
	}
	ri, err := recordinfo.DecodeSchema(schemaBuf)
	if err != nil {
		return Metadata{}, err
	}

	if _, err := f.Seek(int64(h.RecordBlockIndexPos), io.SeekStart); err != nil {
		return Metadata{}, &yerr.IOError{Stage: "seek to block index", Err: err}
	}
	indexBuf, err := io.ReadAll(f)
	if err != nil {
		return Metadata{}, &yerr.IOError{Stage: "read block index", Err: err}
	}
	offsets, err := block.DecodeIndex(indexBuf)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{Header: h, RecordInfo: ri, BlockIndex: offsets}, nil
}

// blockRanges pairs consecutive block-index offsets into byte ranges; the
// final block ends at the start of the block index itself.
func (m Metadata) blockRanges() []Range {
	if len(m.BlockIndex) == 0 {
		return nil
	}
	ranges := make([]Range, len(m.BlockIndex))
	for i, from := range m.BlockIndex {
		to := int64(m.Header.RecordBlockIndexPos)
		if i+1 < len(m.BlockIndex) {
			to = m.BlockIndex[i+1]
		}
		ranges[i] = Range{From: from, To: to}
	}
	return ranges
}

// Range identifies a byte range within a file, half-open [From, To).
type Range struct {
	From int64
	To   int64
}
