// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yxdb

import (
	"io"
	"os"

	"github.com/solidcoredata/yxdb/block"
	"github.com/solidcoredata/yxdb/yerr"
)

// SourceFileBlocks opens path and returns a BlockSource that lazily reads
// and decodes one block per call, in file order, plus a closer the caller
// must call once done. Only the bytes of the block currently being decoded
// are ever held in memory; the rest of the file is read lazily range by
// range.
func SourceFileBlocks(path string, m Metadata) (BlockSource, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &yerr.IOError{Stage: "open", Err: err}
	}
	ranges := m.blockRanges()
	i := 0
	src := func() ([]byte, error) {
		if i >= len(ranges) {
			return nil, io.EOF
		}
		r := ranges[i]
		i++
		raw := make([]byte, r.To-r.From)
		if _, err := f.ReadAt(raw, r.From); err != nil {
			return nil, &yerr.BlockError{Offset: r.From, Msg: "truncated block", Err: err}
		}
		return block.Decode(raw, block.LZ4Compressor{})
	}
	return src, f, nil
}

// SourceFileRecords opens path, reads its metadata, and returns a
// RecordSource over the full record stream plus a closer the caller must
// call once done.
func SourceFileRecords(path string) (RecordSource, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &yerr.IOError{Stage: "open", Err: err}
	}
	m, err := readMetadata(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	blocks, closer, err := SourceFileBlocks(path, m)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	records := BlocksToRecords(m.RecordInfo)(blocks)

	multiCloser := closeFunc(func() error {
		err1 := closer.Close()
		err2 := f.Close()
		if err1 != nil {
			return err1
		}
		return err2
	})
	return records, multiCloser, nil
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }
