// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calgary

import (
	"context"
	"io"
	"os"

	"github.com/solidcoredata/yxdb/internal/stream"
	"github.com/solidcoredata/yxdb/recordinfo"
	"github.com/solidcoredata/yxdb/yerr"
)

// File is the lazily-readable Calgary handle: header, schema and block
// index are loaded eagerly; Records is read on demand via Records().
type File struct {
	Header     Header
	RecordInfo recordinfo.RecordInfo
	BlockIndex []uint32

	path string
}

// Open reads a Calgary file's header, schema and block index without
// decoding any record vector.
func Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, &yerr.IOError{Stage: "open", Err: err}
	}
	defer f.Close()

	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(f, headerBuf); err != nil {
		return File{}, &yerr.HeaderError{Msg: "truncated calgary header", Err: err}
	}
	h, err := DecodeHeader(headerBuf)
	if err != nil {
		return File{}, err
	}

	var numChars uint32
	if err := readUint32(f, &numChars); err != nil {
		return File{}, &yerr.SchemaError{Stage: "read", Msg: "truncated schema length", Err: err}
	}
	schemaBuf := make([]byte, 2*int64(numChars))
	if _, err := io.ReadFull(f, schemaBuf); err != nil {
		return File{}, &yerr.SchemaError{Stage: "read", Msg: "truncated schema", Err: err}
	}
	ri, err := recordinfo.DecodeSchema(schemaBuf)
	if err != nil {
		return File{}, err
	}

	if _, err := f.Seek(int64(h.IndexPosition), io.SeekStart); err != nil {
		return File{}, &yerr.IOError{Stage: "seek to calgary index", Err: err}
	}
	indexBuf, err := io.ReadAll(f)
	if err != nil {
		return File{}, &yerr.IOError{Stage: "read calgary index", Err: err}
	}
	offsets, err := DecodeIndex(indexBuf)
	if err != nil {
		return File{}, err
	}

	return File{Header: h, RecordInfo: ri, BlockIndex: offsets, path: path}, nil
}

// ranges pairs consecutive block-index offsets; the last range ends at
// IndexPosition.
func (cf File) ranges() []stream.Range {
	if len(cf.BlockIndex) == 0 {
		return nil
	}
	ranges := make([]stream.Range, len(cf.BlockIndex))
	for i, from := range cf.BlockIndex {
		to := int64(cf.Header.IndexPosition)
		if i+1 < len(cf.BlockIndex) {
			to = int64(cf.BlockIndex[i+1])
		}
		ranges[i] = stream.Range{From: int64(from), To: to}
	}
	return ranges
}

// Records decodes every block of cf and returns the concatenation of
// their record vectors, in file order. Unlike the YXDB read path, which
// stays lazy to bound memory on arbitrarily large files, Calgary's layout
// is explicitly random-access: each block is independent and
// self-delimited by its range, so decoding the ranges concurrently under
// one errgroup.Group (via internal/stream.SourceRanges) is both safe and
// faster, with results reassembled in range order before Records returns.
func (cf File) Records(ctx context.Context) ([]recordinfo.Record, error) {
	var records []recordinfo.Record
	err := stream.Scoped(ctx, func(ctx context.Context) error {
		f, err := os.Open(cf.path)
		if err != nil {
			return &yerr.IOError{Stage: "open", Err: err}
		}
		defer f.Close()

		ranges := cf.ranges()
		decode := func(_ context.Context, r stream.Range) ([]any, error) {
			raw := make([]byte, r.To-r.From)
			if _, err := f.ReadAt(raw, r.From); err != nil {
				return nil, &yerr.BlockError{Offset: r.From, Msg: "truncated calgary block", Err: err}
			}
			vector, err := decodeVector(cf.RecordInfo, raw)
			if err != nil {
				return nil, err
			}
			out := make([]any, len(vector))
			for i, rec := range vector {
				out[i] = rec
			}
			return out, nil
		}

		grouped, err := stream.SourceRanges(ctx, ranges, decode)
		if err != nil {
			return err
		}
		for _, vector := range grouped {
			for _, rec := range vector {
				records = append(records, rec.(recordinfo.Record))
			}
		}
		return nil
	})
	return records, err
}

// decodeVector decodes every record packed into a block's exact byte
// range. There is no per-block length prefix and no compression flag
// bit; the range boundaries delimit the bytes exactly.
func decodeVector(ri recordinfo.RecordInfo, raw []byte) ([]recordinfo.Record, error) {
	cur := recordinfo.NewCursor(raw)
	var vector []recordinfo.Record
	for cur.Remaining() > 0 {
		rec, err := recordinfo.DecodeRecord(ri, cur)
		if err != nil {
			return nil, err
		}
		vector = append(vector, rec)
	}
	return vector, nil
}

func readUint32(r io.Reader, out *uint32) error {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	*out = uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return nil
}
