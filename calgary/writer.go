// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calgary

import (
	"io"

	"github.com/solidcoredata/yxdb/recordinfo"
	"github.com/solidcoredata/yxdb/yerr"
)

// WriteFile writes a complete Calgary container to w: header placeholder,
// schema, one block per entry of vectors (each encoded as the
// concatenation of its records, with no length prefix or compression
// bit), then the offset index, then the header is patched in place.
// Unlike yxdb.SinkRecords this takes the record vectors directly rather
// than a single flat RecordSource, since Calgary's data model groups
// records into vectors rather than a continuous stream.
func WriteFile(w io.WriteSeeker, ri recordinfo.RecordInfo, vectors [][]recordinfo.Record) error {
	if _, err := w.Write(make([]byte, HeaderSize)); err != nil {
		return &yerr.IOError{Stage: "write calgary header placeholder", Err: err}
	}

	schemaBytes, err := recordinfo.EncodeSchema(ri)
	if err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(schemaBytes)/2)); err != nil {
		return &yerr.IOError{Stage: "write calgary schema length", Err: err}
	}
	if _, err := w.Write(schemaBytes); err != nil {
		return &yerr.IOError{Stage: "write calgary schema", Err: err}
	}

	startOfBlocks := uint32(HeaderSize + 4 + len(schemaBytes))
	offsets := make([]uint32, len(vectors))
	pos := startOfBlocks
	for i, vector := range vectors {
		offsets[i] = pos
		var payload []byte
		for _, rec := range vector {
			b, err := recordinfo.EncodeRecord(rec, ri)
			if err != nil {
				return err
			}
			payload = append(payload, b...)
		}
		if _, err := w.Write(payload); err != nil {
			return &yerr.IOError{Stage: "write calgary block", Err: err}
		}
		pos += uint32(len(payload))
	}
	indexPosition := pos

	if _, err := w.Write(EncodeIndex(offsets)); err != nil {
		return &yerr.IOError{Stage: "write calgary index", Err: err}
	}

	h := Header{IndexPosition: indexPosition}
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return &yerr.IOError{Stage: "seek to calgary header", Err: err}
	}
	if _, err := w.Write(EncodeHeader(h)); err != nil {
		return &yerr.IOError{Stage: "write calgary header", Err: err}
	}
	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	buf := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	_, err := w.Write(buf)
	return err
}
