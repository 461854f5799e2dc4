// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yxdb

import (
	"context"
	"io"

	"github.com/solidcoredata/yxdb/calgary"
	"github.com/solidcoredata/yxdb/recordinfo"
)

// SourceCalgaryFileRecords opens the Calgary file at path and returns a
// RecordSource over the concatenation of its record vectors, in file
// order. Calgary's layout is explicitly random-access, so unlike
// SourceFileRecords, this reads the whole file's vectors up front rather
// than staying lazy; see calgary.File.Records.
func SourceCalgaryFileRecords(path string) (RecordSource, error) {
	cf, err := calgary.Open(path)
	if err != nil {
		return nil, err
	}
	records, err := cf.Records(context.Background())
	if err != nil {
		return nil, err
	}
	i := 0
	return func() (recordinfo.Record, error) {
		if i >= len(records) {
			return nil, io.EOF
		}
		r := records[i]
		i++
		return r, nil
	}, nil
}
