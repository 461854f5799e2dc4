// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecordInfo(t *testing.T) RecordInfo {
	t.Helper()
	a, err := NewFieldBuilder("a", Int32).Build()
	require.NoError(t, err)
	b, err := NewFieldBuilder("b", String).Size(4).Build()
	require.NoError(t, err)
	ri, err := New(a, b)
	require.NoError(t, err)
	return ri
}

func TestEncodeDecodeRecordRoundTrip(t *testing.T) {
	ri := testRecordInfo(t)
	rec := Record{
		{Type: Int32, Value: int64(1)},
		{Type: String, Value: "abcd"},
	}

	enc, err := EncodeRecord(rec, ri)
	require.NoError(t, err)

	cur := NewCursor(enc)
	got, err := DecodeRecord(ri, cur)
	require.NoError(t, err)
	require.Equal(t, 0, cur.Remaining())
	require.Equal(t, rec, got)
}

func TestEncodeRecordWrongFieldCountErrors(t *testing.T) {
	ri := testRecordInfo(t)
	_, err := EncodeRecord(Record{{Type: Int32, Value: int64(1)}}, ri)
	require.Error(t, err)
}

func TestDecodeRecordSequenceOfMultipleRecords(t *testing.T) {
	ri := testRecordInfo(t)
	recs := []Record{
		{{Type: Int32, Value: int64(1)}, {Type: String, Value: "abcd"}},
		{{Type: Int32, Value: int64(2)}, {Type: String, Value: "wxyz"}},
	}
	var payload []byte
	for _, r := range recs {
		b, err := EncodeRecord(r, ri)
		require.NoError(t, err)
		payload = append(payload, b...)
	}

	cur := NewCursor(payload)
	for _, want := range recs {
		got, err := DecodeRecord(ri, cur)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, cur.Remaining())
}
