// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yxdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testHeader() Header {
	return Header{
		Description:         "a test file",
		FileID:              FileIDWithoutSpatialIndex,
		CreationDate:        1234,
		Flags1:              0,
		Flags2:              0,
		MetaInfoLength:      42,
		Mystery:             0,
		SpatialIndexPos:     0,
		RecordBlockIndexPos: 9999,
		NumRecords:          7,
		CompressionVersion:  CompressionVersion,
	}
}

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	h := testHeader()
	enc := EncodeHeader(h)
	require.Len(t, enc, HeaderSize)

	got, err := DecodeHeader(enc)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestDecodeHeaderWrongSizeErrors(t *testing.T) {
	_, err := DecodeHeader(make([]byte, HeaderSize-1))
	require.Error(t, err)
}

func TestDecodeHeaderRejectsUnknownMagic(t *testing.T) {
	h := testHeader()
	h.FileID = 0xDEADBEEF
	enc := EncodeHeader(h)

	_, err := DecodeHeader(enc)
	require.Error(t, err)
}

func TestDecodeHeaderAcceptsSpatialIndexMagic(t *testing.T) {
	h := testHeader()
	h.FileID = FileIDWithSpatialIndex
	enc := EncodeHeader(h)

	got, err := DecodeHeader(enc)
	require.NoError(t, err)
	require.Equal(t, h.FileID, got.FileID)
}
