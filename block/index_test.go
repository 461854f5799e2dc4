// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeIndexRoundTrip(t *testing.T) {
	offsets := []int64{512, 1024, 4096}

	enc := EncodeIndex(offsets)
	got, err := DecodeIndex(enc)
	require.NoError(t, err)
	require.Equal(t, offsets, got)
}

func TestDecodeIndexEmpty(t *testing.T) {
	enc := EncodeIndex(nil)
	got, err := DecodeIndex(enc)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeIndexShortOfCountErrors(t *testing.T) {
	_, err := DecodeIndex([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeIndexLengthMismatchErrors(t *testing.T) {
	enc := EncodeIndex([]int64{512, 1024})
	_, err := DecodeIndex(enc[:len(enc)-1])
	require.Error(t, err)
}

func TestDecodeIndexNonIncreasingOffsetsErrors(t *testing.T) {
	enc := EncodeIndex([]int64{512, 512})
	_, err := DecodeIndex(enc)
	require.Error(t, err)
}
