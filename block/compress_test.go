// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZ4CompressorRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("abcdefgh"), 256)

	c := LZ4Compressor{}
	compressed, ok, err := c.Compress(payload, len(payload)-1)
	require.NoError(t, err)
	require.True(t, ok, "repetitive payload should compress below its own size")
	require.Less(t, len(compressed), len(payload))

	got, err := c.Decompress(compressed, DecompressBufferSize)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestLZ4CompressorZeroBudgetFails(t *testing.T) {
	c := LZ4Compressor{}
	_, ok, err := c.Compress([]byte{1, 2, 3}, 0)
	require.NoError(t, err)
	require.False(t, ok)
}
