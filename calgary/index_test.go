// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calgary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeIndexRoundTrip(t *testing.T) {
	offsets := []uint32{36, 100, 250}
	enc := EncodeIndex(offsets)
	require.Len(t, enc, 4*len(offsets))

	got, err := DecodeIndex(enc)
	require.NoError(t, err)
	require.Equal(t, offsets, got)
}

func TestDecodeIndexLengthNotMultipleOf4Errors(t *testing.T) {
	_, err := DecodeIndex([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeIndexEmpty(t *testing.T) {
	got, err := DecodeIndex(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
