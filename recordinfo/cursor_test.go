// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorTakeAdvancesAndTracksPosition(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	require.Equal(t, int64(0), c.Pos())
	require.Equal(t, 5, c.Remaining())

	b, err := c.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, int64(2), c.Pos())
	require.Equal(t, 3, c.Remaining())
}

func TestCursorTakePastEndErrors(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	_, err := c.Take(10)
	require.Error(t, err)
}

func TestCursorTakeNegativeErrors(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	_, err := c.Take(-1)
	require.Error(t, err)
}
