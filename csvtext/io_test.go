// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtext

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineSourceWriteLinesRoundTrip(t *testing.T) {
	lines := []string{"a|1", "b|2", "c|3"}
	var buf bytes.Buffer
	i := 0
	src := LineSource(func() (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		l := lines[i]
		i++
		return l, nil
	})

	require.NoError(t, WriteLines(&buf, src))
	require.Equal(t, "a|1\nb|2\nc|3\n", buf.String())

	got := NewLineSource(&buf)
	var out []string
	for {
		l, err := got()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, l)
	}
	require.Equal(t, lines, out)
}
