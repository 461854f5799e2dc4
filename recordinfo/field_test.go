// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldBuilderBuildsValidField(t *testing.T) {
	f, err := NewFieldBuilder("amount", FixedDecimal).Size(9).Scale(2).Description("price").Build()
	require.NoError(t, err)
	require.Equal(t, "amount", f.Name)
	require.Equal(t, FixedDecimal, f.Type)
	require.EqualValues(t, 9, f.Size)
	require.EqualValues(t, 2, f.Scale)
	require.True(t, f.UseSize)
	require.True(t, f.UseScale)
	require.Equal(t, "price", f.Description)
}

func TestFieldNameCharsetRejected(t *testing.T) {
	_, err := NewFieldBuilder("bad name!", Bool).Build()
	require.Error(t, err)
}

func TestFieldRequiresSize(t *testing.T) {
	_, err := NewFieldBuilder("s", String).Build()
	require.Error(t, err)

	_, err = NewFieldBuilder("s", String).Size(10).Build()
	require.NoError(t, err)
}

func TestFieldRequiresScaleOnlyForFixedDecimal(t *testing.T) {
	_, err := NewFieldBuilder("d", FixedDecimal).Size(9).Build()
	require.Error(t, err, "fixeddecimal without scale must fail")

	_, err = NewFieldBuilder("i", Int32).Scale(2).Build()
	require.Error(t, err, "scale on a non-fixeddecimal type must fail")

	_, err = NewFieldBuilder("i", Int32).Build()
	require.NoError(t, err)
}
