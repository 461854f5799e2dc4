// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSchemaRoundTrip(t *testing.T) {
	a, err := NewFieldBuilder("a", Int32).Description("an integer").Build()
	require.NoError(t, err)
	b, err := NewFieldBuilder("b", FixedDecimal).Size(9).Scale(2).Build()
	require.NoError(t, err)
	want, err := New(a, b)
	require.NoError(t, err)

	enc, err := EncodeSchema(want)
	require.NoError(t, err)
	require.Equal(t, schemaTerminator, enc[len(enc)-4:], "encoded schema must end with the \\n\\0 terminator")

	got, err := DecodeSchema(enc)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeSchemaZeroRecordInfoElementsErrors(t *testing.T) {
	raw, err := encodeUTF16LE("<MetaInfo></MetaInfo>")
	require.NoError(t, err)

	_, err = DecodeSchema(raw)
	require.Error(t, err)
}

func TestDecodeSchemaMultipleRecordInfoElementsErrors(t *testing.T) {
	raw, err := encodeUTF16LE(`<MetaInfo>` +
		`<RecordInfo><Field name="a" type="Int32"/></RecordInfo>` +
		`<RecordInfo><Field name="b" type="Int32"/></RecordInfo>` +
		`</MetaInfo>`)
	require.NoError(t, err)

	_, err = DecodeSchema(raw)
	require.Error(t, err)
}

func TestDecodeSchemaUnknownFieldTypeErrors(t *testing.T) {
	raw, err := encodeUTF16LE(`<MetaInfo><RecordInfo><Field name="a" type="NotAType"/></RecordInfo></MetaInfo>`)
	require.NoError(t, err)

	_, err = DecodeSchema(raw)
	require.Error(t, err)
}
