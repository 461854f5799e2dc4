// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtext

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/yxdb/recordinfo"
)

func testRowSchema(t *testing.T) recordinfo.RecordInfo {
	t.Helper()
	id, err := recordinfo.NewFieldBuilder("id", recordinfo.Int32).Build()
	require.NoError(t, err)
	flag, err := recordinfo.NewFieldBuilder("flag", recordinfo.Bool).Build()
	require.NoError(t, err)
	price, err := recordinfo.NewFieldBuilder("price", recordinfo.FixedDecimal).Size(9).Scale(2).Build()
	require.NoError(t, err)
	name, err := recordinfo.NewFieldBuilder("name", recordinfo.String).Size(16).Build()
	require.NoError(t, err)
	evt, err := recordinfo.NewFieldBuilder("evt", recordinfo.Date).Build()
	require.NoError(t, err)
	ri, err := recordinfo.New(id, flag, price, name, evt)
	require.NoError(t, err)
	return ri
}

func TestRenderParseRowRoundTrip(t *testing.T) {
	ri := testRowSchema(t)
	evt, err := time.Parse(dateLayout, "2021-06-15")
	require.NoError(t, err)
	rec := recordinfo.Record{
		{Type: recordinfo.Int32, Value: int64(42)},
		{Type: recordinfo.Bool, Value: true},
		{Type: recordinfo.FixedDecimal, Value: "123.45"},
		{Type: recordinfo.String, Value: "widget"},
		{Type: recordinfo.Date, Value: evt},
	}

	line, err := renderRow(ri, rec)
	require.NoError(t, err)
	require.Equal(t, "42|true|123.45|widget|2021-06-15", line)

	got, err := parseRow(ri, line, 1)
	require.NoError(t, err)
	require.Equal(t, int64(42), got[0].Value)
	require.Equal(t, true, got[1].Value)
	require.Equal(t, "123.45", got[2].Value)
	require.Equal(t, "widget", got[3].Value)
	require.True(t, evt.Equal(got[4].Value.(time.Time)))
}

func TestParseRowMissingTrailingFieldIsNull(t *testing.T) {
	ri := testRowSchema(t)
	got, err := parseRow(ri, "42|true|123.45", 1)
	require.NoError(t, err)
	require.True(t, got[3].Null)
	require.True(t, got[4].Null)
}

func TestParseRowEmptyFieldIsNull(t *testing.T) {
	ri := testRowSchema(t)
	got, err := parseRow(ri, "42||123.45|widget|2021-06-15", 1)
	require.NoError(t, err)
	require.True(t, got[1].Null)
}

func TestRenderRowWrongFieldCountErrors(t *testing.T) {
	ri := testRowSchema(t)
	_, err := renderRow(ri, recordinfo.Record{{Type: recordinfo.Int32, Value: int64(1)}})
	require.Error(t, err)
}

func TestCSV2RecordsRecord2CSVRoundTrip(t *testing.T) {
	ri := testRowSchema(t)
	evt, err := time.Parse(dateLayout, "2021-06-15")
	require.NoError(t, err)
	recs := []recordinfo.Record{
		{
			{Type: recordinfo.Int32, Value: int64(1)},
			{Type: recordinfo.Bool, Value: false},
			{Type: recordinfo.FixedDecimal, Value: "1.00"},
			{Type: recordinfo.String, Value: "a"},
			{Type: recordinfo.Date, Value: evt},
		},
	}

	i := 0
	recSrc := RecordSource(func() (recordinfo.Record, error) {
		if i >= len(recs) {
			return nil, io.EOF
		}
		r := recs[i]
		i++
		return r, nil
	})
	lines := Record2CSV(ri)(recSrc)

	line, err := lines()
	require.NoError(t, err)
	require.Equal(t, "1|false|1.00|a|2021-06-15", line)

	j := 0
	lineSrc := LineSource(func() (string, error) {
		if j >= 1 {
			return "", io.EOF
		}
		j++
		return line, nil
	})
	got, err := CSV2Records(ri)(lineSrc)()
	require.NoError(t, err)
	require.Equal(t, recs[0][0].Value, got[0].Value)
	require.Equal(t, recs[0][3].Value, got[3].Value)
}
