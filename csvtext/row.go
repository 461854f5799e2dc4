// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtext

import (
	"strconv"
	"strings"
	"time"

	"github.com/solidcoredata/yxdb/recordinfo"
	"github.com/solidcoredata/yxdb/yerr"
)

// LineSource yields one raw text line per call, and io.EOF once exhausted.
type LineSource func() (string, error)

// RecordSource yields one Record per call, and io.EOF once exhausted.
type RecordSource func() (recordinfo.Record, error)

// CSV2Records returns a stage that parses each line src yields into a
// Record against ri: pipe-separated fields, no quoting, UTF-8; missing
// trailing fields and empty fields are null.
func CSV2Records(ri recordinfo.RecordInfo) func(src LineSource) RecordSource {
	return func(src LineSource) RecordSource {
		lineNo := 0
		return func() (recordinfo.Record, error) {
			line, err := src()
			if err != nil {
				return nil, err
			}
			lineNo++
			return parseRow(ri, line, lineNo)
		}
	}
}

// Record2CSV returns a stage that renders each record src yields as one
// pipe-delimited text line.
func Record2CSV(ri recordinfo.RecordInfo) func(src RecordSource) LineSource {
	return func(src RecordSource) LineSource {
		return func() (string, error) {
			rec, err := src()
			if err != nil {
				return "", err
			}
			return renderRow(ri, rec)
		}
	}
}

func parseRow(ri recordinfo.RecordInfo, line string, lineNo int) (recordinfo.Record, error) {
	line = strings.TrimRight(line, "\r\n")
	tokens := strings.Split(line, "|")
	rec := make(recordinfo.Record, len(ri.Fields))
	for i, f := range ri.Fields {
		var tok string
		if i < len(tokens) {
			tok = tokens[i]
		} // else: missing trailing field, tok stays "" -> null
		fv, err := parseValue(f, tok)
		if err != nil {
			return nil, &yerr.TextError{Line: lineNo, Msg: err.Error(), Err: err}
		}
		rec[i] = fv
	}
	return rec, nil
}

func renderRow(ri recordinfo.RecordInfo, rec recordinfo.Record) (string, error) {
	if len(rec) != len(ri.Fields) {
		return "", &yerr.RecordError{Msg: "record has wrong field count for csv render"}
	}
	parts := make([]string, len(rec))
	for i, f := range ri.Fields {
		s, err := renderValue(f, rec[i])
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, "|"), nil
}

func parseValue(f recordinfo.Field, tok string) (recordinfo.FieldValue, error) {
	if tok == "" {
		return recordinfo.FieldValue{Type: f.Type, Null: true}, nil
	}
	switch f.Type {
	case recordinfo.Bool:
		b, err := strconv.ParseBool(tok)
		if err != nil {
			return recordinfo.FieldValue{}, err
		}
		return recordinfo.FieldValue{Type: f.Type, Value: b}, nil
	case recordinfo.Byte, recordinfo.Int16, recordinfo.Int32, recordinfo.Int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return recordinfo.FieldValue{}, err
		}
		return recordinfo.FieldValue{Type: f.Type, Value: n}, nil
	case recordinfo.Float, recordinfo.Double:
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return recordinfo.FieldValue{}, err
		}
		return recordinfo.FieldValue{Type: f.Type, Value: n}, nil
	case recordinfo.FixedDecimal:
		return recordinfo.FieldValue{Type: f.Type, Value: strings.TrimSpace(tok)}, nil
	case recordinfo.String, recordinfo.WString, recordinfo.VString, recordinfo.VWString:
		return recordinfo.FieldValue{Type: f.Type, Value: tok}, nil
	case recordinfo.Blob, recordinfo.SpatialObject:
		return recordinfo.FieldValue{Type: f.Type, Value: []byte(tok)}, nil
	case recordinfo.Date:
		t, err := time.Parse(dateLayout, tok)
		if err != nil {
			return recordinfo.FieldValue{}, err
		}
		return recordinfo.FieldValue{Type: f.Type, Value: t}, nil
	case recordinfo.Time:
		t, err := time.Parse(timeLayout, tok)
		if err != nil {
			return recordinfo.FieldValue{}, err
		}
		return recordinfo.FieldValue{Type: f.Type, Value: t}, nil
	case recordinfo.DateTime:
		t, err := time.Parse(dateTimeLayout, tok)
		if err != nil {
			return recordinfo.FieldValue{}, err
		}
		return recordinfo.FieldValue{Type: f.Type, Value: t}, nil
	default:
		return recordinfo.FieldValue{Type: f.Type, Null: true}, nil
	}
}

func renderValue(f recordinfo.Field, fv recordinfo.FieldValue) (string, error) {
	if fv.Null {
		return "", nil
	}
	switch f.Type {
	case recordinfo.Bool:
		return strconv.FormatBool(fv.Value.(bool)), nil
	case recordinfo.Byte, recordinfo.Int16, recordinfo.Int32, recordinfo.Int64:
		return strconv.FormatInt(fv.Value.(int64), 10), nil
	case recordinfo.Float, recordinfo.Double:
		return strconv.FormatFloat(fv.Value.(float64), 'g', -1, 64), nil
	case recordinfo.FixedDecimal:
		return fv.Value.(string), nil
	case recordinfo.String, recordinfo.WString, recordinfo.VString, recordinfo.VWString:
		return fv.Value.(string), nil
	case recordinfo.Blob, recordinfo.SpatialObject:
		return string(fv.Value.([]byte)), nil
	case recordinfo.Date:
		return fv.Value.(time.Time).Format(dateLayout), nil
	case recordinfo.Time:
		return fv.Value.(time.Time).Format(timeLayout), nil
	case recordinfo.DateTime:
		return fv.Value.(time.Time).Format(dateTimeLayout), nil
	default:
		return "", nil
	}
}

const dateLayout = "2006-01-02"
const timeLayout = "15:04:05"
const dateTimeLayout = "2006-01-02 15:04:05"
