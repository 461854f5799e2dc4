// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtext implements a pipe-delimited textual interchange
// grammar: a schema-declaring header line and pipe-separated data rows,
// used to bridge records to and from a line-oriented text form. This is
// deliberately not a general CSV parser, only the exact grammar below.
package csvtext

import (
	"strconv"
	"strings"

	"github.com/solidcoredata/yxdb/recordinfo"
	"github.com/solidcoredata/yxdb/yerr"
)

// ParseCSVHeader parses one schema header line, fields separated by '|',
// each "name:type" or "name:type(params)", into a RecordInfo.
func ParseCSVHeader(line string) (recordinfo.RecordInfo, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, "|")
	fields := make([]recordinfo.Field, 0, len(parts))
	for lineIdx, part := range parts {
		if part == "" {
			continue
		}
		f, err := parseField(part)
		if err != nil {
			return recordinfo.RecordInfo{}, &yerr.TextError{Line: 1, Msg: "field " + strconv.Itoa(lineIdx+1) + ": " + err.Error(), Err: err}
		}
		fields = append(fields, f)
	}
	return recordinfo.New(fields...)
}

func parseField(part string) (recordinfo.Field, error) {
	name, typeSpec, ok := strings.Cut(part, ":")
	if !ok {
		return recordinfo.Field{}, &yerr.TextError{Msg: "missing ':' in field spec " + strconv.Quote(part)}
	}

	typeName, params, hasParams := cutParams(typeSpec)

	// "int(8|16|32|64)" is one grammar alternative per bit width, not a
	// single "int" type with a free parameter.
	if typeName == "int" {
		if !hasParams {
			return recordinfo.Field{}, &yerr.TextError{Msg: "int requires a bit-width parameter"}
		}
		switch strings.TrimSpace(params) {
		case "8":
			return recordinfo.NewFieldBuilder(name, recordinfo.Byte).Build()
		case "16":
			return recordinfo.NewFieldBuilder(name, recordinfo.Int16).Build()
		case "32":
			return recordinfo.NewFieldBuilder(name, recordinfo.Int32).Build()
		case "64":
			return recordinfo.NewFieldBuilder(name, recordinfo.Int64).Build()
		default:
			return recordinfo.Field{}, &yerr.TextError{Msg: "invalid int bit-width " + strconv.Quote(params)}
		}
	}

	t, ok := typeFromSpec(typeName)
	if !ok {
		return recordinfo.Field{}, &yerr.TextError{Msg: "unknown type " + strconv.Quote(typeName)}
	}

	b := recordinfo.NewFieldBuilder(name, t)
	switch t {
	case recordinfo.FixedDecimal:
		p, s, err := parseTwoUints(params, hasParams)
		if err != nil {
			return recordinfo.Field{}, err
		}
		b.Size(p).Scale(s)
	case recordinfo.String, recordinfo.WString, recordinfo.VString, recordinfo.VWString, recordinfo.Blob, recordinfo.SpatialObject:
		if !hasParams && (t == recordinfo.VString || t == recordinfo.VWString) {
			// Variable-length strings may be written unparameterised, as
			// RenderCSVHeader prints them; they then get size 0.
			b.Size(0)
			break
		}
		if !hasParams {
			return recordinfo.Field{}, &yerr.TextError{Msg: "type " + typeName + " requires a size parameter"}
		}
		n, err := strconv.ParseUint(strings.TrimSpace(params), 10, 64)
		if err != nil {
			return recordinfo.Field{}, &yerr.TextError{Msg: "invalid size for type " + typeName, Err: err}
		}
		b.Size(uint(n))
	}
	return b.Build()
}

// typeFromSpec maps the textual grammar's type names, with any
// parameters already cut off (e.g. "decimal" -> FixedDecimal), onto
// FieldType; "int(N)" is handled by parseField before this is called.
// Some spellings differ from recordinfo.FieldType.String's on-disk
// spellings ("decimal" vs "fixeddecimal", "spatial" vs "spatialobject"),
// so this is its own table rather than a reuse of ParseFieldType.
func typeFromSpec(name string) (recordinfo.FieldType, bool) {
	switch name {
	case "bool":
		return recordinfo.Bool, true
	case "decimal":
		return recordinfo.FixedDecimal, true
	case "float":
		return recordinfo.Float, true
	case "double":
		return recordinfo.Double, true
	case "string":
		return recordinfo.String, true
	case "wstring":
		return recordinfo.WString, true
	case "vstring":
		return recordinfo.VString, true
	case "vwstring":
		return recordinfo.VWString, true
	case "date":
		return recordinfo.Date, true
	case "time":
		return recordinfo.Time, true
	case "datetime":
		return recordinfo.DateTime, true
	case "blob":
		return recordinfo.Blob, true
	case "spatial":
		return recordinfo.SpatialObject, true
	case "unknown":
		return recordinfo.Unknown, true
	default:
		return 0, false
	}
}

// typeToSpec is typeFromSpec's inverse for the parameterless spellings;
// renderType handles the int widths ("int(16)"), decimal and the
// string/blob/spatial types itself, since they carry parameters or a
// fixed spelling of their own.
func typeToSpec(t recordinfo.FieldType) string {
	switch t {
	case recordinfo.Bool:
		return "bool"
	case recordinfo.Float:
		return "float"
	case recordinfo.Double:
		return "double"
	case recordinfo.Date:
		return "date"
	case recordinfo.Time:
		return "time"
	case recordinfo.DateTime:
		return "datetime"
	case recordinfo.Unknown:
		return "unknown"
	default:
		return ""
	}
}

// cutParams splits "type(params)" into ("type", "params", true), or
// returns (typeSpec, "", false) when there are no parens.
func cutParams(typeSpec string) (name, params string, ok bool) {
	open := strings.IndexByte(typeSpec, '(')
	if open < 0 || !strings.HasSuffix(typeSpec, ")") {
		return typeSpec, "", false
	}
	return typeSpec[:open], typeSpec[open+1 : len(typeSpec)-1], true
}

func parseTwoUints(params string, hasParams bool) (uint, uint, error) {
	if !hasParams {
		return 0, 0, &yerr.TextError{Msg: "decimal requires (size,scale)"}
	}
	a, b, ok := strings.Cut(params, ",")
	if !ok {
		return 0, 0, &yerr.TextError{Msg: "decimal requires (size,scale)"}
	}
	size, err := strconv.ParseUint(strings.TrimSpace(a), 10, 64)
	if err != nil {
		return 0, 0, &yerr.TextError{Msg: "invalid decimal size", Err: err}
	}
	scale, err := strconv.ParseUint(strings.TrimSpace(b), 10, 64)
	if err != nil {
		return 0, 0, &yerr.TextError{Msg: "invalid decimal scale", Err: err}
	}
	return uint(size), uint(scale), nil
}

// RenderCSVHeader is the inverse of ParseCSVHeader: fixed-decimal prints
// "name(size,scale)", sized strings print "name(size)", variable-length
// strings print unparameterised.
func RenderCSVHeader(ri recordinfo.RecordInfo) string {
	parts := make([]string, len(ri.Fields))
	for i, f := range ri.Fields {
		parts[i] = f.Name + ":" + renderType(f)
	}
	return strings.Join(parts, "|")
}

func renderType(f recordinfo.Field) string {
	switch f.Type {
	case recordinfo.Byte:
		return "int(8)"
	case recordinfo.Int16:
		return "int(16)"
	case recordinfo.Int32:
		return "int(32)"
	case recordinfo.Int64:
		return "int(64)"
	case recordinfo.FixedDecimal:
		return "decimal(" + strconv.FormatUint(uint64(f.Size), 10) + "," + strconv.FormatUint(uint64(f.Scale), 10) + ")"
	case recordinfo.String:
		return "string(" + strconv.FormatUint(uint64(f.Size), 10) + ")"
	case recordinfo.WString:
		return "wstring(" + strconv.FormatUint(uint64(f.Size), 10) + ")"
	case recordinfo.VString:
		return "vstring"
	case recordinfo.VWString:
		return "vwstring"
	case recordinfo.Blob:
		return "blob(" + strconv.FormatUint(uint64(f.Size), 10) + ")"
	case recordinfo.SpatialObject:
		return "spatial(" + strconv.FormatUint(uint64(f.Size), 10) + ")"
	default:
		if s := typeToSpec(f.Type); s != "" {
			return s
		}
		return "unknown"
	}
}
