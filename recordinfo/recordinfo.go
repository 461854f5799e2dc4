// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import "github.com/solidcoredata/yxdb/yerr"

// RecordInfo is an ordered, non-empty list of Field. Field names need not
// be unique; position is authoritative.
type RecordInfo struct {
	Fields []Field
}

// New builds a RecordInfo from already-validated fields, checking the
// non-empty invariant and re-validating each field.
func New(fields ...Field) (RecordInfo, error) {
	if len(fields) == 0 {
		return RecordInfo{}, &yerr.SchemaError{Stage: "recordinfo", Msg: "RecordInfo must have at least one field"}
	}
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return RecordInfo{}, err
		}
	}
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return RecordInfo{Fields: cp}, nil
}

func (ri RecordInfo) Len() int { return len(ri.Fields) }

// FieldValue is a nullable, typed datum matching a Field's declared type.
// Value holds the Go-native representation:
//
//	Bool                          -> bool
//	Byte, Int16, Int32, Int64     -> int64
//	Float, Double                 -> float64
//	FixedDecimal                  -> string (ASCII numeral, see codec.go)
//	String, WString, VString, VWString -> string
//	Date, Time, DateTime          -> time.Time
//	Blob, SpatialObject           -> []byte
//	Unknown                       -> nil
type FieldValue struct {
	Type  FieldType
	Null  bool
	Value interface{}
}

// Record is an ordered sequence of FieldValue, one per field of a
// RecordInfo, in schema order.
type Record []FieldValue

// validateRecordShape checks that r has exactly one value per field of ri and that
// each value's type matches the corresponding field's type.
func (ri RecordInfo) validateRecordShape(r Record) error {
	if len(r) != len(ri.Fields) {
		return &yerr.RecordError{Msg: "record has wrong field count"}
	}
	for i, fv := range r {
		if fv.Type != ri.Fields[i].Type {
			return &yerr.RecordError{Field: ri.Fields[i].Name, Msg: "value type does not match field type"}
		}
	}
	return nil
}
