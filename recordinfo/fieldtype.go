// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

// FieldType is the closed set of field types a Field can declare.
type FieldType int

const (
	Bool FieldType = iota + 1
	Byte
	Int16
	Int32
	Int64
	FixedDecimal
	Float
	Double
	String
	WString
	VString
	VWString
	Date
	Time
	DateTime
	Blob
	SpatialObject
	Unknown
)

// String renders the lower-case spelling used by the XML schema codec.
// The textual schema grammar in package csvtext has its own spellings
// ("int(16)", "decimal", "spatial").
func (t FieldType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case FixedDecimal:
		return "fixeddecimal"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	case WString:
		return "wstring"
	case VString:
		return "vstring"
	case VWString:
		return "vwstring"
	case Date:
		return "date"
	case Time:
		return "time"
	case DateTime:
		return "datetime"
	case Blob:
		return "blob"
	case SpatialObject:
		return "spatialobject"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ParseFieldType parses the lower-case spelling produced by String. No
// default case swallows unrecognized names; callers get an explicit false.
func ParseFieldType(s string) (FieldType, bool) {
	switch s {
	case "bool":
		return Bool, true
	case "byte":
		return Byte, true
	case "int16":
		return Int16, true
	case "int32":
		return Int32, true
	case "int64":
		return Int64, true
	case "fixeddecimal":
		return FixedDecimal, true
	case "float":
		return Float, true
	case "double":
		return Double, true
	case "string":
		return String, true
	case "wstring":
		return WString, true
	case "vstring":
		return VString, true
	case "vwstring":
		return VWString, true
	case "date":
		return Date, true
	case "time":
		return Time, true
	case "datetime":
		return DateTime, true
	case "blob":
		return Blob, true
	case "spatialobject":
		return SpatialObject, true
	case "unknown":
		return Unknown, true
	default:
		return 0, false
	}
}

// requiresSize reports whether Field.Size must be set for t.
func (t FieldType) requiresSize() bool {
	switch t {
	case String, WString, VString, VWString, Blob, SpatialObject, FixedDecimal:
		return true
	default:
		return false
	}
}

// requiresScale reports whether Field.Scale must be set for t. FixedDecimal
// is the only type that both requires and permits a scale.
func (t FieldType) requiresScale() bool {
	return t == FixedDecimal
}

// fixedWidth returns the on-disk byte width of a fixed-width field value
// (excluding the trailing null-indicator byte, see codec.go), or 0 for
// variable-length types where the width is data-dependent.
func (t FieldType) fixedWidth(f Field) int {
	switch t {
	case Bool:
		return 1
	case Byte:
		return 1
	case Int16:
		return 2
	case Int32:
		return 4
	case Int64:
		return 8
	case Float:
		return 4
	case Double:
		return 8
	case FixedDecimal:
		return int(f.Size)
	case String:
		return int(f.Size)
	case WString:
		return int(f.Size) * 2
	case Date:
		return 10 // "YYYY-MM-DD"
	case Time:
		return 8 // "HH:MM:SS"
	case DateTime:
		return 19 // "YYYY-MM-DD HH:MM:SS"
	default:
		return 0
	}
}
