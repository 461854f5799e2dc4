// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/solidcoredata/yxdb/yerr"
)

// Null encoding: every fixed-width field value is followed by one
// trailing null-indicator byte (0 = present, 1 = null); the fixed-width
// bytes themselves are still written, zero-filled, when the value is
// null. Every variable-length field value is a u32 LE length prefix
// followed by that many payload bytes; a null value is the sentinel
// length nullLengthMarker with no payload.
const nullLengthMarker = 0xFFFFFFFF

const dateLayout = "2006-01-02"
const timeLayout = "15:04:05"
const dateTimeLayout = "2006-01-02 15:04:05"

// EncodeField renders one FieldValue according to f's type, size and
// scale. This is an exhaustive switch over the closed FieldType set, with
// no default case, owning both the value conversion and the null
// byte/length-prefix framing.
func EncodeField(fv FieldValue, f Field) ([]byte, error) {
	switch f.Type {
	case Bool:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			b, ok := fv.Value.(bool)
			if !ok {
				return fmt.Errorf("bool field %q: value is %T, want bool", f.Name, fv.Value)
			}
			if b {
				buf[0] = 1
			}
			return nil
		})
	case Byte:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			v, err := intValue(fv.Value)
			if err != nil {
				return fmt.Errorf("byte field %q: %w", f.Name, err)
			}
			buf[0] = byte(int8(v))
			return nil
		})
	case Int16:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			v, err := intValue(fv.Value)
			if err != nil {
				return fmt.Errorf("int16 field %q: %w", f.Name, err)
			}
			binary.LittleEndian.PutUint16(buf, uint16(int16(v)))
			return nil
		})
	case Int32:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			v, err := intValue(fv.Value)
			if err != nil {
				return fmt.Errorf("int32 field %q: %w", f.Name, err)
			}
			binary.LittleEndian.PutUint32(buf, uint32(int32(v)))
			return nil
		})
	case Int64:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			v, err := intValue(fv.Value)
			if err != nil {
				return fmt.Errorf("int64 field %q: %w", f.Name, err)
			}
			binary.LittleEndian.PutUint64(buf, uint64(v))
			return nil
		})
	case Float:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			v, err := floatValue(fv.Value)
			if err != nil {
				return fmt.Errorf("float field %q: %w", f.Name, err)
			}
			binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
			return nil
		})
	case Double:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			v, err := floatValue(fv.Value)
			if err != nil {
				return fmt.Errorf("double field %q: %w", f.Name, err)
			}
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			return nil
		})
	case FixedDecimal:
		width := f.Type.fixedWidth(f)
		return encodeFixed(fv, f, width, func(buf []byte) error {
			s, err := formatFixedDecimal(fv.Value, int(f.Scale), width)
			if err != nil {
				return fmt.Errorf("fixeddecimal field %q: %w", f.Name, err)
			}
			copy(buf, s)
			return nil
		})
	case String:
		width := f.Type.fixedWidth(f)
		return encodeFixed(fv, f, width, func(buf []byte) error {
			s, ok := fv.Value.(string)
			if !ok {
				return fmt.Errorf("string field %q: value is %T, want string", f.Name, fv.Value)
			}
			if len(s) > width {
				return fmt.Errorf("string field %q: value of %d bytes exceeds size %d", f.Name, len(s), width)
			}
			copy(buf, s)
			return nil
		})
	case WString:
		width := f.Type.fixedWidth(f)
		return encodeFixed(fv, f, width, func(buf []byte) error {
			s, ok := fv.Value.(string)
			if !ok {
				return fmt.Errorf("wstring field %q: value is %T, want string", f.Name, fv.Value)
			}
			enc, err := encodeUTF16LE(s)
			if err != nil {
				return fmt.Errorf("wstring field %q: %w", f.Name, err)
			}
			if len(enc) > width {
				return fmt.Errorf("wstring field %q: value of %d code units exceeds size %d", f.Name, len(enc)/2, f.Size)
			}
			copy(buf, enc)
			return nil
		})
	case VString:
		return encodeVariable(fv, f, func() ([]byte, error) {
			s, ok := fv.Value.(string)
			if !ok {
				return nil, fmt.Errorf("vstring field %q: value is %T, want string", f.Name, fv.Value)
			}
			return []byte(s), nil
		})
	case VWString:
		return encodeVariable(fv, f, func() ([]byte, error) {
			s, ok := fv.Value.(string)
			if !ok {
				return nil, fmt.Errorf("vwstring field %q: value is %T, want string", f.Name, fv.Value)
			}
			return encodeUTF16LE(s)
		})
	case Blob, SpatialObject:
		return encodeVariable(fv, f, func() ([]byte, error) {
			b, ok := fv.Value.([]byte)
			if !ok {
				return nil, fmt.Errorf("%s field %q: value is %T, want []byte", f.Type, f.Name, fv.Value)
			}
			return b, nil
		})
	case Date:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			t, err := timeValue(fv.Value)
			if err != nil {
				return fmt.Errorf("date field %q: %w", f.Name, err)
			}
			copy(buf, t.Format(dateLayout))
			return nil
		})
	case Time:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			t, err := timeValue(fv.Value)
			if err != nil {
				return fmt.Errorf("time field %q: %w", f.Name, err)
			}
			copy(buf, t.Format(timeLayout))
			return nil
		})
	case DateTime:
		return encodeFixed(fv, f, f.Type.fixedWidth(f), func(buf []byte) error {
			t, err := timeValue(fv.Value)
			if err != nil {
				return fmt.Errorf("datetime field %q: %w", f.Name, err)
			}
			copy(buf, t.Format(dateTimeLayout))
			return nil
		})
	case Unknown:
		return nil, nil
	}
	return nil, fmt.Errorf("yxdb: unknown field type %d for field %q", f.Type, f.Name)
}

// DecodeField reads one field value from cur according to f, consuming
// exactly the bytes f's type is encoded as.
func DecodeField(f Field, cur *Cursor) (FieldValue, error) {
	switch f.Type {
	case Bool:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return buf[0] != 0, nil
		})
	case Byte:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return int64(int8(buf[0])), nil
		})
	case Int16:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return int64(int16(binary.LittleEndian.Uint16(buf))), nil
		})
	case Int32:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return int64(int32(binary.LittleEndian.Uint32(buf))), nil
		})
	case Int64:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return int64(binary.LittleEndian.Uint64(buf)), nil
		})
	case Float:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf))), nil
		})
	case Double:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
		})
	case FixedDecimal:
		width := f.Type.fixedWidth(f)
		return decodeFixed(f, cur, width, func(buf []byte) (interface{}, error) {
			return strings.TrimSpace(string(buf)), nil
		})
	case String:
		width := f.Type.fixedWidth(f)
		return decodeFixed(f, cur, width, func(buf []byte) (interface{}, error) {
			return strings.TrimRight(string(buf), "\x00"), nil
		})
	case WString:
		width := f.Type.fixedWidth(f)
		return decodeFixed(f, cur, width, func(buf []byte) (interface{}, error) {
			s, err := decodeUTF16LE(buf)
			if err != nil {
				return nil, err
			}
			return strings.TrimRight(s, "\x00"), nil
		})
	case VString:
		return decodeVariable(f, cur, func(buf []byte) (interface{}, error) {
			return string(buf), nil
		})
	case VWString:
		return decodeVariable(f, cur, func(buf []byte) (interface{}, error) {
			return decodeUTF16LE(buf)
		})
	case Blob, SpatialObject:
		return decodeVariable(f, cur, func(buf []byte) (interface{}, error) {
			out := make([]byte, len(buf))
			copy(out, buf)
			return out, nil
		})
	case Date:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return time.Parse(dateLayout, string(buf))
		})
	case Time:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return time.Parse(timeLayout, string(buf))
		})
	case DateTime:
		return decodeFixed(f, cur, f.Type.fixedWidth(f), func(buf []byte) (interface{}, error) {
			return time.Parse(dateTimeLayout, string(buf))
		})
	case Unknown:
		return FieldValue{Type: Unknown, Null: true}, nil
	}
	return FieldValue{}, fmt.Errorf("yxdb: unknown field type %d for field %q", f.Type, f.Name)
}

// encodeFixed writes the width-byte fixed representation (zero-filled when
// fv is null) followed by the trailing null-indicator byte.
func encodeFixed(fv FieldValue, f Field, width int, fill func(buf []byte) error) ([]byte, error) {
	out := make([]byte, width+1)
	if fv.Null {
		out[width] = 1
		return out, nil
	}
	if err := fill(out[:width]); err != nil {
		return nil, &yerr.RecordError{Field: f.Name, Msg: err.Error(), Err: err}
	}
	return out, nil
}

func decodeFixed(f Field, cur *Cursor, width int, parse func(buf []byte) (interface{}, error)) (FieldValue, error) {
	buf, err := cur.Take(width + 1)
	if err != nil {
		return FieldValue{}, err
	}
	if buf[width] != 0 {
		return FieldValue{Type: f.Type, Null: true}, nil
	}
	v, err := parse(buf[:width])
	if err != nil {
		return FieldValue{}, &yerr.RecordError{Field: f.Name, Offset: cur.Pos(), Msg: err.Error(), Err: err}
	}
	return FieldValue{Type: f.Type, Value: v}, nil
}

// encodeVariable writes a u32 LE length prefix (nullLengthMarker when
// fv is null) followed by the payload bytes produce returns.
func encodeVariable(fv FieldValue, f Field, produce func() ([]byte, error)) ([]byte, error) {
	if fv.Null {
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, nullLengthMarker)
		return out, nil
	}
	payload, err := produce()
	if err != nil {
		return nil, &yerr.RecordError{Field: f.Name, Msg: err.Error(), Err: err}
	}
	out := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(out, uint32(len(payload)))
	copy(out[4:], payload)
	return out, nil
}

func decodeVariable(f Field, cur *Cursor, parse func(buf []byte) (interface{}, error)) (FieldValue, error) {
	lenBuf, err := cur.Take(4)
	if err != nil {
		return FieldValue{}, err
	}
	n := binary.LittleEndian.Uint32(lenBuf)
	if n == nullLengthMarker {
		return FieldValue{Type: f.Type, Null: true}, nil
	}
	payload, err := cur.Take(int(n))
	if err != nil {
		return FieldValue{}, err
	}
	v, err := parse(payload)
	if err != nil {
		return FieldValue{}, &yerr.RecordError{Field: f.Name, Offset: cur.Pos(), Msg: err.Error(), Err: err}
	}
	return FieldValue{Type: f.Type, Value: v}, nil
}

func intValue(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("value is %T, want an integer", v)
	}
}

func floatValue(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value is %T, want a float", v)
	}
}

func timeValue(v interface{}) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("value is %T, want time.Time", v)
	}
	return t, nil
}

// formatFixedDecimal renders v as a locale-independent ASCII numeral with
// scale fractional digits, left-padded with spaces to width.
func formatFixedDecimal(v interface{}, scale, width int) (string, error) {
	var s string
	switch n := v.(type) {
	case string:
		s = n
	case float64:
		s = strconv.FormatFloat(n, 'f', scale, 64)
	case int64:
		s = strconv.FormatFloat(float64(n), 'f', scale, 64)
	default:
		return "", fmt.Errorf("value is %T, want string or numeric", v)
	}
	if len(s) > width {
		return "", fmt.Errorf("value %q exceeds width %d", s, width)
	}
	return strings.Repeat(" ", width-len(s)) + s, nil
}
