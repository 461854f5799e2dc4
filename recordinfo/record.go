// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

// EncodeRecord concatenates EncodeField for every field of ri, in schema
// order. Records carry no internal length of their own; a decoder relies
// entirely on ri's cumulative field widths and each variable-length
// field's own length prefix to know where the record ends.
func EncodeRecord(r Record, ri RecordInfo) ([]byte, error) {
	if err := ri.validateRecordShape(r); err != nil {
		return nil, err
	}
	var out []byte
	for i, f := range ri.Fields {
		b, err := EncodeField(r[i], f)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeRecord decodes one Record from cur, consuming the fields of ri in
// order.
func DecodeRecord(ri RecordInfo, cur *Cursor) (Record, error) {
	r := make(Record, len(ri.Fields))
	for i, f := range ri.Fields {
		fv, err := DecodeField(f, cur)
		if err != nil {
			return nil, err
		}
		r[i] = fv
	}
	return r, nil
}
