// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/solidcoredata/yxdb/yerr"
)

// xmlMetaInfo/xmlRecordInfo/xmlField mirror the on-disk schema grammar.
// encoding/xml does the element marshal/unmarshal itself; the UTF-16LE
// transcoding of the XML text is done by utf16le.go via golang.org/x/text.
type xmlMetaInfo struct {
	XMLName    xml.Name      `xml:"MetaInfo"`
	RecordInfo xmlRecordInfo `xml:"RecordInfo"`
}

type xmlRecordInfo struct {
	Fields []xmlField `xml:"Field"`
}

type xmlField struct {
	Name        string `xml:"name,attr"`
	Type        string `xml:"type,attr"`
	Size        string `xml:"size,attr,omitempty"`
	Scale       string `xml:"scale,attr,omitempty"`
	Description string `xml:"description,attr,omitempty"`
}

// schemaTerminator is "\n\0", each as a UTF-16 code unit.
var schemaTerminator = []byte{0x0A, 0x00, 0x00, 0x00}

// EncodeSchema renders ri as a UTF-16LE XML document, including its
// "\n\0" terminator. The returned length in UTF-16 code units
// (len(result)/2) is what the header's metaInfoLength field records.
func EncodeSchema(ri RecordInfo) ([]byte, error) {
	doc := xmlMetaInfo{RecordInfo: xmlRecordInfo{Fields: make([]xmlField, len(ri.Fields))}}
	for i, f := range ri.Fields {
		xf := xmlField{Name: f.Name, Type: f.Type.String(), Description: f.Description}
		if f.UseSize {
			xf.Size = strconv.FormatUint(uint64(f.Size), 10)
		}
		if f.UseScale {
			xf.Scale = strconv.FormatUint(uint64(f.Scale), 10)
		}
		doc.RecordInfo.Fields[i] = xf
	}
	text, err := xml.Marshal(doc)
	if err != nil {
		return nil, &yerr.SchemaError{Stage: "encode", Msg: err.Error(), Err: err}
	}
	wide, err := encodeUTF16LE(string(text))
	if err != nil {
		return nil, &yerr.SchemaError{Stage: "encode", Msg: err.Error(), Err: err}
	}
	return append(wide, schemaTerminator...), nil
}

// DecodeSchema parses a UTF-16LE XML document (with or without its "\n\0"
// terminator already stripped) into a RecordInfo. Exactly one RecordInfo
// element is required; zero or more than one is fatal.
func DecodeSchema(raw []byte) (RecordInfo, error) {
	text, err := decodeUTF16LE(raw)
	if err != nil {
		return RecordInfo{}, &yerr.SchemaError{Stage: "decode", Msg: err.Error(), Err: err}
	}
	for len(text) > 0 && (text[len(text)-1] == 0 || text[len(text)-1] == '\n') {
		text = text[:len(text)-1]
	}

	if n := countRecordInfoElements(text); n != 1 {
		return RecordInfo{}, &yerr.SchemaError{Stage: "decode", Msg: "expected exactly one RecordInfo element, found " + strconv.Itoa(n)}
	}

	var doc xmlMetaInfo
	if err := xml.Unmarshal([]byte(text), &doc); err != nil {
		return RecordInfo{}, &yerr.SchemaError{Stage: "decode", Msg: err.Error(), Err: err}
	}

	fields := make([]Field, len(doc.RecordInfo.Fields))
	for i, xf := range doc.RecordInfo.Fields {
		t, ok := ParseFieldType(xf.Type)
		if !ok {
			return RecordInfo{}, &yerr.SchemaError{Stage: "decode", Msg: "unknown field type " + xf.Type + " for field " + xf.Name}
		}
		b := NewFieldBuilder(xf.Name, t).Description(xf.Description)
		if xf.Size != "" {
			size, err := strconv.ParseUint(xf.Size, 10, 64)
			if err != nil {
				return RecordInfo{}, &yerr.SchemaError{Stage: "decode", Msg: "invalid size for field " + xf.Name, Err: err}
			}
			b.Size(uint(size))
		}
		if xf.Scale != "" {
			scale, err := strconv.ParseUint(xf.Scale, 10, 64)
			if err != nil {
				return RecordInfo{}, &yerr.SchemaError{Stage: "decode", Msg: "invalid scale for field " + xf.Name, Err: err}
			}
			b.Scale(uint(scale))
		}
		field, err := b.Build()
		if err != nil {
			return RecordInfo{}, err
		}
		fields[i] = field
	}
	return New(fields...)
}

// countRecordInfoElements walks the token stream independently of
// xml.Unmarshal's struct-shape assumptions, since Unmarshal silently takes
// the last of several same-named elements rather than erroring.
func countRecordInfoElements(text string) int {
	dec := xml.NewDecoder(strings.NewReader(text))
	count := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "RecordInfo" {
			count++
		}
	}
	return count
}
