// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"regexp"

	"github.com/solidcoredata/yxdb/yerr"
)

var fieldNameRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Field describes one typed column of a RecordInfo. Size and Scale are
// optional; UseSize/UseScale record whether the caller ever set them,
// since 0 is itself a legal size for a few paths (e.g. Blob(0)).
type Field struct {
	Name  string
	Type  FieldType
	Size  uint
	Scale uint

	UseSize  bool
	UseScale bool

	// Description is carried for XML fidelity as the optional
	// "description" attribute; it plays no role in codec behavior.
	Description string
}

// Validate checks the invariants a Field must hold: name charset, size
// required for the sized types, scale required for and only for
// FixedDecimal.
func (f Field) Validate() error {
	if !fieldNameRE.MatchString(f.Name) {
		return &yerr.SchemaError{Stage: "field", Msg: "field name " + f.Name + " does not match [A-Za-z0-9_]+"}
	}
	if f.Type.requiresSize() && !f.UseSize {
		return &yerr.SchemaError{Stage: "field", Msg: "field " + f.Name + " requires a size"}
	}
	if f.Type.requiresScale() && !f.UseScale {
		return &yerr.SchemaError{Stage: "field", Msg: "field " + f.Name + " requires a scale"}
	}
	if !f.Type.requiresScale() && f.UseScale {
		return &yerr.SchemaError{Stage: "field", Msg: "field " + f.Name + " sets scale but type " + f.Type.String() + " does not accept one"}
	}
	return nil
}

// FieldBuilder stages attributes onto a Field before it is sealed.
type FieldBuilder struct {
	f Field
}

// NewFieldBuilder starts building a field with the given name and type.
func NewFieldBuilder(name string, t FieldType) *FieldBuilder {
	return &FieldBuilder{f: Field{Name: name, Type: t}}
}

func (b *FieldBuilder) Size(size uint) *FieldBuilder {
	b.f.Size = size
	b.f.UseSize = true
	return b
}

func (b *FieldBuilder) Scale(scale uint) *FieldBuilder {
	b.f.Scale = scale
	b.f.UseScale = true
	return b
}

func (b *FieldBuilder) Description(d string) *FieldBuilder {
	b.f.Description = d
	return b
}

// Build seals the staged field, validating it against Field's
// invariants.
func (b *FieldBuilder) Build() (Field, error) {
	if err := b.f.Validate(); err != nil {
		return Field{}, err
	}
	return b.f, nil
}
