// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import "github.com/solidcoredata/yxdb/yerr"

// Cursor walks a decoded block payload one field at a time, a sequential
// reader shared by the field and record codecs.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential field decoding starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the number of bytes already consumed.
func (c *Cursor) Pos() int64 { return int64(c.pos) }

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Take returns the next n bytes and advances the cursor, or a RecordError
// naming the offset if fewer than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, &yerr.RecordError{Offset: int64(c.pos), Msg: "field decode ran past end of record stream"}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
