// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block implements the length-prefixed, optionally compressed
// block codec and the trailing block-index codec.
package block

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

// Compressor is the block compressor contract: Compress returns ok=false
// (no error) when the input did not fit within maxOut, rather than
// treating "could not shrink it" as a hard error.
type Compressor interface {
	Compress(input []byte, maxOut int) (out []byte, ok bool, err error)
	Decompress(input []byte, maxOut int) (out []byte, err error)
}

// LZ4Compressor adapts github.com/pierrec/lz4/v4's raw block API to the
// Compressor contract: a bounded destination buffer, with a zero-length
// result meaning the compressed form did not fit.
type LZ4Compressor struct{}

var _ Compressor = LZ4Compressor{}

func (LZ4Compressor) Compress(input []byte, maxOut int) ([]byte, bool, error) {
	if maxOut <= 0 {
		return nil, false, nil
	}
	dst := make([]byte, maxOut)
	var c lz4.Compressor
	n, err := c.CompressBlock(input, dst)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if n == 0 {
		// lz4 reports 0 when the compressed form does not fit in dst.
		return nil, false, nil
	}
	return dst[:n], true, nil
}

func (LZ4Compressor) Decompress(input []byte, maxOut int) ([]byte, error) {
	dst := make([]byte, maxOut)
	n, err := lz4.UncompressBlock(input, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
