// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream provides the cancellation-scoped runner used by the
// streaming read/write pipeline: a stage may suspend on file I/O or
// downstream backpressure, but never blocks on a lock, and cancellation
// at any point must release the file handle on every exit path.
package stream

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Range identifies a byte range within a file, [From, To).
type Range struct {
	From int64
	To   int64
}

// DecodeRangeFunc decodes the single block occupying r and returns the
// records it contains.
type DecodeRangeFunc func(ctx context.Context, r Range) ([]any, error)

// SourceRanges decodes each of ranges independently, honoring the ordering
// guarantee that decoders *within* a single range run sequentially while
// ranges themselves may be consumed concurrently and in any order. Results
// are returned in range order regardless of completion order.
//
// It fans the ranges out under one errgroup.Group and returns the first
// error encountered, canceling the rest.
func SourceRanges(ctx context.Context, ranges []Range, decode DecodeRangeFunc) ([][]any, error) {
	out := make([][]any, len(ranges))
	group, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		group.Go(func() error {
			records, err := decode(gctx, r)
			if err != nil {
				return err
			}
			out[i] = records
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Scoped runs fn with a context that is canceled the moment Scoped returns,
// on every exit path including a panic recovered further up the call
// stack. It does not close file handles itself; fn releases any handle it
// opens (e.g. with a deferred Close).
func Scoped(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return fn(ctx)
}
