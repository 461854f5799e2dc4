// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceRangesPreservesOrder(t *testing.T) {
	ranges := []Range{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}
	decode := func(_ context.Context, r Range) ([]any, error) {
		return []any{r.From}, nil
	}
	out, err := SourceRanges(context.Background(), ranges, decode)
	require.NoError(t, err)
	require.Len(t, out, len(ranges))
	for i, r := range ranges {
		require.Equal(t, []any{r.From}, out[i])
	}
}

func TestSourceRangesPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	ranges := []Range{{From: 0, To: 1}, {From: 1, To: 2}}
	decode := func(_ context.Context, r Range) ([]any, error) {
		if r.From == 1 {
			return nil, boom
		}
		return []any{r.From}, nil
	}
	_, err := SourceRanges(context.Background(), ranges, decode)
	require.ErrorIs(t, err, boom)
}

func TestSourceRangesCancelsSiblingsOnError(t *testing.T) {
	boom := errors.New("boom")
	ranges := make([]Range, 50)
	for i := range ranges {
		ranges[i] = Range{From: int64(i), To: int64(i + 1)}
	}
	var started atomic.Int32
	decode := func(ctx context.Context, r Range) ([]any, error) {
		started.Add(1)
		if r.From == 0 {
			return nil, boom
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	_, err := SourceRanges(context.Background(), ranges, decode)
	require.Error(t, err)
}

func TestScopedCancelsContextOnReturn(t *testing.T) {
	var captured context.Context
	err := Scoped(context.Background(), func(ctx context.Context) error {
		captured = ctx
		return nil
	})
	require.NoError(t, err)
	require.Error(t, captured.Err())
}

func TestScopedPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Scoped(context.Background(), func(ctx context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}
