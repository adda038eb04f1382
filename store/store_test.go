// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/value"
)

func attrs(r, h float64) chunk.Attrs {
	return chunk.NewAttrs(map[string]value.Value{"r": value.Num(r), "h": value.Num(h)})
}

func TestLearnDedups(t *testing.T) {
	s := New()
	c1, isNew := s.Learn(attrs(1, 1), 0)
	assert.True(t, isNew)
	c2, isNew := s.Learn(attrs(1, 1), 1)
	assert.False(t, isNew)
	assert.Same(t, c1, c2)
	assert.Equal(t, 2, c1.Count())
	assert.Len(t, s.Chunks(), 1)
}

func TestInsertionOrderStable(t *testing.T) {
	s := New()
	s.Learn(attrs(1, 1), 0)
	s.Learn(attrs(2, 2), 0)
	s.Learn(attrs(3, 3), 0)
	chunks := s.Chunks()
	v0, _ := chunks[0].Attrs.Get("r")
	v1, _ := chunks[1].Attrs.Get("r")
	v2, _ := chunks[2].Attrs.Get("r")
	assert.Equal(t, value.Num(1), v0)
	assert.Equal(t, value.Num(2), v1)
	assert.Equal(t, value.Num(3), v2)
}

func TestForgetIsLeftInverseOfLearn(t *testing.T) {
	s := New()
	s.Learn(attrs(1, 1), 0)
	assert.True(t, s.Forget(attrs(1, 1), 0))
	assert.Len(t, s.Chunks(), 0)
}

func TestForgetUnknownReturnsFalse(t *testing.T) {
	s := New()
	assert.False(t, s.Forget(attrs(1, 1), 0))
}

func TestForgetPartialKeepsChunk(t *testing.T) {
	s := New()
	c, _ := s.Learn(attrs(1, 1), 0)
	s.Learn(attrs(1, 1), 1)
	assert.True(t, s.Forget(attrs(1, 1), 0))
	assert.Len(t, s.Chunks(), 1)
	assert.Equal(t, []float64{1}, c.ReinforcedAt)
}

func TestResetClearsChunks(t *testing.T) {
	s := New()
	s.Learn(attrs(1, 1), 0)
	s.Reset(nil)
	assert.Len(t, s.Chunks(), 0)
}

func TestResetPreservesKept(t *testing.T) {
	s := New()
	c, _ := s.Learn(attrs(1, 1), 0)
	s.Reset([]*chunk.Chunk{c})
	assert.Len(t, s.Chunks(), 1)
}

func TestIndexLookupFullCoverage(t *testing.T) {
	s := New("r", "h")
	s.Learn(attrs(1, 1), 0)
	c2, _ := s.Learn(attrs(2, 2), 0)
	s.Learn(attrs(3, 3), 0)

	got, ok := s.Lookup(map[string]value.Value{"r": value.Num(2), "h": value.Num(2)})
	assert.True(t, ok)
	assert.Equal(t, []*chunk.Chunk{c2}, got)
}

func TestIndexLookupPartialFallsBackToScan(t *testing.T) {
	s := New("r", "h")
	s.Learn(attrs(1, 1), 0)
	_, ok := s.Lookup(map[string]value.Value{"r": value.Num(1)})
	assert.False(t, ok)
}

func TestIndexRemovedOnForget(t *testing.T) {
	s := New("r", "h")
	s.Learn(attrs(1, 1), 0)
	s.Forget(attrs(1, 1), 0)
	got, ok := s.Lookup(map[string]value.Value{"r": value.Num(1), "h": value.Num(1)})
	assert.True(t, ok)
	assert.Empty(t, got)
}
