// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogmod/actr/value"
)

func linear(phi float64) Fn {
	return func(x, y value.Value) float64 {
		a, _ := x.Float()
		b, _ := y.Float()
		d := a - b
		if d < 0 {
			d = -d
		}
		return 1 - d/phi
	}
}

func TestSimilaritySymmetricCache(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Set("r", func(x, y value.Value) float64 {
		calls++
		return linear(16)(x, y)
	}, 1)

	a := r.Similarity("r", value.Num(2), value.Num(6))
	b := r.Similarity("r", value.Num(6), value.Num(2))
	assert.Equal(t, a, b)
	assert.Equal(t, 1, calls) // second call served from cache under the unordered key
}

func TestSetInvalidatesOnlyThatAttribute(t *testing.T) {
	r := NewRegistry()
	r.Set("r", linear(16), 1)
	r.Set("h", linear(16), 1)
	r.Similarity("r", value.Num(1), value.Num(2))
	r.Similarity("h", value.Num(1), value.Num(2))

	r.Set("r", linear(4), 1) // reassign r; h's cache must survive
	gotR := r.Similarity("r", value.Num(1), value.Num(2))
	assert.InDelta(t, 1-1.0/4, gotR, 1e-9)
}

func TestACTRScaleOffsetsOnRead(t *testing.T) {
	r := NewRegistry()
	r.UseACTRScale(true)
	r.Set("r", func(x, y value.Value) float64 { return -0.25 }, 1)
	assert.InDelta(t, 0.75, r.Similarity("r", value.Num(1), value.Num(2)), 1e-9)
}

func TestDerivativeOrderedCache(t *testing.T) {
	r := NewRegistry()
	r.SetDerivative("r", func(x, y value.Value) float64 {
		a, _ := x.Float()
		b, _ := y.Float()
		if a > b {
			return 1
		}
		return -1
	})
	assert.Equal(t, 1.0, r.Derivative("r", value.Num(5), value.Num(2)))
	assert.Equal(t, -1.0, r.Derivative("r", value.Num(2), value.Num(5)))
}

func TestUndefinedSimilarityDefaultsToOne(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 1.0, r.Similarity("missing", value.Num(1), value.Num(2)))
}
