// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package salience

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/history"
	"github.com/cogmod/actr/simil"
	"github.com/cogmod/actr/value"
)

func linearDeriv(x, y value.Value) float64 {
	a, _ := x.Float()
	b, _ := y.Float()
	if a > b {
		return -1.0 / 16
	}
	return 1.0 / 16
}

func makeTrace(rs []float64, ps []float64, outs []float64) history.Trace {
	ids := make([]uuid.UUID, len(rs))
	records := make([]history.Record, len(rs))
	output := make(map[uuid.UUID]float64)
	for i := range rs {
		ids[i] = uuid.New()
		records[i] = history.Record{
			ChunkID:     ids[i],
			Attrs:       chunk.NewAttrs(map[string]value.Value{"r": value.Num(rs[i])}),
			Probability: ps[i],
			Eligible:    true,
		}
		output[ids[i]] = outs[i]
	}
	return history.Trace{Records: records, OutputAttr: "v", Output: output}
}

func TestSalienceZeroWhenDerivativesUniform(t *testing.T) {
	reg := simil.NewRegistry()
	reg.SetDerivative("r", linearDeriv)
	reg.Set("r", func(x, y value.Value) float64 { return 1 - 0 }, 1)
	tr := makeTrace([]float64{10, 10}, []float64{0.5, 0.5}, []float64{1, 2})
	s, err := Salience(tr, reg, 1, "r", value.Num(2), FallbackZero)
	assert.NoError(t, err)
	assert.InDelta(t, 0, s, 1e-9)
}

func TestSalienceNonZeroWhenDerivativesDiffer(t *testing.T) {
	reg := simil.NewRegistry()
	reg.SetDerivative("r", linearDeriv)
	reg.Set("r", func(x, y value.Value) float64 { return 1 }, 1)
	tr := makeTrace([]float64{1, 10}, []float64{0.5, 0.5}, []float64{1, 2})
	s, err := Salience(tr, reg, 1, "r", value.Num(2), FallbackZero)
	assert.NoError(t, err)
	assert.NotEqual(t, 0.0, s)

	// Pin the sign and magnitude: dξ/dy(1,2) = linearDeriv(probe=2, chunk=1)
	// = -1/16 (probe > chunk), dξ/dy(10,2) = linearDeriv(probe=2, chunk=10)
	// = 1/16 (probe < chunk). The mean derivative is 0 by symmetry of the
	// two equal-probability records, so salience reduces to
	// 0.5*1*(-1/16) + 0.5*2*(1/16) = 1/32. A sign-inverted derivative (d/dx
	// instead of d/dy) would flip this to -1/32.
	assert.InDelta(t, 1.0/32, s, 1e-9)
}

func TestSalienceFallbackErrorOnUndefinedDerivative(t *testing.T) {
	reg := simil.NewRegistry()
	reg.SetDerivative("r", linearDeriv)
	reg.Set("r", func(x, y value.Value) float64 { return 1 }, 1)
	tr := makeTrace([]float64{2}, []float64{1}, []float64{1})
	_, err := Salience(tr, reg, 1, "r", value.Num(2), FallbackError)
	assert.Error(t, err)
}

func TestSalienceFallbackZeroOnUndefinedDerivative(t *testing.T) {
	reg := simil.NewRegistry()
	reg.SetDerivative("r", linearDeriv)
	reg.Set("r", func(x, y value.Value) float64 { return 1 }, 1)
	tr := makeTrace([]float64{2, 10}, []float64{0.5, 0.5}, []float64{1, 2})
	s, err := Salience(tr, reg, 1, "r", value.Num(2), FallbackZero)
	assert.NoError(t, err)
	assert.False(t, s != s) // not NaN
}

func TestSalienceIgnoresIneligibleRecords(t *testing.T) {
	reg := simil.NewRegistry()
	reg.SetDerivative("r", linearDeriv)
	tr := makeTrace([]float64{1}, []float64{1}, []float64{1})
	tr.Records = append(tr.Records, history.Record{Eligible: false})
	s, err := Salience(tr, reg, 1, "r", value.Num(5), FallbackZero)
	assert.NoError(t, err)
	_ = s
}
