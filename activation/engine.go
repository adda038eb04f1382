// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package activation

import (
	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/rng"
	"github.com/cogmod/actr/simil"
	"github.com/cogmod/actr/value"
)

// Engine computes the full A_i = B_i + noise + P_i for one chunk against a
// probe, given a memory's current configuration. The engine holds no
// per-chunk state of its own -- noise statefulness lives in the
// *rng.NoiseCache it is handed, which a Memory owns and threads through
// every retrieval.
type Engine struct {
	Decay     *float64
	Sigma     float64
	Mismatch  *float64
	Optimized Optimized
	Registry  *simil.Registry
	Source    rng.Source
	Noise     *rng.NoiseCache
}

// Result is one chunk's computed activation and the intermediate terms,
// suitable for direct use by the activation-history recorder (spec.md
// §4.6).
type Result struct {
	BaseLevel float64
	Noise     float64
	Mismatch  float64
	Total     float64
	Eligible  bool
}

// Activation computes chunk c's activation against probe at time t.
func (e *Engine) Activation(c *chunk.Chunk, probe map[string]value.Value, t float64) Result {
	p, eligible := PartialMatch(e.Registry, e.Mismatch, probe, c.Attrs)
	if !eligible {
		return Result{Eligible: false}
	}
	b := BaseLevel(t, c.ReinforcedAt, e.Decay, e.Optimized)
	n := e.Noise.Sample(c.ID, t, func() float64 {
		return rng.Logistic(e.Source, 0, e.Sigma)
	})
	return Result{
		BaseLevel: b,
		Noise:     n,
		Mismatch:  p,
		Total:     b + n + p,
		Eligible:  true,
	}
}
