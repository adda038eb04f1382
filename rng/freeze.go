// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import "github.com/google/uuid"

// noiseKey identifies one chunk's noise sample at one point in time.
type noiseKey struct {
	id uuid.UUID
	t  float64
}

// NoiseCache implements the fixed_noise scoped acquisition (spec.md §3,
// §4.3, §9): while frozen, repeated noise samples for the same chunk at
// the same current_time reuse the first sample drawn; outside a freeze,
// every call draws fresh noise. Matches spec.md §5's requirement that the
// cache be "keyed by (chunk-id, current_time); flushed on scope exit or on
// advance."
type NoiseCache struct {
	frozen bool
	values map[noiseKey]float64
}

// Freeze begins a fixed_noise scope and returns the restore function to
// call on exit (spec.md §9: "express as guard objects that snapshot prior
// state on entry and restore on any exit path").
func (c *NoiseCache) Freeze() (restore func()) {
	was := c.frozen
	c.frozen = true
	if c.values == nil {
		c.values = make(map[noiseKey]float64)
	}
	return func() {
		c.frozen = was
		if !was {
			c.Flush()
		}
	}
}

// Flush discards all cached samples, as happens on Memory.Advance.
func (c *NoiseCache) Flush() {
	c.values = nil
}

// Sample returns the noise value for (id, t), drawing one with gen the
// first time it is requested while frozen. Outside a freeze scope, gen is
// called every time and nothing is cached.
func (c *NoiseCache) Sample(id uuid.UUID, t float64, gen func() float64) float64 {
	if !c.frozen {
		return gen()
	}
	k := noiseKey{id: id, t: t}
	if v, ok := c.values[k]; ok {
		return v
	}
	v := gen()
	if c.values == nil {
		c.values = make(map[noiseKey]float64)
	}
	c.values[k] = v
	return v
}
