// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides the randomization functionality used by a single
// Memory: logistic activation noise and uniform tie-breaking among
// maximal activations, both drawn from one seedable, per-memory source
// rather than a package-global generator (spec.md §5, §9).
package rng

import "math/rand"

// Source is the minimal random-number interface consumed by this package.
// A Memory owns exactly one Source; nothing in this package falls back to
// a global generator.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// StdSource implements Source on top of math/rand.Rand.
type StdSource struct {
	r *rand.Rand
}

// NewStdSource returns a Source seeded with seed. Two StdSources built from
// the same seed produce identical sequences.
func NewStdSource(seed int64) *StdSource {
	return &StdSource{r: rand.New(rand.NewSource(seed))}
}

// Float64 implements Source.
func (s *StdSource) Float64() float64 { return s.r.Float64() }
