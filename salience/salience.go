// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package salience computes the partial-derivative salience of spec.md
// §4.5: how much a probe attribute's value influences a blended output,
// read from the trace of the most recently recorded blend.
package salience

import (
	"github.com/cogmod/actr/actrerr"
	"github.com/cogmod/actr/history"
	"github.com/cogmod/actr/simil"
	"github.com/cogmod/actr/value"
)

// Fallback selects the policy used when a derivative is requested at x ==
// y, where the user-supplied derivative function is undefined (spec.md
// §4.5, §9).
type Fallback int

const (
	// FallbackZero treats the undefined derivative as contributing 0 --
	// the conservative default (SPEC_FULL.md §3, §9).
	FallbackZero Fallback = iota
	// FallbackOneSided approximates the derivative from the side of a
	// small positive perturbation of the probe value, i.e.
	// Registry.Derivative(probe+eps, chunkValue).
	FallbackOneSided
	// FallbackError returns actrerr.ErrUndefinedDerivative instead of a
	// value.
	FallbackError
)

// epsilon is the perturbation used by FallbackOneSided.
const epsilon = 1e-6

// Salience computes salience(attr, target) from trace, using reg for the
// attribute's derivative function and weight, and mu for the mismatch
// scale (spec.md: d_i = dξ/dy(chunk.a, y) * mu * omega_a -- the derivative
// is with respect to the probe value y = target, not the chunk's value).
func Salience(trace history.Trace, reg *simil.Registry, mu float64, attr string, target value.Value, fallback Fallback) (float64, error) {
	type weighted struct {
		p, v, d float64
	}
	var terms []weighted
	w := reg.Weight(attr)

	for _, rec := range trace.Records {
		if !rec.Eligible {
			continue
		}
		cv, ok := rec.Attrs.Get(attr)
		if !ok {
			continue
		}
		out, ok := trace.Output[rec.ChunkID]
		if !ok {
			continue
		}
		d, err := derivativeAt(reg, attr, target, cv, fallback)
		if err != nil {
			return 0, err
		}
		terms = append(terms, weighted{p: rec.Probability, v: out, d: mu * w * d})
	}
	if len(terms) == 0 {
		return 0, nil
	}

	meanD := 0.0
	for _, term := range terms {
		meanD += term.p * term.d
	}

	sum := 0.0
	for _, term := range terms {
		sum += term.p * term.v * (term.d - meanD)
	}
	return sum, nil
}

// derivativeAt returns dξ/dy(chunkVal, probe) -- the derivative with
// respect to the probe value, since salience measures how the probe (not
// the stored chunk) moves the blended output. Registry.Derivative computes
// d/dx Fn(x,y), so the probe is passed as x and the chunk value as y.
func derivativeAt(reg *simil.Registry, attr string, probe, chunkVal value.Value, fallback Fallback) (float64, error) {
	if !probe.Equal(chunkVal) {
		return reg.Derivative(attr, probe, chunkVal), nil
	}
	switch fallback {
	case FallbackZero:
		return 0, nil
	case FallbackOneSided:
		f, ok := probe.Float()
		if !ok {
			return 0, nil
		}
		return reg.Derivative(attr, value.Num(f+epsilon), chunkVal), nil
	default:
		return 0, actrerr.ErrUndefinedDerivative
	}
}
