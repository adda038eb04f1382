// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package activation computes the three additive terms of spec.md §4.3:
// base-level activation from reinforcement history, logistic noise, and
// the partial-matching mismatch penalty.
package activation

import "math"

// OptMode selects how base-level activation is derived from reinforcement
// history (spec.md §3's optimized_learning parameter).
type OptMode int

const (
	// OptOff uses the full exact reinforcement history.
	OptOff OptMode = iota
	// OptOn uses only the first-occurrence time and total count.
	OptOn
	// OptK uses the K most recent timestamps exactly, approximating the
	// rest as uniformly distributed.
	OptK
)

// Optimized bundles the optimized_learning mode and its K parameter.
type Optimized struct {
	Mode OptMode
	K    int
}

// BaseLevel computes B_i for a chunk reinforced at the given (sorted,
// non-decreasing) timestamps, observed at current time t, under decay
// exponent d. decay == nil means decay is disabled (B_i = 0, spec.md
// §4.3).
//
// A zero-age reinforcement (t - t_ij == 0) is skipped from the exact sum
// when d > 0 (spec.md §9's "skip" policy, pinned in SPEC_FULL.md §3); at
// d == 0 there is no singularity (age^0 == 1) so it is counted normally.
func BaseLevel(t float64, timestamps []float64, decay *float64, opt Optimized) float64 {
	if decay == nil {
		return 0
	}
	d := *decay
	switch {
	case opt.Mode == OptOn:
		return baseLevelApprox(t, timestamps, d)
	case opt.Mode == OptK && len(timestamps) > opt.K:
		return baseLevelMixed(t, timestamps, d, opt.K)
	default:
		return baseLevelExact(t, timestamps, d)
	}
}

func exactTerm(age, d float64) (term float64, skip bool) {
	if age == 0 {
		if d == 0 {
			return 1, false
		}
		return 0, true
	}
	return math.Pow(age, -d), false
}

func baseLevelExact(t float64, timestamps []float64, d float64) float64 {
	sum := 0.0
	for _, ts := range timestamps {
		term, skip := exactTerm(t-ts, d)
		if !skip {
			sum += term
		}
	}
	if sum == 0 {
		return math.Inf(-1)
	}
	return math.Log(sum)
}

func baseLevelApprox(t float64, timestamps []float64, d float64) float64 {
	n := len(timestamps)
	l := t - timestamps[0]
	if l <= 0 {
		return math.Inf(-1)
	}
	return math.Log(float64(n)/(1-d)) - d*math.Log(l)
}

func baseLevelMixed(t float64, timestamps []float64, d float64, k int) float64 {
	n := len(timestamps)
	recent := timestamps[n-k:]
	sum := 0.0
	for _, ts := range recent {
		term, skip := exactTerm(t-ts, d)
		if !skip {
			sum += term
		}
	}
	older := n - k
	l := t - timestamps[0]
	if l > 0 && d < 1 {
		sum += float64(older) / (1 - d) * math.Pow(l, -d)
	}
	if sum == 0 {
		return math.Inf(-1)
	}
	return math.Log(sum)
}
