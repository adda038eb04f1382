// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import "math"

// Logistic draws a sample from the logistic distribution with the given
// mean and scale (sigma), by inverse-CDF transform of a uniform draw. This
// extends the teacher's erand.RndParams.Gen dispatch table, which covers
// Uniform/Binomial/Poisson/Gamma/Gaussian/Beta/Mean but not Logistic --
// activation noise (spec.md §4.3) is logistic, not Gaussian.
//
// When scale is zero the distribution degenerates to a point mass at mean,
// matching spec.md's "when sigma=0, noise=0".
func Logistic(src Source, mean, scale float64) float64 {
	if scale == 0 {
		return mean
	}
	u := src.Float64()
	// avoid the unbounded tails of ln(u/(1-u)) at the sampled endpoints
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	} else if u >= 1 {
		u = 1 - math.SmallestNonzeroFloat64
	}
	return mean + scale*math.Log(u/(1-u))
}
