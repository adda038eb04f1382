// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package actrerr defines the error kinds of spec.md §7 as wrapped
// sentinel errors, in the same bare fmt.Errorf style the teacher uses
// throughout its non-GUI packages (params/apply.go, looper/set.go,
// decoder/softmax.go) rather than a custom typed-error hierarchy.
package actrerr

import "errors"

// Sentinel error kinds. Use errors.Is against these after an operation
// returns a non-nil error.
var (
	// ErrInvalidParameter: a parameter is out of its domain (sigma<0,
	// tau<=0, d<0, optimized_learning "on" with d>=1, weight<0, ...).
	ErrInvalidParameter = errors.New("actr: invalid parameter")

	// ErrInvalidTime: negative advance, time going backward, or a
	// reinforcement timestamp after current_time.
	ErrInvalidTime = errors.New("actr: invalid time")

	// ErrUnknownAttribute: blend/salience named an attribute absent from
	// every candidate.
	ErrUnknownAttribute = errors.New("actr: unknown attribute")

	// ErrNonNumericBlend: the blend output attribute is non-numeric on
	// some candidate.
	ErrNonNumericBlend = errors.New("actr: non-numeric blend attribute")

	// ErrUndefinedDerivative: salience probed at x == y under
	// FallbackError.
	ErrUndefinedDerivative = errors.New("actr: undefined derivative")

	// ErrSimilarityContract: a similarity function returned an
	// out-of-range or asymmetric value that the cache detected.
	ErrSimilarityContract = errors.New("actr: similarity contract violated")

	// ErrNoTrace: salience was requested but no activation-history trace
	// of a prior blend is available (spec.md §4.5 requires the recorder to
	// have been active for the blend being explained).
	ErrNoTrace = errors.New("actr: no recorded trace available for salience")
)
