// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"

	"github.com/cogmod/actr/actrerr"
	"github.com/cogmod/actr/salience"
	"github.com/cogmod/actr/value"
)

// Salience computes how much probe attribute attr, at value target,
// influenced the most recently computed Blend (spec.md §4.5). It requires
// activation history to have been enabled for that blend; otherwise it
// returns actrerr.ErrNoTrace. When partial matching is disabled (mismatch
// is nil), the probe never affects activation, so salience is always 0.
func (m *Memory) Salience(attr string, target value.Value) (float64, error) {
	trace, ok := m.history.LastTrace()
	if !ok {
		return 0, fmt.Errorf("memory.Salience: %w", actrerr.ErrNoTrace)
	}
	mu := 0.0
	if m.mismatch != nil {
		mu = *m.mismatch
	}
	return salience.Salience(trace, m.registry, mu, attr, target, m.derivativeFallback)
}
