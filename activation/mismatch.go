// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package activation

import (
	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/simil"
	"github.com/cogmod/actr/value"
)

// PartialMatch computes P_i for one chunk against a probe (spec.md §4.3):
// for each probed attribute with a registered similarity function, it
// contributes weight*(S-1); for each without one, an exact match is
// required or the chunk is ineligible. When mismatch is nil (disabled),
// any imperfect similarity also makes the chunk ineligible. Returns the
// weighted sum scaled by mismatch (0 when mismatch is nil) and whether the
// chunk survives filtering.
func PartialMatch(reg *simil.Registry, mismatch *float64, probe map[string]value.Value, attrs chunk.Attrs) (p float64, eligible bool) {
	sum := 0.0
	for name, pv := range probe {
		cv, has := attrs.Get(name)
		if !has {
			return 0, false
		}
		if reg.Defined(name) {
			s := reg.Similarity(name, cv, pv)
			if mismatch == nil && s < 1 {
				return 0, false
			}
			sum += reg.Weight(name) * (s - 1)
			continue
		}
		if !cv.Equal(pv) {
			return 0, false
		}
	}
	if mismatch == nil {
		return 0, true
	}
	return *mismatch * sum, true
}
