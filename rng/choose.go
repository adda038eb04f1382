// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

// ChooseMax returns the index of the largest value in vs, breaking ties
// uniformly at random among all indexes achieving the maximum (spec.md
// §4.4: "Ties are broken uniformly at random").
func ChooseMax(src Source, vs []float64) int {
	if len(vs) == 0 {
		return -1
	}
	best := vs[0]
	ties := []int{0}
	for i := 1; i < len(vs); i++ {
		switch {
		case vs[i] > best:
			best = vs[i]
			ties = ties[:0]
			ties = append(ties, i)
		case vs[i] == best:
			ties = append(ties, i)
		}
	}
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[int(src.Float64()*float64(len(ties)))]
}
