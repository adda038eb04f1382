// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseLevelDecayDisabled(t *testing.T) {
	assert.Equal(t, 0.0, BaseLevel(10, []float64{1, 2, 3}, nil, Optimized{}))
}

func TestBaseLevelZeroDecayIsPureFrequency(t *testing.T) {
	d := 0.0
	got := BaseLevel(10, []float64{1, 2, 3}, &d, Optimized{})
	assert.InDelta(t, math.Log(3), got, 1e-9)
}

func TestBaseLevelExactMatchesFormula(t *testing.T) {
	d := 0.5
	got := BaseLevel(6, []float64{1, 3, 5}, &d, Optimized{})
	want := math.Log(math.Pow(5, -d) + math.Pow(3, -d) + math.Pow(1, -d))
	assert.InDelta(t, want, got, 1e-9)
}

func TestBaseLevelZeroAgeSkippedWhenDecayPositive(t *testing.T) {
	d := 0.5
	onlyZeroAge := BaseLevel(5, []float64{5}, &d, Optimized{})
	assert.True(t, math.IsInf(onlyZeroAge, -1))
}

func TestBaseLevelOptimizedOnMatchesFormula(t *testing.T) {
	d := 0.5
	got := BaseLevel(10, []float64{2, 4, 6}, &d, Optimized{Mode: OptOn})
	l := 10.0 - 2.0
	want := math.Log(3/(1-d)) - d*math.Log(l)
	assert.InDelta(t, want, got, 1e-9)
}

func TestBaseLevelMixedFallsBackToExactWhenFewerThanK(t *testing.T) {
	d := 0.5
	exact := BaseLevel(10, []float64{2, 4, 6}, &d, Optimized{})
	mixed := BaseLevel(10, []float64{2, 4, 6}, &d, Optimized{Mode: OptK, K: 5})
	assert.InDelta(t, exact, mixed, 1e-9)
}

func TestBaseLevelMixedApproximatesOlderReinforcements(t *testing.T) {
	d := 0.5
	timestamps := []float64{1, 2, 3, 4, 5, 6}
	got := BaseLevel(10, timestamps, &d, Optimized{Mode: OptK, K: 2})
	// exact for the 2 most recent (5, 6); approximate for the 4 older ones
	recentSum := math.Pow(10-5, -d) + math.Pow(10-6, -d)
	l := 10.0 - 1.0
	approx := 4.0 / (1 - d) * math.Pow(l, -d)
	want := math.Log(recentSum + approx)
	assert.InDelta(t, want, got, 1e-9)
}
