// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateParticipantReturnsOneChoicePerTrial(t *testing.T) {
	picks, err := simulateParticipant(1, 30)
	require.NoError(t, err)
	assert.Len(t, picks, 30)
}

// TestRiskyFractionDeclinesTowardSteadyState reproduces spec.md §8
// scenario 6: across many participants the fraction choosing risky
// declines from its initial ~0.5 toward a lower steady state, the
// well-known instance-based-learning risk-aversion effect.
func TestRiskyFractionDeclinesTowardSteadyState(t *testing.T) {
	const participants = 2000
	const trials = 40
	fracs, err := riskyFraction(participants, trials, 7)
	require.NoError(t, err)
	require.Len(t, fracs, trials)

	early := average(fracs[:5])
	late := average(fracs[trials-5:])
	assert.Less(t, late, early)
	assert.Less(t, late, 0.5)
}

func average(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
