// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeRules(t *testing.T) {
	assert.Equal(t, 0.0, outcome("rock", "rock"))
	assert.Equal(t, 1.0, outcome("rock", "scissors"))
	assert.Equal(t, -1.0, outcome("scissors", "rock"))
	assert.Equal(t, 1.0, outcome("paper", "rock"))
	assert.Equal(t, 1.0, outcome("scissors", "paper"))
}

func TestRunRPSScoreBoundedByRounds(t *testing.T) {
	const rounds = 100
	score, err := runRPS(rounds, 42)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, -rounds)
	assert.LessOrEqual(t, score, rounds)
}

func TestAgentAlwaysChoosesALegalMove(t *testing.T) {
	a := newAgent(1, "A")
	seen := make(map[string]bool)
	last := ""
	for i := 0; i < 20; i++ {
		move, err := a.choose(last)
		require.NoError(t, err)
		seen[move.String()] = true
		a.observe(last, move, 0)
		last = move.String()
	}
	for m := range seen {
		assert.Contains(t, []string{"rock", "paper", "scissors"}, m)
	}
}
