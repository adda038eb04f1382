// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/cogmod/actr/memory"
	"github.com/cogmod/actr/value"
)

var (
	safeChoice  = value.Sym("safe")
	riskyChoice = value.Sym("risky")
	choices     = []value.Value{safeChoice, riskyChoice}
)

// newParticipant returns a memory prepopulated with the safe and risky
// outcome instances spec.md §8 scenario 6 specifies: safe always pays 1;
// risky pays 0 or 2 with equal prior weight, the same expected value as
// safe but with variance that instance-based sampling learns to avoid.
func newParticipant(seed int64) *memory.Memory {
	m := memory.New()
	m.Seed(seed)
	m.Prepopulate(map[string]value.Value{"choice": safeChoice, "outcome": value.Num(1)})
	m.Prepopulate(map[string]value.Value{"choice": riskyChoice, "outcome": value.Num(0)})
	m.Prepopulate(map[string]value.Value{"choice": riskyChoice, "outcome": value.Num(2)})
	// Base-level activation is singular for a reinforcement exactly at the
	// current time (spec.md §9's zero-age case); advancing once past the
	// prepopulation instant gives every instance a well-defined age before
	// the first choice is blended.
	_ = m.Advance(1)
	return m
}

// simulateParticipant runs one participant through trials rounds of the
// safe/risky choice task, returning which choice was made each round.
func simulateParticipant(seed int64, trials int) ([]bool, error) {
	m := newParticipant(seed)
	draw := rand.New(rand.NewSource(seed ^ 0x5bd1e995))

	chosenRisky := make([]bool, trials)
	for i := 0; i < trials; i++ {
		choice, _, err := m.BestBlend("outcome", choices, "choice", nil)
		if err != nil {
			return nil, err
		}
		isRisky := choice != nil && choice.Equal(riskyChoice)
		chosenRisky[i] = isRisky

		var result float64
		if isRisky {
			if draw.Float64() < 0.5 {
				result = 0
			} else {
				result = 2
			}
		} else {
			result = 1
		}
		pick := safeChoice
		if isRisky {
			pick = riskyChoice
		}
		_, _ = m.Learn(map[string]value.Value{"choice": pick, "outcome": value.Num(result)}, 1)
	}
	return chosenRisky, nil
}

// riskyFraction runs participants independent simulations of trials rounds
// each and returns, for each round index, the fraction of participants who
// chose risky that round.
func riskyFraction(participants, trials int, seedBase int64) ([]float64, error) {
	counts := make([]int, trials)
	for p := 0; p < participants; p++ {
		picks, err := simulateParticipant(seedBase+int64(p), trials)
		if err != nil {
			return nil, err
		}
		for i, risky := range picks {
			if risky {
				counts[i]++
			}
		}
	}
	fracs := make([]float64, trials)
	for i, c := range counts {
		fracs[i] = float64(c) / float64(participants)
	}
	return fracs, nil
}
