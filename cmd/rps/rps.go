// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"

	"github.com/cogmod/actr/memory"
	"github.com/cogmod/actr/value"
)

var moves = []value.Value{value.Sym("rock"), value.Sym("paper"), value.Sym("scissors")}

// beats reports whether move a defeats move b under standard rock-paper-
// scissors rules.
func beats(a, b string) bool {
	switch {
	case a == "rock" && b == "scissors":
		return true
	case a == "scissors" && b == "paper":
		return true
	case a == "paper" && b == "rock":
		return true
	}
	return false
}

// outcome returns +1 if a beats b, -1 if b beats a, 0 on a tie.
func outcome(a, b string) float64 {
	switch {
	case a == b:
		return 0
	case beats(a, b):
		return 1
	default:
		return -1
	}
}

// agent is one mutual-IBL player: a memory of (opponent's last move, my
// move, outcome) instances, used to pick the move that blends to the best
// expected outcome against whatever the opponent just played.
type agent struct {
	mem  *memory.Memory
	rng  *rand.Rand
	name string
}

func newAgent(seed int64, name string) *agent {
	m := memory.New()
	m.Seed(seed)
	if err := m.SetNoise(0.1); err != nil {
		panic(err)
	}
	return &agent{mem: m, rng: rand.New(rand.NewSource(seed)), name: name}
}

// choose picks a's next move given the opponent's previous move (the empty
// string on the first round, when no chunk has yet been learned and
// best_blend necessarily finds no eligible candidates).
func (a *agent) choose(oppLast string) (value.Value, error) {
	if oppLast != "" {
		probe := map[string]value.Value{"opp_last": value.Sym(oppLast)}
		choice, _, err := a.mem.BestBlend("outcome", moves, "move", probe)
		if err != nil {
			return value.Value{}, err
		}
		if choice != nil {
			return *choice, nil
		}
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// observe records the outcome of a round so future choices can learn from
// it.
func (a *agent) observe(oppLast string, myMove value.Value, result float64) {
	attrs := map[string]value.Value{"move": myMove, "outcome": value.Num(result)}
	if oppLast != "" {
		attrs["opp_last"] = value.Sym(oppLast)
	}
	_, _ = a.mem.Learn(attrs, 1)
}

// runRPS simulates rounds of mutual instance-based-learning
// rock-paper-scissors between two agents seeded from seed, returning agent
// A's net score (wins minus losses, from A's perspective).
func runRPS(rounds int, seed int64) (score int, err error) {
	a := newAgent(seed, "A")
	b := newAgent(seed+1, "B")

	var lastA, lastB string
	for i := 0; i < rounds; i++ {
		moveA, err := a.choose(lastB)
		if err != nil {
			return 0, fmt.Errorf("round %d: agent A: %w", i, err)
		}
		moveB, err := b.choose(lastA)
		if err != nil {
			return 0, fmt.Errorf("round %d: agent B: %w", i, err)
		}

		mas := moveA.String()
		mbs := moveB.String()
		res := outcome(mas, mbs)

		a.observe(lastB, moveA, res)
		b.observe(lastA, moveB, -res)

		if res > 0 {
			score++
		} else if res < 0 {
			score--
		}
		lastA, lastB = mas, mbs
	}
	return score, nil
}
