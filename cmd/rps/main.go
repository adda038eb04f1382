// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rps runs a mutual instance-based-learning rock-paper-scissors
// match between two declarative-memory agents, each choosing its next move
// by blending the expected outcome of every move against what its opponent
// played last.
package main

import (
	"flag"

	"github.com/cogmod/actr/applog"
	"github.com/cogmod/actr/cfg"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	c, err := cfg.Load(*configPath)
	if err != nil {
		panic(err)
	}
	log := applog.New(&c)

	score, err := runRPS(c.Rounds, c.Seed)
	if err != nil {
		log.Error().Err(err).Msg("rps: simulation failed")
		return
	}
	log.Info().Int("rounds", c.Rounds).Int("score", score).Msg("rps: match complete")
}
