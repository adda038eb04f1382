// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ibl runs the safe/risky instance-based-learning choice model of
// spec.md §8 scenario 6 across many simulated participants and reports how
// the fraction choosing the risky option evolves across trials.
package main

import (
	"flag"

	"github.com/cogmod/actr/applog"
	"github.com/cogmod/actr/cfg"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	participants := flag.Int("participants", 10000, "number of simulated participants")
	trials := flag.Int("trials", 60, "number of choice trials per participant")
	flag.Parse()

	c, err := cfg.Load(*configPath)
	if err != nil {
		panic(err)
	}
	log := applog.New(&c)

	fracs, err := riskyFraction(*participants, *trials, c.Seed)
	if err != nil {
		log.Error().Err(err).Msg("ibl: simulation failed")
		return
	}
	log.Info().
		Float64("first_trial_risky_fraction", fracs[0]).
		Float64("last_trial_risky_fraction", fracs[len(fracs)-1]).
		Msg("ibl: simulation complete")
}
