// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfg loads demonstration-binary configuration, following the same
// three-step contract as the teacher's econfig.Config: apply defaults, load
// a TOML file if one is named, then let environment variables (optionally
// read from a .env file) override individual fields.
package cfg

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by cmd/rps and cmd/ibl.
type Config struct {
	// Env selects the logging level: "development" logs at debug, anything
	// else logs at info (applog.New).
	Env string `toml:"env"`

	// Seed seeds the memory's RNG.
	Seed int64 `toml:"seed"`

	// Rounds is the number of simulated rounds/participants to run.
	Rounds int `toml:"rounds"`

	// Noise is a logistic activation noise scale. It is loaded but not
	// applied: cmd/rps agents always use 0.1 and cmd/ibl participants use
	// the memory default.
	Noise float64 `toml:"noise"`
}

// Defaults returns the configuration used when no file or environment
// override is present.
func Defaults() Config {
	return Config{Env: "production", Seed: 1, Rounds: 100, Noise: 0.25}
}

// Load applies Defaults, then a TOML file named by path (skipped if path is
// empty or names no existing file; a file that exists but cannot be read
// or decoded is returned as an error), then environment variables prefixed
// ACTR_ (loaded
// from a ".env" file in the working directory first, if present, matching
// godotenv's typical use alongside a process environment).
func Load(path string) (Config, error) {
	c := Defaults()

	_ = godotenv.Load()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &c); err != nil {
				return c, err
			}
		}
	}

	applyEnv(&c)
	return c, nil
}

func applyEnv(c *Config) {
	if v, ok := os.LookupEnv("ACTR_ENV"); ok {
		c.Env = v
	}
	if v, ok := os.LookupEnv("ACTR_SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v, ok := os.LookupEnv("ACTR_ROUNDS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rounds = n
		}
	}
	if v, ok := os.LookupEnv("ACTR_NOISE"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Noise = f
		}
	}
}
