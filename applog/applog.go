// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package applog configures the structured logger used by the demonstration
// binaries in cmd/, grounded on Sergey-Bar-Alfred's services/gateway/logger
// package: a New(cfg) constructor over zerolog with a console writer and an
// environment-driven level.
package applog

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/cogmod/actr/cfg"
)

// New returns a zerolog.Logger writing human-readable output to stderr,
// at debug level in the "development" environment and info level otherwise.
func New(c *cfg.Config) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	lvl := zerolog.InfoLevel
	if c.Env == "development" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return zerolog.New(out).With().Timestamp().Logger()
}
