// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsUnlessOverridden(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
}

func TestEnvOverridesDefaults(t *testing.T) {
	os.Setenv("ACTR_ENV", "development")
	os.Setenv("ACTR_ROUNDS", "500")
	defer os.Unsetenv("ACTR_ENV")
	defer os.Unsetenv("ACTR_ROUNDS")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, 500, c.Rounds)
}

func TestMissingFileIsNotAnError(t *testing.T) {
	_, err := Load("/nonexistent/path/does-not-exist.toml")
	assert.NoError(t, err)
}
