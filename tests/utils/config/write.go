// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"path/filepath"
	"testing"

	cfg "github.com/ChainSafe/moonsuite/config"
	"github.com/stretchr/testify/require"
)

// Write writes the toml configuration to a file
// in a temporary test directory which gets removed at
// the end of the test.
func Write(t *testing.T, config cfg.Config) (configPath string) {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "config.toml")
	err := cfg.Write(configPath, &config)
	require.NoError(t, err)
	return configPath
}
