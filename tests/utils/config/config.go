// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"testing"

	cfg "github.com/ChainSafe/moonsuite/config"
	"github.com/stretchr/testify/require"
)

// ConfigPathEnv is the environment variable holding
// the path of the configuration file used by the suites.
const ConfigPathEnv = "MOONSUITE_CONFIG"

// Default returns the configuration loaded from the file at
// $MOONSUITE_CONFIG if set, or the default configuration otherwise,
// with the environment overrides applied. The test fails if the
// resulting configuration is invalid.
func Default(t testing.TB) (config cfg.Config) {
	t.Helper()

	loaded := cfg.Default()
	if path := os.Getenv(ConfigPathEnv); path != "" {
		var err error
		loaded, err = cfg.Load(path)
		require.NoError(t, err)
	}

	loaded.ApplyEnv(os.LookupEnv)

	err := loaded.Validate()
	require.NoError(t, err)

	return *loaded
}

// Attach generates a configuration attaching to the node
// at the HTTP and websocket endpoints given.
func Attach(t testing.TB, httpEndpoint, wsEndpoint string) (config cfg.Config) {
	config = Default(t)
	config.Node.Start = false
	config.Endpoint.HTTP = httpEndpoint
	config.Endpoint.WS = wsEndpoint
	return config
}

// Launch generates a configuration launching the node binary given.
func Launch(t testing.TB, binary string) (config cfg.Config) {
	config = Default(t)
	config.Node.Start = true
	config.Node.Binary = binary
	return config
}
