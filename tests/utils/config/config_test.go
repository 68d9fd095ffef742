// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"testing"

	cfg "github.com/ChainSafe/moonsuite/config"
	"github.com/stretchr/testify/assert"
)

func Test_Default_fromFile(t *testing.T) {
	written := *cfg.Default()
	written.Global.Name = "from-file"
	written.Node.RPCPort = 9955
	path := Write(t, written)

	t.Setenv(ConfigPathEnv, path)
	t.Setenv("LOG", "debug")

	config := Default(t)

	assert.Equal(t, "from-file", config.Global.Name)
	assert.Equal(t, uint16(9955), config.Node.RPCPort)
	assert.Equal(t, "debug", config.Global.LogLvl)
}

func Test_Attach(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	config := Attach(t, "http://localhost:9955", "ws://localhost:9955")

	assert.False(t, config.Node.Start)
	assert.Equal(t, "http://localhost:9955", config.Endpoint.HTTP)
	assert.Equal(t, "ws://localhost:9955", config.Endpoint.WS)
}

func Test_Launch(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	config := Launch(t, "/usr/local/bin/moonbeam")

	assert.True(t, config.Node.Start)
	assert.Equal(t, "/usr/local/bin/moonbeam", config.Node.Binary)
}
