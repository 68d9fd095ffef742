// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/ChainSafe/moonsuite/lib/keyring"
)

const (
	// DefaultName is the default run name
	DefaultName = "moonsuite"
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultChain is the default dev chain spec
	DefaultChain = "moonbase-dev"
	// DefaultRPCPort is the default node RPC port
	DefaultRPCPort uint16 = 9944
	// DefaultSealing is the default block sealing mode
	DefaultSealing = "manual"
	// DefaultStartupTimeout is the default node startup timeout
	DefaultStartupTimeout = "2m"
	// DefaultSigner is the default dev account signing extrinsics
	DefaultSigner = "alith"
	// DefaultMetricsAddress is the default prometheus listening address
	DefaultMetricsAddress = "localhost:9876"
)

// Default returns the default configuration, attaching
// to a dev node running on the local machine.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:   DefaultName,
			LogLvl: DefaultLogLevel,
		},
		Node: NodeConfig{
			Chain:          DefaultChain,
			RPCPort:        DefaultRPCPort,
			Sealing:        DefaultSealing,
			StartupTimeout: DefaultStartupTimeout,
		},
		Endpoint: EndpointConfig{
			HTTP: "http://localhost:9944",
			WS:   "ws://localhost:9944",
		},
		Account: AccountConfig{
			Mnemonic: keyring.DevMnemonic,
			Signer:   DefaultSigner,
		},
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
	}
}

// Copy creates a copy of the config.
func Copy(c *Config) Config {
	copied := *c
	copied.Node.ExtraArgs = append([]string(nil), c.Node.ExtraArgs...)
	return copied
}
