// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"time"
)

// Config is the moonsuite configuration.
type Config struct {
	Global   GlobalConfig   `toml:"global,omitempty"`
	Node     NodeConfig     `toml:"node,omitempty"`
	Endpoint EndpointConfig `toml:"endpoint,omitempty"`
	Account  AccountConfig  `toml:"account,omitempty"`
	Metrics  MetricsConfig  `toml:"metrics,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name      string `toml:"name,omitempty" validate:"required"`
	LogLvl    string `toml:"log,omitempty" validate:"required,loglevel"`
	RecordDir string `toml:"record-dir,omitempty"`
}

// NodeConfig is the configuration of the dev node the suites run against.
// If Start is false, the suites attach to an already running node
// at the endpoints configured.
type NodeConfig struct {
	Start          bool     `toml:"start"`
	Binary         string   `toml:"binary,omitempty" validate:"required_if=Start true"`
	Chain          string   `toml:"chain,omitempty" validate:"required"`
	RPCPort        uint16   `toml:"rpc-port,omitempty" validate:"required"`
	Sealing        string   `toml:"sealing,omitempty" validate:"oneof=manual instant"`
	ExtraArgs      []string `toml:"extra-args,omitempty"`
	StartupTimeout string   `toml:"startup-timeout,omitempty" validate:"required,duration"`
}

// Timeout returns the node startup timeout duration,
// or zero if it is malformed.
func (n NodeConfig) Timeout() time.Duration {
	timeout, _ := time.ParseDuration(n.StartupTimeout)
	return timeout
}

// EndpointConfig holds the node endpoints.
type EndpointConfig struct {
	HTTP string `toml:"http,omitempty" validate:"required,url"`
	WS   string `toml:"ws,omitempty" validate:"required,url"`
}

// AccountConfig is to marshal/unmarshal account config vars
type AccountConfig struct {
	Mnemonic string `toml:"mnemonic,omitempty" validate:"required"`
	Signer   string `toml:"signer,omitempty" validate:"oneof=alith baltathar charleth dorothy ethan faith"`
}

// MetricsConfig is the configuration of the prometheus metrics server.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address,omitempty" validate:"required_if=Enabled true"`
}
