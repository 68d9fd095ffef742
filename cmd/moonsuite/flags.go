// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// EndpointFlag node HTTP endpoint, the websocket endpoint is derived from it
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint",
		Usage: "HTTP endpoint of the dev node, eg. http://localhost:9944",
	}
)

// Command flags
var (
	// SuiteFlag suite to run
	SuiteFlag = cli.StringFlag{
		Name:  "suite",
		Usage: "ID of the suite to run, all suites are run if empty",
	}
	// SessionAddressFlag session address to clear the association of
	SessionAddressFlag = cli.StringFlag{
		Name:  "session-address",
		Usage: "Session address to clear the association of",
		Value: keyring.BaltatharSessionAddress,
	}
	// CountFlag number of headers to watch
	CountFlag = cli.UintFlag{
		Name:  "count",
		Usage: "Number of new heads to print before exiting, 0 to watch until interrupted",
	}
)
