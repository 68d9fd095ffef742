// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/moonsuite/config"
	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// loadConfig builds the configuration from, in order of precedence,
// the command line flags, the environment, the configuration
// file and the defaults. It also sets the global log level.
func loadConfig(ctx *cli.Context, lookupEnv config.LookupEnvFunc) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv(lookupEnv)

	if endpoint := ctx.GlobalString(EndpointFlag.Name); endpoint != "" {
		cfg.SetEndpoint(endpoint)
	}

	if level := ctx.GlobalString(LogFlag.Name); level != "" {
		cfg.Global.LogLvl = level
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	err = setupLogger(cfg.Global.LogLvl)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger sets the level of the global logger.
func setupLogger(levelString string) error {
	level, err := log.ParseLevel(levelString)
	if err != nil {
		return fmt.Errorf("cannot parse log level: %w", err)
	}
	log.PatchLevel(level)
	return nil
}
