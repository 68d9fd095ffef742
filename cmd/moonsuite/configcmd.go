// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/moonsuite/config"
	"github.com/urfave/cli"
)

var ErrConfigPathMissing = errors.New("config file path argument is missing")

var configCommand = cli.Command{
	Name:  "config",
	Usage: "Configuration utilities",
	Subcommands: []cli.Command{
		{
			Name:      "export",
			Usage:     "Export the resolved configuration to a TOML file",
			ArgsUsage: "<path>",
			Action:    exportConfig,
		},
	},
}

func exportConfig(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return ErrConfigPathMissing
	}
	path := ctx.Args().First()

	cfg, err := loadConfig(ctx, os.LookupEnv)
	if err != nil {
		return err
	}

	err = config.Write(path, cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "configuration exported to %s\n", path)
	return err
}
