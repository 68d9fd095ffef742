// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/moonsuite/lib/authormapping"
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/urfave/cli"
)

var ErrSessionAddressMissing = errors.New("session address argument is missing")

var mappingCommand = cli.Command{
	Name:      "mapping",
	Usage:     "Print the account a session address is associated with",
	ArgsUsage: "<session-address>",
	Action:    printMapping,
}

func printMapping(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return ErrSessionAddressMissing
	}

	sessionAddress, err := keyring.ParseSessionAddress(ctx.Args().First())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, os.LookupEnv)
	if err != nil {
		return err
	}

	runCtx, cancel := signalContext()
	defer cancel()

	devContext, err := connect(runCtx, cfg)
	if err != nil {
		return err
	}
	defer devContext.Close()

	info, err := authormapping.GetMappingInfo(runCtx, devContext, sessionAddress)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, mappingLine(ctx.Args().First(), info))
	return err
}

func mappingLine(sessionAddress string, info *authormapping.MappingInfo) string {
	if info == nil {
		return fmt.Sprintf("session address %s is not mapped", sessionAddress)
	}
	return fmt.Sprintf("session address %s is mapped to %s", sessionAddress, info)
}
