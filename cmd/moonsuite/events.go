// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/moonsuite/lib/authormapping"
	"github.com/ChainSafe/moonsuite/lib/events"
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
	"github.com/qdm12/gotree"
	"github.com/urfave/cli"
)

var eventsCommand = cli.Command{
	Name: "events",
	Usage: "Submit clear_association for a session address in a new block " +
		"and print the layout of the events it emits",
	Flags: []cli.Flag{
		SessionAddressFlag,
	},
	Action: deriveEvents,
}

func deriveEvents(ctx *cli.Context) error {
	sessionAddress, err := keyring.ParseSessionAddress(ctx.String(SessionAddressFlag.Name))
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
	if info != nil {
		logger.Warnf("session address is mapped to %s", info)
	}

	call, err := authormapping.ClearAssociation(devContext.Metadata(), sessionAddress)
	if err != nil {
		return err
	}

	creation, err := devContext.CreateBlock(runCtx, &call, dev.AllowFailures())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, layoutNode(creation).String())
	return err
}

func layoutNode(creation *dev.BlockCreation) *gotree.Node {
	result := creation.Result
	outcome := "succeeded"
	if !result.Successful {
		outcome = "failed: " + result.Error
	}
	root := gotree.New("%s in block %s %s", result.Call, creation.Hash, outcome)

	layout := events.Derive(result.Events)
	positions := make(map[int]events.Kind, len(layout.Positions))
	for _, expectation := range layout.Positions {
		positions[expectation.Index] = expectation.Kind
	}

	eventsNode := root.Appendf("%d events:", layout.Count)
	for i, record := range result.Events {
		kind, ok := positions[i]
		if !ok {
			eventsNode.Appendf("[%d] %s (uncatalogued)", i, record.Name)
			continue
		}
		eventsNode.Appendf("[%d] %s", i, kind)
	}
	return root
}
