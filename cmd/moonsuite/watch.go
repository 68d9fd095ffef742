// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ChainSafe/moonsuite/tests/utils/websocket"
	"github.com/urfave/cli"
)

var watchCommand = cli.Command{
	Name:  "watch",
	Usage: "Print the new block headers of the node",
	Flags: []cli.Flag{
		CountFlag,
	},
	Action: watchHeads,
}

func watchHeads(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, os.LookupEnv)
	if err != nil {
		return err
	}

	runCtx, cancel := signalContext()
	defer cancel()

	headers, errs, err := websocket.SubscribeNewHeads(runCtx, cfg.Endpoint.WS)
	if err != nil {
		return err
	}

	return printHeads(ctx.App.Writer, headers, errs, ctx.Uint(CountFlag.Name))
}

// printHeads prints headers until the channel is closed or
// count headers are printed, if count is not zero.
func printHeads(writer io.Writer, headers <-chan websocket.Header,
	errs <-chan error, count uint) error {
	var printed uint
	for header := range headers {
		number, err := strconv.ParseUint(strings.TrimPrefix(header.Number, "0x"), 16, 64)
		if err != nil {
			return fmt.Errorf("malformed block number %s: %w", header.Number, err)
		}

		_, err = fmt.Fprintf(writer, "#%d parent %s state root %s\n",
			number, header.ParentHash, header.StateRoot)
		if err != nil {
			return err
		}

		printed++
		if count > 0 && printed == count {
			return nil
		}
	}
	return <-errs
}
