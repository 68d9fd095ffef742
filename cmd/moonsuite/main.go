// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	_ "github.com/ChainSafe/moonsuite/tests/author"
	_ "github.com/breml/rootcerts"
	"github.com/urfave/cli"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "moonsuite"
	app.Usage = "Moonbeam dev node scenario suites"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		ConfigFlag,
		LogFlag,
		EndpointFlag,
	}
	app.Commands = []cli.Command{
		listCommand,
		runCommand,
		mappingCommand,
		eventsCommand,
		watchCommand,
		configCommand,
	}
	return app
}
