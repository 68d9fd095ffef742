// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/internal/metrics"
	"github.com/ChainSafe/moonsuite/tests/utils"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
	"github.com/ChainSafe/moonsuite/tests/utils/suite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/qdm12/gotree"
	"github.com/urfave/cli"
)

var (
	ErrNoSuite      = errors.New("no suite registered")
	ErrSuitesFailed = errors.New("suites failed")
)

var listCommand = cli.Command{
	Name:   "list",
	Usage:  "List the registered suites and their cases",
	Action: listSuites,
}

var runCommand = cli.Command{
	Name:  "run",
	Usage: "Run suites against the configured dev node",
	Flags: []cli.Flag{
		SuiteFlag,
	},
	Action: runSuites,
}

func listSuites(ctx *cli.Context) error {
	_, err := fmt.Fprintln(ctx.App.Writer, suitesNode(suite.Registered()).String())
	return err
}

func suitesNode(suites []suite.Suite) *gotree.Node {
	root := gotree.New("Suites:")
	for _, s := range suites {
		suiteNode := root.Appendf("%s (%s)", s, s.Foundation)
		for _, testCase := range s.Cases() {
			suiteNode.Appendf("%s", s.CaseName(testCase))
		}
	}
	return root
}

func selectSuites(id string) (suites []suite.Suite, err error) {
	if id != "" {
		s, err := suite.Lookup(id)
		if err != nil {
			return nil, err
		}
		return []suite.Suite{s}, nil
	}

	suites = suite.Registered()
	if len(suites) == 0 {
		return nil, ErrNoSuite
	}
	return suites, nil
}

func runSuites(ctx *cli.Context) (err error) {
	suites, err := selectSuites(ctx.String(SuiteFlag.Name))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, os.LookupEnv)
	if err != nil {
		return err
	}

	runCtx, cancel := signalContext()
	defer cancel()

	var options []dev.Option

	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		devMetrics, err := dev.NewMetrics(registry)
		if err != nil {
			return err
		}
		options = append(options, dev.WithMetrics(devMetrics))

		server := metrics.NewServer(cfg.Metrics.Address, registry)
		err = server.Start()
		if err != nil {
			return fmt.Errorf("cannot start metrics server: %w", err)
		}
		defer func() {
			stopErr := server.Stop()
			if stopErr != nil {
				logger.Warn(stopErr.Error())
			}
		}()
	}

	if cfg.Global.RecordDir != "" {
		recorder, err := utils.NewRecorder(cfg.Global.RecordDir)
		if err != nil {
			return err
		}
		logger.Infof("recording run %s in %s", recorder.RunID(), cfg.Global.RecordDir)
		options = append(options, dev.WithRecorder(recorder))
	}

	devContext, err := connect(runCtx, cfg, options...)
	if err != nil {
		return err
	}
	defer devContext.Close()

	failed := 0
	for _, s := range suites {
		env := suite.Env{
			Ctx: runCtx,
			Dev: devContext,
			Log: logger.New(log.AddContext("suite", s.ID)),
		}
		report := suite.RunCases(s, env)
		_, err = fmt.Fprintln(ctx.App.Writer, report.String())
		if err != nil {
			return err
		}
		if !report.Passed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSuitesFailed, failed, len(suites))
	}
	return nil
}
