// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package suite

import (
	"context"
	"testing"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/tests/utils"
	testconfig "github.com/ChainSafe/moonsuite/tests/utils/config"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
	"github.com/ChainSafe/moonsuite/tests/utils/node"
	"github.com/stretchr/testify/require"
)

// Run runs the cases of the suite as subtests, sequentially, against
// the foundation of the suite. Suites are skipped unless MODE is dev.
// A dev node is launched for the suite if the configuration says so,
// otherwise the suite attaches to the configured endpoints.
func Run(t *testing.T, s Suite) {
	if !utils.IsDevMode() {
		t.Skipf("skipping suite %s: MODE is not %s", s.ID, utils.DevMode)
	}
	require.Equal(t, Dev, s.Foundation, "unsupported foundation")

	cfg := testconfig.Default(t)

	level, err := log.ParseLevel(cfg.Global.LogLvl)
	require.NoError(t, err)
	logger := log.New(log.SetWriter(utils.NewTestWriter(t)),
		log.SetLevel(level), log.AddContext("suite", s.ID))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if cfg.Node.Start {
		devNode := node.New(t, cfg, node.SetWriter(utils.NewTestWriter(t)))
		devNode.InitAndStartTest(ctx, t, cancel)
		cfg = devNode.Config()
	}

	options := []dev.Option{}
	if cfg.Global.RecordDir != "" {
		recorder, err := utils.NewRecorder(cfg.Global.RecordDir)
		require.NoError(t, err)
		logger.Infof("recording run %s", recorder.RunID())
		options = append(options, dev.WithRecorder(recorder))
	}

	devContext, err := dev.Connect(ctx, cfg, options...)
	require.NoError(t, err)
	t.Cleanup(devContext.Close)

	env := Env{
		Ctx: ctx,
		Dev: devContext,
		Log: logger,
	}

	for _, testCase := range s.Cases() {
		testCase := testCase
		t.Run(s.CaseName(testCase), func(t *testing.T) {
			testCase.Test(t, env)
		})
	}
}
