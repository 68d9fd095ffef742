// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/moonsuite/config"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
)

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// connect connects to the node at the configured endpoints.
// Nodes are only launched by go test.
func connect(ctx context.Context, cfg *config.Config, options ...dev.Option) (*dev.Context, error) {
	if cfg.Node.Start {
		logger.Warnf("launching node %s is only supported by go test, attaching to %s instead",
			cfg.Node.Binary, cfg.Endpoint.HTTP)
	}

	devContext, err := dev.Connect(ctx, *cfg, options...)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to node: %w", err)
	}
	return devContext, nil
}
