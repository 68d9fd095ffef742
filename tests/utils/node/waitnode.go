// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/moonsuite/tests/utils/retry"
	"github.com/ChainSafe/moonsuite/tests/utils/rpc"
)

func waitForNode(ctx context.Context, rpcPort string) (err error) {
	return waitForEndpoint(ctx, rpc.NewEndpoint(rpcPort))
}

func waitForEndpoint(ctx context.Context, endpoint string) (err error) {
	const retryWait = time.Second
	err = retry.UntilNoError(ctx, retryWait, func() (err error) {
		const checkNodeStartedTimeout = time.Second
		checkNodeCtx, checkNodeCancel := context.WithTimeout(ctx, checkNodeStartedTimeout)
		err = checkNodeStarted(checkNodeCtx, endpoint)
		checkNodeCancel()
		return err
	})

	if err != nil {
		return fmt.Errorf("node did not start: %w", err)
	}

	return nil
}

var errNodeSyncing = errors.New("node is still syncing")

// checkNodeStarted check if the dev node is started
func checkNodeStarted(ctx context.Context, endpoint string) error {
	health, err := rpc.GetHealth(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("cannot get health: %w", err)
	}

	if health.IsSyncing {
		return errNodeSyncing
	}

	return nil
}
