// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package retry

import (
	"context"
	"fmt"
	"time"
)

// UntilNoError retries the function `f` until it returns a nil error.
// It waits `retryWait` after each failed call to `f`.
// If the context `ctx` is canceled, the function returns
// immediately an error stating the number of failed tries,
// for how long it retried and the last error returned by `f`.
func UntilNoError(ctx context.Context, retryWait time.Duration,
	f func() (err error)) (err error) {
	failedTries := 0
	var lastErr error
	for ctx.Err() == nil {
		lastErr = f()
		if lastErr == nil {
			return nil
		}

		waitAfterFail(ctx, retryWait, &failedTries)
	}

	if lastErr == nil {
		return makeError(failedTries, retryWait, ctx.Err())
	}
	return fmt.Errorf("%w: last error: %s", makeError(failedTries, retryWait, ctx.Err()), lastErr)
}
