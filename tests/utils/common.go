// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"os"
)

var (
	// MODE is the value for the environnent variable MODE.
	MODE = os.Getenv("MODE")

	// LOGLEVEL is the value for the environnent variable LOG.
	LOGLEVEL = os.Getenv("LOG")
)

// DevMode is the MODE value enabling the suites
// running against a dev node.
const DevMode = "dev"

// IsDevMode returns true if the dev foundation suites are enabled.
func IsDevMode() bool {
	return MODE == DevMode
}
