// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package author

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . BlockClient
