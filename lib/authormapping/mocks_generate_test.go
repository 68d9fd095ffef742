// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authormapping

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . StorageReader
