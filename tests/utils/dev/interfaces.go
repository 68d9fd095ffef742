// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"context"

	"github.com/ChainSafe/moonsuite/lib/events"
	"github.com/ChainSafe/moonsuite/tests/utils/rpc"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Engine is the block authoring RPC surface of a manually sealing node.
type Engine interface {
	CreateBlock(ctx context.Context, createEmpty, finalize bool,
		parentHash string) (rpc.CreatedBlock, error)
	FinalizeBlock(ctx context.Context, blockHash string) error
	AccountNextIndex(ctx context.Context, account string) (uint64, error)
	SubmitExtrinsic(ctx context.Context, extrinsicHex string) (string, error)
	BlockExtrinsics(ctx context.Context, blockHash string) ([]string, error)
}

// Chain reads the runtime and the state of the chain.
type Chain interface {
	Metadata() (*types.Metadata, error)
	RuntimeVersion() (*types.RuntimeVersion, error)
	GenesisHash() (types.Hash, error)
	StorageRaw(key []byte) ([]byte, error)
	Events(blockHash types.Hash) ([]events.Record, error)
}

// Recorder records values under a collection.
type Recorder interface {
	Record(collection string, value interface{}) error
}
