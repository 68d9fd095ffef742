// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"fmt"
)

// GetHealth sends an RPC request to `system_health`.
func GetHealth(ctx context.Context, address string) (
	health Health, err error) {
	err = call(ctx, address, "system_health", &health)
	if err != nil {
		return health, err
	}
	return health, nil
}

// CreateBlock sends an RPC request to `engine_createBlock` for a node
// sealing blocks manually. An empty parent hash builds on the best block.
func CreateBlock(ctx context.Context, address string, createEmpty, finalize bool,
	parentHash string) (block CreatedBlock, err error) {
	var parent interface{}
	if parentHash != "" {
		parent = parentHash
	}

	err = call(ctx, address, "engine_createBlock", &block, createEmpty, finalize, parent)
	if err != nil {
		return block, err
	}
	return block, nil
}

// FinalizeBlock sends an RPC request to `engine_finalizeBlock`.
func FinalizeBlock(ctx context.Context, address, blockHash string) (err error) {
	var finalized bool
	err = call(ctx, address, "engine_finalizeBlock", &finalized, blockHash, nil)
	if err != nil {
		return err
	}

	if !finalized {
		return fmt.Errorf("block %s was not finalized", blockHash)
	}
	return nil
}

// AccountNextIndex sends an RPC request to `system_accountNextIndex`
// which includes the transactions of the pool in the nonce returned.
func AccountNextIndex(ctx context.Context, address, account string) (
	nonce uint64, err error) {
	err = call(ctx, address, "system_accountNextIndex", &nonce, account)
	if err != nil {
		return 0, err
	}
	return nonce, nil
}

// SubmitExtrinsic sends an RPC request to `author_submitExtrinsic`
// and returns the extrinsic hash.
func SubmitExtrinsic(ctx context.Context, address, extrinsicHex string) (
	hash string, err error) {
	err = call(ctx, address, "author_submitExtrinsic", &hash, extrinsicHex)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// GetBlockExtrinsics sends an RPC request to `chain_getBlock` and
// returns the hex encoded extrinsics of the block, in block order.
func GetBlockExtrinsics(ctx context.Context, address, blockHash string) (
	extrinsics []string, err error) {
	var block SignedBlock
	err = call(ctx, address, "chain_getBlock", &block, blockHash)
	if err != nil {
		return nil, err
	}
	return block.Block.Extrinsics, nil
}
