// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ChainSafe/moonsuite/lib/common"
	"github.com/ChainSafe/moonsuite/lib/events"
	"github.com/ChainSafe/moonsuite/lib/extrinsic"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var (
	ErrExtrinsicNotIncluded = errors.New("extrinsic not included in block")
	ErrExtrinsicFailed      = errors.New("extrinsic dispatch failed")
	ErrNoDispatchOutcome    = errors.New("no dispatch outcome event found")
)

// BlockCreation is the result of creating a block.
type BlockCreation struct {
	Hash string `json:"hash"`
	// Result is the result of the extrinsic submitted
	// for the block, and is nil for empty blocks.
	Result *ExtrinsicResult `json:"result,omitempty"`
}

// ExtrinsicResult is the outcome of an extrinsic included in a block.
type ExtrinsicResult struct {
	Call       string          `json:"call"`
	Index      uint32          `json:"index"`
	Hash       string          `json:"hash"`
	Events     []events.Record `json:"events"`
	Successful bool            `json:"successful"`
	// Error is the dispatch error of a failed extrinsic.
	Error string `json:"error,omitempty"`
}

// CreateBlock signs and submits the call given, then creates a block
// including it and returns the events the extrinsic emitted, in order.
// A nil call creates an empty block. A failed dispatch returns an error
// wrapping ErrExtrinsicFailed, unless the AllowFailures option is set.
func (c *Context) CreateBlock(ctx context.Context, call *types.Call,
	options ...BlockOption) (creation *BlockCreation, err error) {
	settings := blockSettings{signer: c.signer}
	for _, option := range options {
		option(&settings)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	start := time.Now()

	var submitted string
	if call != nil {
		submitted, err = c.submit(ctx, *call, settings.signer)
		if err != nil {
			return nil, err
		}
	}

	created, err := c.engine.CreateBlock(ctx, true, settings.finalize, settings.parentHash)
	if err != nil {
		return nil, fmt.Errorf("cannot create block: %w", err)
	}
	c.metrics.observeBlock(start)

	creation = &BlockCreation{Hash: created.Hash}
	if call == nil {
		logger.Debugf("created empty block %s", created.Hash)
		c.record(creation)
		return creation, nil
	}

	creation.Result, err = c.extrinsicResult(ctx, created.Hash, submitted)
	if err != nil {
		return nil, err
	}
	creation.Result.Call = callName(c.metadata, *call)
	c.record(creation)

	if creation.Result.Successful {
		logger.Debugf("%s succeeded in block %s", creation.Result.Call, creation.Hash)
		return creation, nil
	}

	c.metrics.observeFailure(creation.Result.Call)
	logger.Debugf("%s failed in block %s: %s",
		creation.Result.Call, creation.Hash, creation.Result.Error)

	if !settings.allowFailures {
		return creation, fmt.Errorf("%w: %s: %s",
			ErrExtrinsicFailed, creation.Result.Call, creation.Result.Error)
	}
	return creation, nil
}

// FinalizeBlock finalizes the block with the hash given.
func (c *Context) FinalizeBlock(ctx context.Context, blockHash string) error {
	err := c.engine.FinalizeBlock(ctx, blockHash)
	if err != nil {
		return fmt.Errorf("cannot finalize block: %w", err)
	}
	return nil
}

// submit signs the call with the next nonce of the signer and submits
// it to the transaction pool. It returns the hex encoded extrinsic.
func (c *Context) submit(ctx context.Context, call types.Call,
	signer extrinsic.Signer) (extrinsicHex string, err error) {
	accountID := signer.AccountID()
	nonce, err := c.engine.AccountNextIndex(ctx, common.BytesToHex(accountID[:]))
	if err != nil {
		return "", fmt.Errorf("cannot get account nonce: %w", err)
	}

	options := c.options
	options.Nonce = nonce

	signed, err := extrinsic.Sign(call, c.extensions, options, signer)
	if err != nil {
		return "", fmt.Errorf("cannot sign extrinsic: %w", err)
	}

	extrinsicHex, err = signed.Hex()
	if err != nil {
		return "", fmt.Errorf("cannot encode extrinsic: %w", err)
	}

	hash, err := c.engine.SubmitExtrinsic(ctx, extrinsicHex)
	if err != nil {
		return "", fmt.Errorf("cannot submit extrinsic: %w", err)
	}
	logger.Tracef("submitted extrinsic %s with nonce %d", hash, nonce)

	return extrinsicHex, nil
}

// extrinsicResult finds the extrinsic submitted in the block
// and collects the events emitted while applying it.
func (c *Context) extrinsicResult(ctx context.Context, blockHash,
	submitted string) (result *ExtrinsicResult, err error) {
	extrinsics, err := c.engine.BlockExtrinsics(ctx, blockHash)
	if err != nil {
		return nil, fmt.Errorf("cannot get block extrinsics: %w", err)
	}

	index := -1
	for i, extrinsicHex := range extrinsics {
		if strings.EqualFold(extrinsicHex, submitted) {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, fmt.Errorf("%w: block %s", ErrExtrinsicNotIncluded, blockHash)
	}

	hash, err := types.NewHashFromHexString(blockHash)
	if err != nil {
		return nil, fmt.Errorf("cannot parse block hash: %w", err)
	}

	records, err := c.chain.Events(hash)
	if err != nil {
		return nil, fmt.Errorf("cannot get block events: %w", err)
	}

	extrinsicHash, err := common.Blake2bHash(common.MustHexToBytes(submitted))
	if err != nil {
		return nil, fmt.Errorf("cannot hash extrinsic: %w", err)
	}

	result = &ExtrinsicResult{
		Index:  uint32(index),
		Hash:   common.BytesToHex(extrinsicHash[:]),
		Events: events.ForExtrinsic(records, uint32(index)),
	}

	successful, ok := events.Outcome(result.Events)
	if !ok {
		return nil, fmt.Errorf("%w: extrinsic %d of block %s",
			ErrNoDispatchOutcome, index, blockHash)
	}
	result.Successful = successful

	if !successful {
		failed, _ := events.Find(result.Events, events.SystemExtrinsicFailed)
		result.Error = dispatchError(failed)
	}

	return result, nil
}

// dispatchError returns the dispatch error of a System.ExtrinsicFailed
// record. Decoded field names are prefixed with their type path.
func dispatchError(record events.Record) string {
	for _, field := range record.Fields {
		if strings.HasSuffix(field.Name, "dispatch_error") {
			return fmt.Sprint(field.Value)
		}
	}
	return "unknown dispatch error"
}

func (c *Context) record(creation *BlockCreation) {
	if c.recorder == nil {
		return
	}

	err := c.recorder.Record("blocks", creation)
	if err != nil {
		logger.Warnf("cannot record block %s: %s", creation.Hash, err)
	}
}

// callName returns the Pallet.call name of the call
// using the runtime metadata given.
func callName(meta *types.Metadata, call types.Call) string {
	fallback := fmt.Sprintf("Call(%d, %d)", call.CallIndex.SectionIndex, call.CallIndex.MethodIndex)
	if meta == nil || meta.Version != 14 {
		return fallback
	}

	for _, pallet := range meta.AsMetadataV14.Pallets {
		if !pallet.HasCalls || uint8(pallet.Index) != call.CallIndex.SectionIndex {
			continue
		}

		callsType := pallet.Calls.Type.Int64()
		for _, portableType := range meta.AsMetadataV14.Lookup.Types {
			if portableType.ID.Int64() != callsType || !portableType.Type.Def.IsVariant {
				continue
			}

			for _, variant := range portableType.Type.Def.Variant.Variants {
				if uint8(variant.Index) == call.CallIndex.MethodIndex {
					return string(pallet.Name) + "." + string(variant.Name)
				}
			}
		}
		return string(pallet.Name) + fmt.Sprintf(".Call(%d)", call.CallIndex.MethodIndex)
	}

	return fallback
}
