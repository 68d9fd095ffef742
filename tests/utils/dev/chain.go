// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"fmt"

	"github.com/ChainSafe/moonsuite/lib/events"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/retriever"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/state"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// substrateChain implements Chain using the substrate RPC client
// and decodes events using the metadata type registry.
type substrateChain struct {
	api       *gsrpc.SubstrateAPI
	retriever retriever.EventRetriever
}

func newSubstrateChain(endpoint string) (*substrateChain, error) {
	api, err := gsrpc.NewSubstrateAPI(endpoint)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", endpoint, err)
	}

	eventRetriever, err := retriever.NewDefaultEventRetriever(
		state.NewEventProvider(api.RPC.State), api.RPC.State)
	if err != nil {
		api.Client.Close()
		return nil, fmt.Errorf("cannot create event retriever: %w", err)
	}

	return &substrateChain{
		api:       api,
		retriever: eventRetriever,
	}, nil
}

func (c *substrateChain) Metadata() (*types.Metadata, error) {
	return c.api.RPC.State.GetMetadataLatest()
}

func (c *substrateChain) RuntimeVersion() (*types.RuntimeVersion, error) {
	return c.api.RPC.State.GetRuntimeVersionLatest()
}

func (c *substrateChain) GenesisHash() (types.Hash, error) {
	return c.api.RPC.Chain.GetBlockHash(0)
}

func (c *substrateChain) StorageRaw(key []byte) ([]byte, error) {
	data, err := c.api.RPC.State.GetStorageRawLatest(types.NewStorageKey(key))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return *data, nil
}

func (c *substrateChain) Events(blockHash types.Hash) ([]events.Record, error) {
	parsed, err := c.retriever.GetEvents(blockHash)
	if err != nil {
		return nil, err
	}
	return toRecords(parsed), nil
}

func (c *substrateChain) Close() {
	c.api.Client.Close()
}

func toRecords(parsed []*parser.Event) (records []events.Record) {
	records = make([]events.Record, len(parsed))
	for i, event := range parsed {
		records[i] = events.Record{
			Name:   event.Name,
			Fields: make([]events.Field, len(event.Fields)),
		}

		if event.Phase != nil {
			records[i].Phase = events.Phase{
				ApplyExtrinsic: event.Phase.IsApplyExtrinsic,
				Index:          event.Phase.AsApplyExtrinsic,
				Finalization:   event.Phase.IsFinalization,
				Initialization: event.Phase.IsInitialization,
			}
		}

		for j, field := range event.Fields {
			records[i].Fields[j] = events.Field{
				Name:  field.Name,
				Value: field.Value,
			}
		}
	}
	return records
}
