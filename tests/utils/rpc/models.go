// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import "encoding/json"

// ServerResponse wraps the RPC response
type ServerResponse struct {
	// JSON-RPC Version
	Version string `json:"jsonrpc"`
	// Resulting values
	Result json.RawMessage `json:"result"`
	// Any generated errors
	Error *Error `json:"error"`
	// Request id
	ID *json.RawMessage `json:"id"`
}

// Error is a struct that holds the error message and the error code for a error
type Error struct {
	Message   string      `json:"message"`
	ErrorCode int         `json:"code"`
	Data      interface{} `json:"data"`
}

// Health is the result of system_health.
type Health struct {
	Peers           uint `json:"peers"`
	IsSyncing       bool `json:"isSyncing"`
	ShouldHavePeers bool `json:"shouldHavePeers"`
}

// CreatedBlock is the result of engine_createBlock.
type CreatedBlock struct {
	Hash string `json:"hash"`
	// Aux holds the import details of the block, whose fields
	// vary between node versions.
	Aux json.RawMessage `json:"aux"`
	// ProofSize is the storage proof size of the block,
	// only returned by nodes recording proofs.
	ProofSize *uint64 `json:"proof_size"`
}

// SignedBlock is the result of chain_getBlock.
type SignedBlock struct {
	Block struct {
		Header     json.RawMessage `json:"header"`
		Extrinsics []string        `json:"extrinsics"`
	} `json:"block"`
	Justifications json.RawMessage `json:"justifications"`
}
