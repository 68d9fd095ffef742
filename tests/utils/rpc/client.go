// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import "context"

// Client calls the RPC methods of a single node endpoint.
type Client struct {
	endpoint string
}

// NewClient returns a client for the HTTP endpoint given.
func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint}
}

// Endpoint returns the HTTP endpoint of the client.
func (c *Client) Endpoint() string { return c.endpoint }

// Health calls system_health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	return GetHealth(ctx, c.endpoint)
}

// CreateBlock calls engine_createBlock.
func (c *Client) CreateBlock(ctx context.Context, createEmpty, finalize bool,
	parentHash string) (CreatedBlock, error) {
	return CreateBlock(ctx, c.endpoint, createEmpty, finalize, parentHash)
}

// FinalizeBlock calls engine_finalizeBlock.
func (c *Client) FinalizeBlock(ctx context.Context, blockHash string) error {
	return FinalizeBlock(ctx, c.endpoint, blockHash)
}

// AccountNextIndex calls system_accountNextIndex.
func (c *Client) AccountNextIndex(ctx context.Context, account string) (uint64, error) {
	return AccountNextIndex(ctx, c.endpoint, account)
}

// SubmitExtrinsic calls author_submitExtrinsic.
func (c *Client) SubmitExtrinsic(ctx context.Context, extrinsicHex string) (string, error) {
	return SubmitExtrinsic(ctx, c.endpoint, extrinsicHex)
}

// BlockExtrinsics calls chain_getBlock.
func (c *Client) BlockExtrinsics(ctx context.Context, blockHash string) ([]string, error) {
	return GetBlockExtrinsics(ctx, c.endpoint, blockHash)
}
