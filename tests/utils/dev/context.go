// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/moonsuite/config"
	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/lib/extrinsic"
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/ChainSafe/moonsuite/tests/utils/rpc"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dev"))

// Context is the context of a dev foundation: a manually sealing node
// whose blocks are created on demand with at most one signed extrinsic.
type Context struct {
	engine   Engine
	chain    Chain
	signer   extrinsic.Signer
	keyring  *keyring.Keyring
	metrics  *Metrics
	recorder Recorder

	metadata   *types.Metadata
	extensions []string
	options    extrinsic.Options

	// mutex serialises block creations so nonces are not reused.
	mutex sync.Mutex
	close func()
}

// Connect connects to the node at the endpoints configured and
// returns a context signing with the configured dev account.
func Connect(ctx context.Context, cfg config.Config, options ...Option) (*Context, error) {
	devKeyring, err := keyring.NewKeyring(cfg.Account.Mnemonic)
	if err != nil {
		return nil, fmt.Errorf("cannot create keyring: %w", err)
	}

	signer, err := devKeyring.AccountByName(cfg.Account.Signer)
	if err != nil {
		return nil, fmt.Errorf("cannot find signer: %w", err)
	}

	chain, err := newSubstrateChain(cfg.Endpoint.WS)
	if err != nil {
		return nil, err
	}

	options = append([]Option{WithKeyring(devKeyring)}, options...)
	devContext, err := New(ctx, rpc.NewClient(cfg.Endpoint.HTTP), chain, signer, options...)
	if err != nil {
		chain.Close()
		return nil, err
	}
	devContext.close = chain.Close

	logger.Infof("connected to %s, signing as %s", cfg.Endpoint.WS, signer)
	return devContext, nil
}

// New creates a context from the engine and chain given, reading
// the runtime metadata and the values committed to in signatures.
func New(ctx context.Context, engine Engine, chain Chain, signer extrinsic.Signer,
	options ...Option) (*Context, error) {
	c := &Context{
		engine: engine,
		chain:  chain,
		signer: signer,
	}
	for _, option := range options {
		option(c)
	}

	err := c.refresh(ctx)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// refresh reads the metadata, the runtime version and the genesis hash.
func (c *Context) refresh(ctx context.Context) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.metadata, err = c.chain.Metadata()
	if err != nil {
		return fmt.Errorf("cannot get metadata: %w", err)
	}

	c.extensions, err = extrinsic.Extensions(c.metadata)
	if err != nil {
		return fmt.Errorf("cannot read signed extensions: %w", err)
	}

	runtimeVersion, err := c.chain.RuntimeVersion()
	if err != nil {
		return fmt.Errorf("cannot get runtime version: %w", err)
	}

	genesisHash, err := c.chain.GenesisHash()
	if err != nil {
		return fmt.Errorf("cannot get genesis hash: %w", err)
	}

	c.options = extrinsic.Options{
		SpecVersion:        uint32(runtimeVersion.SpecVersion),
		TransactionVersion: uint32(runtimeVersion.TransactionVersion),
		GenesisHash:        genesisHash,
	}
	logger.Debugf("runtime %s spec version %d", runtimeVersion.SpecName, c.options.SpecVersion)
	return nil
}

// Metadata returns the runtime metadata.
func (c *Context) Metadata() *types.Metadata { return c.metadata }

// Keyring returns the dev keyring, which is nil if the
// context was not created with one.
func (c *Context) Keyring() *keyring.Keyring { return c.keyring }

// Signer returns the default signer of extrinsics.
func (c *Context) Signer() extrinsic.Signer { return c.signer }

// StorageRaw returns the raw storage value at the key given,
// at the best block. It returns empty data if no value is stored.
func (c *Context) StorageRaw(ctx context.Context, key []byte) (data []byte, err error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return c.chain.StorageRaw(key)
}

// Close closes the connection to the node, if any.
func (c *Context) Close() {
	if c.close != nil {
		c.close()
	}
}
