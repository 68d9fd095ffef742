// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"github.com/ChainSafe/moonsuite/lib/extrinsic"
	"github.com/ChainSafe/moonsuite/lib/keyring"
)

// Option is an option to use with the `New` constructor.
type Option func(c *Context)

// WithMetrics sets the metrics updated on each block creation.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Context) {
		c.metrics = metrics
	}
}

// WithRecorder sets the recorder storing each block creation.
func WithRecorder(recorder Recorder) Option {
	return func(c *Context) {
		c.recorder = recorder
	}
}

// WithKeyring sets the dev keyring of the context.
func WithKeyring(keyring *keyring.Keyring) Option {
	return func(c *Context) {
		c.keyring = keyring
	}
}

type blockSettings struct {
	allowFailures bool
	finalize      bool
	signer        extrinsic.Signer
	parentHash    string
}

// BlockOption is an option to use with `CreateBlock`.
type BlockOption func(settings *blockSettings)

// AllowFailures accepts a failed dispatch of the extrinsic,
// which is then reported in the result instead of as an error.
func AllowFailures() BlockOption {
	return func(settings *blockSettings) {
		settings.allowFailures = true
	}
}

// Finalize finalizes the block created.
func Finalize() BlockOption {
	return func(settings *blockSettings) {
		settings.finalize = true
	}
}

// Signer signs the extrinsic with the signer given
// instead of the context signer.
func Signer(signer extrinsic.Signer) BlockOption {
	return func(settings *blockSettings) {
		settings.signer = signer
	}
}

// ParentHash builds the block on the parent block hash given
// instead of the best block.
func ParentHash(hash string) BlockOption {
	return func(settings *blockSettings) {
		settings.parentHash = hash
	}
}
