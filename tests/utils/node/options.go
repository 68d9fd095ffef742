// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import "io"

// Option is an option to use with the `New` constructor.
type Option func(node *Node)

// SetBinary sets the binary path for the node.
func SetBinary(binPath string) Option {
	return func(node *Node) {
		node.binPath = binPath
	}
}

// SetBasePath sets the base path for the node.
func SetBasePath(basePath string) Option {
	return func(node *Node) {
		node.basePath = basePath
	}
}

// SetIndex sets the index for the node.
func SetIndex(index int) Option {
	return func(node *Node) {
		node.index = intPtr(index)
	}
}

// SetWriter sets the writer for the node.
func SetWriter(writer io.Writer) Option {
	return func(node *Node) {
		node.writer = writer
	}
}
