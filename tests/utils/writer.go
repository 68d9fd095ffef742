// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"io"
	"strings"
	"testing"
)

// TestWriter is a writer implementing `io.Writer`
// using the Go test logger `t.Log()`.
type TestWriter struct {
	t testing.TB
}

func (tw *TestWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	line := strings.TrimSuffix(string(p), "\n")
	tw.t.Log(line)
	return len(p), nil
}

// NewTestWriter creates a new writer which uses
// the Go test logger to write out.
func NewTestWriter(t testing.TB) (writer io.Writer) {
	return &TestWriter{
		t: t,
	}
}
