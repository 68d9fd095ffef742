// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"bytes"
	"io"
)

// prefixedWriter prefixes each line written with the prefix.
// Lines split across writes are prefixed once.
type prefixedWriter struct {
	prefix  []byte
	writer  io.Writer
	midLine bool
}

func (w *prefixedWriter) Write(p []byte) (n int, err error) {
	toWrite := make([]byte, 0, len(p)+len(w.prefix))
	remaining := p
	for len(remaining) > 0 {
		if !w.midLine {
			toWrite = append(toWrite, w.prefix...)
		}

		i := bytes.IndexByte(remaining, '\n')
		if i == -1 {
			toWrite = append(toWrite, remaining...)
			w.midLine = true
			break
		}

		toWrite = append(toWrite, remaining[:i+1]...)
		remaining = remaining[i+1:]
		w.midLine = false
	}

	_, err = w.writer.Write(toWrite)
	if err != nil {
		return 0, err
	}

	// n has to match the length of p
	return len(p), nil
}
