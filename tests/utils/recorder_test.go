// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recorder(t *testing.T) {
	t.Parallel()

	recorder, err := NewRecorder(t.TempDir())
	require.NoError(t, err)

	_, err = uuid.Parse(recorder.RunID())
	assert.NoError(t, err)

	type block struct {
		Hash string `json:"hash"`
	}

	err = recorder.Record("blocks", block{Hash: "0x01"})
	require.NoError(t, err)
	err = recorder.Record("blocks", block{Hash: "0x02"})
	require.NoError(t, err)

	assert.Equal(t, 2, recorder.Count("blocks"))
	assert.Equal(t, 0, recorder.Count("extrinsics"))

	records, err := recorder.Records("blocks")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"hash":"0x01"}`, string(records[0]))
	assert.JSONEq(t, `{"hash":"0x02"}`, string(records[1]))
}

func Test_IsDevMode(t *testing.T) {
	mode := MODE
	t.Cleanup(func() { MODE = mode })

	MODE = "dev"
	assert.True(t, IsDevMode())

	MODE = "rpc"
	assert.False(t, IsDevMode())
}
