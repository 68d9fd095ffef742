// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package author holds the suites exercising the author mapping pallet.
package author

import (
	"context"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/lib/authormapping"
	"github.com/ChainSafe/moonsuite/lib/events"
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
	"github.com/ChainSafe/moonsuite/tests/utils/suite"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BlockClient reads the chain state and creates blocks on a dev node.
type BlockClient interface {
	authormapping.StorageReader
	Metadata() *types.Metadata
	CreateBlock(ctx context.Context, call *types.Call,
		options ...dev.BlockOption) (*dev.BlockCreation, error)
}

// UnregisteredClearLayout is the event layout of a failed clear_association
// submitted by an account with no prior balance movement on a fresh dev node.
// The count is not enforced: index 6 is asserted while 6 events are expected.
var UnregisteredClearLayout = events.Layout{
	Count:  6,
	Strict: false,
	Positions: []events.Expectation{
		{Index: 2, Kind: events.SystemNewAccount},
		{Index: 3, Kind: events.BalancesEndowed},
		{Index: 4, Kind: events.TreasuryDeposit},
		{Index: 6, Kind: events.SystemExtrinsicFailed},
	},
}

// UnregisteredClear checks an author with no association cannot clear it.
var UnregisteredClear = suite.Suite{
	ID:         "D0213",
	Title:      "Author Mapping - unregistered author cannot clear association",
	Foundation: suite.Dev,
	TestCases: func(cases *suite.Cases) {
		cases.It(suite.Case{
			ID:    "",
			Title: "should not succeed in clearing an association for an unregistered author",
			Test: func(t suite.T, env suite.Env) {
				clearUnregistered(t, env.Ctx, env.Dev, env.Log)
			},
		})
	},
}

func init() {
	suite.MustRegister(UnregisteredClear)
}

func clearUnregistered(t suite.T, ctx context.Context, client BlockClient, logger *log.Logger) {
	t.Helper()

	sessionAddress, err := keyring.ParseSessionAddress(keyring.BaltatharSessionAddress)
	require.NoError(t, err)

	info, err := authormapping.GetMappingInfo(ctx, client, sessionAddress)
	require.NoError(t, err)
	require.Nil(t, info, "session address already mapped")

	call, err := authormapping.ClearAssociation(client.Metadata(), sessionAddress)
	require.NoError(t, err)

	creation, err := client.CreateBlock(ctx, &call, dev.AllowFailures())
	require.NoError(t, err)
	require.NotNil(t, creation.Result)

	drift, err := UnregisteredClearLayout.Check(creation.Result.Events)
	if drift != nil && logger != nil {
		logger.Warnf("%s in block %s", drift, creation.Hash)
	}
	require.NoError(t, err)

	assert.False(t, creation.Result.Successful)
	_, cleared := events.Find(creation.Result.Events, events.AuthorMappingKeysRemoved)
	assert.False(t, cleared)
}
