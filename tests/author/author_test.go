// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package author

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/lib/authormapping"
	"github.com/ChainSafe/moonsuite/lib/events"
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
	"github.com/ChainSafe/moonsuite/tests/utils/suite"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorMappingMetadata() *types.Metadata {
	meta := &types.Metadata{
		Version: 14,
	}

	callsType := types.Si1Type{
		Def: types.Si1TypeDef{
			IsVariant: true,
			Variant: types.Si1TypeDefVariant{
				Variants: []types.Si1Variant{
					{Name: "add_association", Index: 0},
					{Name: "clear_association", Index: 1},
				},
			},
		},
	}
	meta.AsMetadataV14.Lookup.Types = []types.PortableTypeV14{{
		ID:   types.NewSi1LookupTypeIDFromUInt(5),
		Type: callsType,
	}}
	meta.AsMetadataV14.EfficientLookup = map[int64]*types.Si1Type{5: &callsType}

	meta.AsMetadataV14.Pallets = []types.PalletMetadataV14{{
		Name:     "AuthorMapping",
		HasCalls: true,
		Calls:    types.FunctionMetadataV14{Type: types.NewSi1LookupTypeIDFromUInt(5)},
		Index:    30,
	}}

	return meta
}

func extrinsicEvents(names ...string) (records []events.Record) {
	for _, name := range names {
		records = append(records, events.Record{
			Name:  name,
			Phase: events.Phase{ApplyExtrinsic: true, Index: 1},
		})
	}
	return records
}

func failedClearEvents() []events.Record {
	return extrinsicEvents(
		"Balances.Withdraw",
		"Balances.Deposit",
		"System.NewAccount",
		"Balances.Endowed",
		"Treasury.Deposit",
		"TransactionPayment.TransactionFeePaid",
		"System.ExtrinsicFailed",
	)
}

func mappedRegistration(t *testing.T) []byte {
	t.Helper()

	sessionAddress, err := keyring.ParseSessionAddress(keyring.BaltatharSessionAddress)
	require.NoError(t, err)

	registration := struct {
		Account [20]byte
		Deposit types.U128
		Keys    [32]byte
	}{
		Account: [20]byte{0xf2, 0x4f, 0xf3},
		Deposit: types.NewU128(*big.NewInt(1000)),
		Keys:    sessionAddress,
	}
	data, err := codec.Encode(registration)
	require.NoError(t, err)
	return data
}

func Test_UnregisteredClear_definition(t *testing.T) {
	t.Parallel()

	registered, err := suite.Lookup("D0213")
	require.NoError(t, err)

	assert.Equal(t, "Author Mapping - unregistered author cannot clear association", registered.Title)
	assert.Equal(t, suite.Dev, registered.Foundation)

	cases := registered.Cases()
	require.Len(t, cases, 1)
	assert.Equal(t, "D0213", registered.FullID(cases[0]))
	assert.Equal(t, "should not succeed in clearing an association for an unregistered author",
		cases[0].Title)
}

func Test_UnregisteredClearLayout(t *testing.T) {
	t.Parallel()

	drift, err := UnregisteredClearLayout.Check(failedClearEvents())
	require.NoError(t, err)
	assert.Equal(t, &events.Drift{Expected: 6, Actual: 7}, drift)

	strict := UnregisteredClearLayout
	strict.Strict = true
	_, err = strict.Check(failedClearEvents())
	assert.ErrorIs(t, err, events.ErrEventCount)
}

func Test_clearUnregistered(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		storageData []byte
		storageErr  error
		createBlock bool
		creation    *dev.BlockCreation
		createErr   error
		passed      bool
		logged      string
	}{
		"dispatch_failed": {
			createBlock: true,
			creation: &dev.BlockCreation{
				Hash:   "0x01",
				Result: &dev.ExtrinsicResult{Events: failedClearEvents()},
			},
			passed: true,
			logged: "expected 6 events but got 7 in block 0x01",
		},
		"already_mapped": {
			storageData: mappedRegistration(t),
		},
		"storage_error": {
			storageErr: errTest,
		},
		"create_block_error": {
			createBlock: true,
			createErr:   errTest,
		},
		"dispatch_succeeded": {
			createBlock: true,
			creation: &dev.BlockCreation{
				Hash: "0x02",
				Result: &dev.ExtrinsicResult{
					Events:     failedClearEvents(),
					Successful: true,
				},
			},
		},
		"association_cleared": {
			createBlock: true,
			creation: &dev.BlockCreation{
				Hash: "0x03",
				Result: &dev.ExtrinsicResult{Events: append(failedClearEvents(),
					extrinsicEvents("AuthorMapping.KeysRemoved")...)},
			},
		},
		"events_missing": {
			createBlock: true,
			creation: &dev.BlockCreation{
				Hash: "0x04",
				Result: &dev.ExtrinsicResult{Events: extrinsicEvents(
					"Balances.Withdraw", "System.ExtrinsicFailed")},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			client := NewMockBlockClient(ctrl)
			client.EXPECT().StorageRaw(gomock.Any(), gomock.Any()).
				Return(testCase.storageData, testCase.storageErr)
			if testCase.createBlock {
				client.EXPECT().Metadata().Return(authorMappingMetadata())
				client.EXPECT().CreateBlock(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, call *types.Call,
						_ ...dev.BlockOption) (*dev.BlockCreation, error) {
						assert.Equal(t, types.CallIndex{SectionIndex: 30, MethodIndex: 1}, call.CallIndex)
						return testCase.creation, testCase.createErr
					})
			}

			logBuffer := bytes.NewBuffer(nil)
			logger := log.New(log.SetWriter(logBuffer))

			s := suite.Suite{
				ID:         "A0001",
				Foundation: suite.Dev,
				TestCases: func(cases *suite.Cases) {
					cases.It(suite.Case{Test: func(t suite.T, env suite.Env) {
						clearUnregistered(t, context.Background(), client, env.Log)
					}})
				},
			}

			report := suite.RunCases(s, suite.Env{Log: logger})

			assert.Equal(t, testCase.passed, report.Passed(), report.String())
			assert.Contains(t, logBuffer.String(), testCase.logged)
		})
	}
}

func Test_clearUnregistered_storageKey(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	sessionAddress, err := keyring.ParseSessionAddress(keyring.BaltatharSessionAddress)
	require.NoError(t, err)
	key, err := authormapping.StorageKey(sessionAddress)
	require.NoError(t, err)

	client := NewMockBlockClient(ctrl)
	client.EXPECT().StorageRaw(gomock.Any(), key).Return([]byte{0x00}, nil)

	s := suite.Suite{
		ID:         "A0002",
		Foundation: suite.Dev,
		TestCases: func(cases *suite.Cases) {
			cases.It(suite.Case{Test: func(t suite.T, env suite.Env) {
				clearUnregistered(t, context.Background(), client, nil)
			}})
		},
	}

	report := suite.RunCases(s, suite.Env{})

	assert.False(t, report.Passed())
}
