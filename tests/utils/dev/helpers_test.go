// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"bytes"
	"context"
	"testing"

	"github.com/ChainSafe/moonsuite/lib/common"
	"github.com/ChainSafe/moonsuite/lib/events"
	"github.com/ChainSafe/moonsuite/lib/keyring"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const (
	testBlockHash  = "0x1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f809"
	timestampSetEx = "0x280403000b70f5cdb39201"
)

func testMetadata() *types.Metadata {
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

	for _, identifier := range []string{
		"CheckNonZeroSender", "CheckSpecVersion", "CheckTxVersion", "CheckGenesis",
		"CheckMortality", "CheckNonce", "CheckWeight", "ChargeTransactionPayment",
		"CheckMetadataHash",
	} {
		meta.AsMetadataV14.Extrinsic.SignedExtensions = append(
			meta.AsMetadataV14.Extrinsic.SignedExtensions,
			types.SignedExtensionMetadataV14{Identifier: types.Text(identifier)})
	}

	return meta
}

func clearAssociationCall() *types.Call {
	return &types.Call{
		CallIndex: types.CallIndex{SectionIndex: 30, MethodIndex: 1},
		Args:      common.MustHexToBytes(keyring.BaltatharSessionAddress),
	}
}

func testKeyring(t *testing.T) *keyring.Keyring {
	t.Helper()
	kr, err := keyring.NewKeyring(keyring.DevMnemonic)
	require.NoError(t, err)
	return kr
}

func addressHex(account keyring.Account) string {
	id := account.AccountID()
	return common.BytesToHex(id[:])
}

// expectChainInfo sets the expectations of reading the
// runtime information when creating a context.
func expectChainInfo(chain *MockChain) {
	chain.EXPECT().Metadata().Return(testMetadata(), nil)
	chain.EXPECT().RuntimeVersion().Return(&types.RuntimeVersion{
		SpecName:           "moonbase",
		SpecVersion:        3400,
		TransactionVersion: 3,
	}, nil)
	chain.EXPECT().GenesisHash().Return(types.NewHash(bytes.Repeat([]byte{0x01}, 32)), nil)
}

func newTestContext(t *testing.T, ctrl *gomock.Controller, options ...Option) (
	*Context, *MockEngine, *MockChain) {
	t.Helper()

	engine := NewMockEngine(ctrl)
	chain := NewMockChain(ctrl)
	expectChainInfo(chain)

	devContext, err := New(context.Background(), engine, chain, testKeyring(t).Alith, options...)
	require.NoError(t, err)

	return devContext, engine, chain
}

// blockEvents returns the events of a block whose extrinsic 0 is the
// timestamp inherent and extrinsic 1 emitted the events given.
func blockEvents(extrinsicEvents ...events.Record) []events.Record {
	records := []events.Record{
		{Name: "ParachainSystem.ValidationFunctionStored", Phase: events.Phase{Initialization: true}},
		{Name: "System.ExtrinsicSuccess", Phase: events.Phase{ApplyExtrinsic: true, Index: 0}},
	}
	for _, record := range extrinsicEvents {
		record.Phase = events.Phase{ApplyExtrinsic: true, Index: 1}
		records = append(records, record)
	}
	return append(records, events.Record{
		Name:  "AuthorInherent.Noted",
		Phase: events.Phase{Finalization: true},
	})
}

func failedClearAssociationEvents() []events.Record {
	return []events.Record{
		{Name: "Balances.Withdraw"},
		{Name: "Balances.Deposit"},
		{Name: "System.NewAccount"},
		{Name: "Balances.Endowed"},
		{Name: "Treasury.Deposit"},
		{Name: "TransactionPayment.TransactionFeePaid"},
		{Name: "System.ExtrinsicFailed", Fields: []events.Field{
			{Name: "sp_runtime.DispatchError.dispatch_error", Value: "Module(AuthorMapping::AssociationNotFound)"},
			{Name: "dispatch_info", Value: "weight"},
		}},
	}
}
