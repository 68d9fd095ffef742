// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authormapping

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	palletName  = "AuthorMapping"
	storageName = "MappingWithDeposit"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "authormapping"))

var ErrDecodeRegistration = errors.New("cannot decode registration info")

// StorageReader reads raw storage values at the best block.
// Empty data means no value is stored at the key.
type StorageReader interface {
	StorageRaw(ctx context.Context, key []byte) (data []byte, err error)
}

// MappingInfo is the account a session address is associated
// with and the deposit reserved for the association.
type MappingInfo struct {
	Account ethcommon.Address
	Deposit *big.Int
}

func (m MappingInfo) String() string {
	return fmt.Sprintf("account %s with deposit %s", m.Account.Hex(), m.Deposit)
}

// registrationInfo is the SCALE layout of a MappingWithDeposit value.
type registrationInfo struct {
	Account [20]byte
	Deposit types.U128
	Keys    [32]byte
}

// StorageKey returns the MappingWithDeposit storage key
// of the session address given.
func StorageKey(sessionAddress [32]byte) (key []byte, err error) {
	palletHash, err := common.Twox128Hash([]byte(palletName))
	if err != nil {
		return nil, fmt.Errorf("hashing pallet name: %w", err)
	}

	storageHash, err := common.Twox128Hash([]byte(storageName))
	if err != nil {
		return nil, fmt.Errorf("hashing storage name: %w", err)
	}

	addressHash, err := common.Blake2b128Concat(sessionAddress[:])
	if err != nil {
		return nil, fmt.Errorf("hashing session address: %w", err)
	}

	key = make([]byte, 0, len(palletHash)+len(storageHash)+len(addressHash))
	key = append(key, palletHash...)
	key = append(key, storageHash...)
	key = append(key, addressHash...)
	return key, nil
}

// GetMappingInfo returns the mapping of the session address given,
// or nil if the session address is not associated with any account.
func GetMappingInfo(ctx context.Context, reader StorageReader,
	sessionAddress [32]byte) (info *MappingInfo, err error) {
	key, err := StorageKey(sessionAddress)
	if err != nil {
		return nil, fmt.Errorf("making storage key: %w", err)
	}

	data, err := reader.StorageRaw(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading storage: %w", err)
	}

	if len(data) == 0 {
		logger.Debugf("no mapping for session address %s", common.BytesToHex(sessionAddress[:]))
		return nil, nil //nolint:nilnil
	}

	var registration registrationInfo
	err = codec.Decode(data, &registration)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeRegistration, err)
	}

	info = &MappingInfo{
		Account: registration.Account,
		Deposit: registration.Deposit.Int,
	}
	logger.Debugf("session address %s mapped to %s",
		common.BytesToHex(sessionAddress[:]), info)
	return info, nil
}
