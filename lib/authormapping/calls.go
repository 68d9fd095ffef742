// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authormapping

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

func newCall(meta *types.Metadata, method string, args ...interface{}) (call types.Call, err error) {
	call, err = types.NewCall(meta, palletName+"."+method, args...)
	if err != nil {
		return call, fmt.Errorf("creating %s.%s call: %w", palletName, method, err)
	}
	return call, nil
}

// ClearAssociation creates the call removing the association of the
// session address given and unreserving its deposit. It can only be
// dispatched successfully by the account the session address is mapped to.
func ClearAssociation(meta *types.Metadata, sessionAddress [32]byte) (types.Call, error) {
	return newCall(meta, "clear_association", sessionAddress)
}

// AddAssociation creates the call mapping the session address
// given to the signing account.
func AddAssociation(meta *types.Metadata, sessionAddress [32]byte) (types.Call, error) {
	return newCall(meta, "add_association", sessionAddress)
}

// UpdateAssociation creates the call moving the mapping of the signing
// account from the old session address to the new one.
func UpdateAssociation(meta *types.Metadata, oldSessionAddress, newSessionAddress [32]byte) (
	types.Call, error) {
	return newCall(meta, "update_association", oldSessionAddress, newSessionAddress)
}

// RemoveKeys creates the call removing the keys of the signing account.
func RemoveKeys(meta *types.Metadata) (types.Call, error) {
	return newCall(meta, "remove_keys")
}

// SetKeys creates the call setting the session address and the
// VRF key of the signing account.
func SetKeys(meta *types.Metadata, sessionAddress, vrfKey [32]byte) (types.Call, error) {
	keys := make([]byte, 0, len(sessionAddress)+len(vrfKey))
	keys = append(keys, sessionAddress[:]...)
	keys = append(keys, vrfKey[:]...)
	return newCall(meta, "set_keys", types.NewBytes(keys))
}
