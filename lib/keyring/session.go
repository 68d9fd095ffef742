// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keyring

import (
	"fmt"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/moonsuite/lib/common"
)

// Session addresses are the sr25519 public keys the dev authors use
// as their nimbus session keys.
const (
	AlithSessionAddress     = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	BaltatharSessionAddress = "0x8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48"
	CharlethSessionAddress  = "0x90b5ab205c6974c9ea841be688864633dc9ca8a357843eeacf2314649965fe22"
	DorothySessionAddress   = "0x306721211d5404bd9da88e0204360a1a9ab8b87c66c1bc2fcdd37f3c2222cc20"
	EthanSessionAddress     = "0xe659a7a1628cdd93febc04a4e0646ea20e9f5f0ce097d9a05290d4a9e054df4e"
	FaithSessionAddress     = "0x1cbd2d43530a44705ad088af313e18f80b53ef16b36177cd4b77b846f2a5f07c"
)

// sr25519 mini secret keys generated using `subkey inspect //Name`,
// in dev account order.
var sessionSeeds = []string{
	"0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a",
	"0x398f0c28f98885e046333d4a41c19cee4c37368a9832c6502f6cfd182e2aef89",
	"0xbc1ede780f784bb6991a585e4f6e61522c14e1cae6ad0895fb57b9a205a8f938",
	"0x868020ae0687dda7d57565093a69090211449845a7e11453612800b663307246",
	"0x786ad0e2df456fe43dd1f91ebca22e235bc162e0bb8d53c633e8c85b2af68b7a",
	"0x42438b7883391c05512a938e36c2df0131e088b3756d6aa7a755fbff19d2f842",
}

// SessionKey is the sr25519 session key of a dev author.
type SessionKey struct {
	Name   string
	Public [32]byte
}

// Address returns the 0x prefixed hex session address.
func (s SessionKey) Address() string {
	return common.BytesToHex(s.Public[:])
}

// NewSessionKey derives the sr25519 session key from
// the 0x prefixed hex mini secret key given.
func NewSessionKey(name, seedHex string) (key SessionKey, err error) {
	seed, err := common.HexToFixed32(seedHex)
	if err != nil {
		return key, fmt.Errorf("parsing seed: %w", err)
	}

	miniSecret, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return key, fmt.Errorf("creating mini secret key: %w", err)
	}

	return SessionKey{
		Name:   name,
		Public: miniSecret.Public().Encode(),
	}, nil
}

// ParseSessionAddress parses a 0x prefixed hex session address.
func ParseSessionAddress(address string) (id [32]byte, err error) {
	id, err = common.HexToFixed32(address)
	if err != nil {
		return id, fmt.Errorf("parsing session address %q: %w", address, err)
	}
	return id, nil
}
