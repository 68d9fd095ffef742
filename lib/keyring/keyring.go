// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keyring

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cosmos/go-bip39"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DevMnemonic is the mnemonic the dev chain spec endows its accounts from.
const DevMnemonic = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

var devAccountNames = []string{
	"alith",
	"baltathar",
	"charleth",
	"dorothy",
	"ethan",
	"faith",
}

// Account is an ethereum style dev account.
type Account struct {
	Name       string
	Index      uint32
	PrivateKey *ecdsa.PrivateKey
	Address    ethcommon.Address
	Session    SessionKey
}

// AccountID returns the 20 bytes account id of the account.
func (a Account) AccountID() (id [20]byte) {
	return a.Address
}

// Sign signs the 32 bytes hash given and returns the
// 65 bytes [R || S || V] signature, with V being 0 or 1.
func (a Account) Sign(hash []byte) (signature [65]byte, err error) {
	sig, err := crypto.Sign(hash, a.PrivateKey)
	if err != nil {
		return signature, fmt.Errorf("signing hash: %w", err)
	}
	copy(signature[:], sig)
	return signature, nil
}

func (a Account) String() string {
	return a.Name + " (" + a.Address.Hex() + ")"
}

// Keyring represents the dev keyring
type Keyring struct {
	Alith     Account
	Baltathar Account
	Charleth  Account
	Dorothy   Account
	Ethan     Account
	Faith     Account

	Accounts []Account
}

// NewKeyring derives the dev accounts from the mnemonic given,
// along m/44'/60'/0'/0/<index>, and pairs each of them with its
// session key.
func NewKeyring(mnemonic string) (*Keyring, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("creating seed from mnemonic: %w", err)
	}

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("creating master key: %w", err)
	}

	kr := &Keyring{
		Accounts: make([]Account, len(devAccountNames)),
	}

	for i, name := range devAccountNames {
		index := uint32(i)
		privateKey, err := derive(master, index)
		if err != nil {
			return nil, fmt.Errorf("deriving account %s: %w", name, err)
		}

		session, err := NewSessionKey(name, sessionSeeds[i])
		if err != nil {
			return nil, fmt.Errorf("deriving session key of %s: %w", name, err)
		}

		kr.Accounts[i] = Account{
			Name:       name,
			Index:      index,
			PrivateKey: privateKey,
			Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
			Session:    session,
		}
	}

	kr.Alith = kr.Accounts[0]
	kr.Baltathar = kr.Accounts[1]
	kr.Charleth = kr.Accounts[2]
	kr.Dorothy = kr.Accounts[3]
	kr.Ethan = kr.Accounts[4]
	kr.Faith = kr.Accounts[5]

	return kr, nil
}

func derive(master *hdkeychain.ExtendedKey, index uint32) (*ecdsa.PrivateKey, error) {
	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + 60,
		hdkeychain.HardenedKeyStart,
		0,
		index,
	}

	key := master
	for _, childIndex := range path {
		var err error
		key, err = key.Derive(childIndex)
		if err != nil {
			return nil, err
		}
	}

	privateKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("getting private key: %w", err)
	}

	return privateKey.ToECDSA(), nil
}

// ErrAccountNotFound is returned when no dev account matches a name.
var ErrAccountNotFound = errors.New("account not found")

// AccountByName returns the dev account for the case insensitive name given.
func (kr *Keyring) AccountByName(name string) (account Account, err error) {
	for _, account := range kr.Accounts {
		if strings.EqualFold(account.Name, name) {
			return account, nil
		}
	}
	return account, fmt.Errorf("%w: %s", ErrAccountNotFound, name)
}
