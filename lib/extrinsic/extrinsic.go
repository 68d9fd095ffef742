// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extrinsic

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/moonsuite/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// version is the extrinsic format version 4 with the signed bit set.
	version = 0x84

	// maxPayloadLength is the signed payload length above
	// which the payload gets blake2b-256 hashed before signing.
	maxPayloadLength = 256
)

// Signer signs extrinsic payloads for 20 bytes account id runtimes.
type Signer interface {
	AccountID() [20]byte
	Sign(hash []byte) (signature [65]byte, err error)
}

// Options are the chain values committed to by the signature.
type Options struct {
	Nonce              uint64
	Tip                uint64
	SpecVersion        uint32
	TransactionVersion uint32
	GenesisHash        types.Hash
}

// Extrinsic is a signed extrinsic for runtimes using
// AccountId20 addresses and ethereum ECDSA signatures.
type Extrinsic struct {
	Signer    [20]byte
	Signature [65]byte
	Nonce     uint64
	Call      types.Call

	extra []byte
}

// Sign creates an extrinsic for the call given and signs it.
// The signed payload is the call, the extra and the additional data
// of each signed extension identifier, in order. It is blake2b-256 hashed
// if it exceeds 256 bytes, then keccak-256 hashed and ECDSA signed.
func Sign(call types.Call, extensions []string, options Options,
	signer Signer) (extrinsic *Extrinsic, err error) {
	callBytes, err := codec.Encode(call)
	if err != nil {
		return nil, fmt.Errorf("encoding call: %w", err)
	}

	extra, additional, err := encodeExtensions(extensions, options)
	if err != nil {
		return nil, fmt.Errorf("encoding signed extensions: %w", err)
	}

	payload := make([]byte, 0, len(callBytes)+len(extra)+len(additional))
	payload = append(payload, callBytes...)
	payload = append(payload, extra...)
	payload = append(payload, additional...)

	if len(payload) > maxPayloadLength {
		hash, err := common.Blake2bHash(payload)
		if err != nil {
			return nil, fmt.Errorf("hashing payload: %w", err)
		}
		payload = hash[:]
	}

	signature, err := signer.Sign(crypto.Keccak256(payload))
	if err != nil {
		return nil, fmt.Errorf("signing payload: %w", err)
	}

	return &Extrinsic{
		Signer:    signer.AccountID(),
		Signature: signature,
		Nonce:     options.Nonce,
		Call:      call,
		extra:     extra,
	}, nil
}

// Encode returns the length prefixed SCALE encoding of the extrinsic.
func (e *Extrinsic) Encode() (encoded []byte, err error) {
	callBytes, err := codec.Encode(e.Call)
	if err != nil {
		return nil, fmt.Errorf("encoding call: %w", err)
	}

	body := bytes.NewBuffer(nil)
	body.WriteByte(version)
	body.Write(e.Signer[:])
	body.Write(e.Signature[:])
	body.Write(e.extra)
	body.Write(callBytes)

	length, err := codec.Encode(types.NewUCompactFromUInt(uint64(body.Len())))
	if err != nil {
		return nil, fmt.Errorf("encoding length: %w", err)
	}

	return append(length, body.Bytes()...), nil
}

// Hex returns the 0x prefixed hex encoding of the extrinsic.
func (e *Extrinsic) Hex() (s string, err error) {
	encoded, err := e.Encode()
	if err != nil {
		return "", err
	}
	return common.BytesToHex(encoded), nil
}

// Hash returns the blake2b-256 hash of the encoded extrinsic.
func (e *Extrinsic) Hash() (hash types.Hash, err error) {
	encoded, err := e.Encode()
	if err != nil {
		return hash, err
	}
	return common.Blake2bHash(encoded)
}
