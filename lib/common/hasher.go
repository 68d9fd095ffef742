// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data
func Blake2b128(in []byte) ([]byte, error) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Blake2b128Concat returns the 128-bit blake2b hash of the input data
// followed by the input data itself.
func Blake2b128Concat(in []byte) ([]byte, error) {
	h, err := Blake2b128(in)
	if err != nil {
		return nil, err
	}

	return append(h, in...), nil
}

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (hash [32]byte, err error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return hash, err
	}

	_, err = h.Write(in)
	if err != nil {
		return hash, err
	}

	copy(hash[:], h.Sum(nil))
	return hash, nil
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) ([]byte, error) {
	return twox64WithSeed(in, 0)
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) ([]byte, error) {
	hash0, err := twox64WithSeed(msg, 0)
	if err != nil {
		return nil, err
	}

	hash1, err := twox64WithSeed(msg, 1)
	if err != nil {
		return nil, err
	}

	return append(hash0, hash1...), nil
}

func twox64WithSeed(in []byte, seed uint64) ([]byte, error) {
	hasher := xxhash.NewS64(seed)
	_, err := hasher.Write(in)
	if err != nil {
		return nil, err
	}

	hash := make([]byte, 8)
	binary.LittleEndian.PutUint64(hash, hasher.Sum64())
	return hash, nil
}
