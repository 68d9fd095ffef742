// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrNoPrefix is returned when trying to convert a hex string without a 0x prefix.
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// HexToBytes turns a 0x prefixed hex string into a byte slice.
func HexToBytes(in string) (b []byte, err error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	in = in[2:]
	if len(in)%2 != 0 {
		in = "0" + in
	}

	return hex.DecodeString(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice.
// It panics if the string cannot be converted.
func MustHexToBytes(in string) []byte {
	b, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return b
}

// BytesToHex turns a byte slice into a 0x prefixed hex string.
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}

// HexToFixed32 turns a 0x prefixed hex string of exactly
// 32 bytes into an array.
func HexToFixed32(in string) (b [32]byte, err error) {
	decoded, err := HexToBytes(in)
	if err != nil {
		return b, err
	}

	if len(decoded) != len(b) {
		return b, fmt.Errorf("%w: expected %d bytes but got %d",
			ErrLength, len(b), len(decoded))
	}

	copy(b[:], decoded)
	return b, nil
}

// ErrLength is returned when a decoded hex string has an unexpected length.
var ErrLength = errors.New("unexpected length")
