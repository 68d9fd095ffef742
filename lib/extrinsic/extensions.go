// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extrinsic

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

var (
	ErrMetadataVersion      = errors.New("metadata version is not supported")
	ErrUnsupportedExtension = errors.New("signed extension is not supported")
)

// Extensions returns the signed extension identifiers
// declared by the runtime metadata, in signing order.
func Extensions(meta *types.Metadata) (identifiers []string, err error) {
	if meta.Version != 14 {
		return nil, fmt.Errorf("%w: %d", ErrMetadataVersion, meta.Version)
	}

	signedExtensions := meta.AsMetadataV14.Extrinsic.SignedExtensions
	identifiers = make([]string, len(signedExtensions))
	for i, extension := range signedExtensions {
		identifiers[i] = string(extension.Identifier)
	}
	return identifiers, nil
}

// encodeExtensions encodes the extra data carried in the extrinsic and
// the additional data only part of the signed payload, for each
// signed extension identifier given. Transactions are always immortal.
func encodeExtensions(identifiers []string, options Options) (
	extra, additional []byte, err error) {
	extraBuffer := bytes.NewBuffer(nil)
	additionalBuffer := bytes.NewBuffer(nil)

	for _, identifier := range identifiers {
		var extraValues, additionalValues []interface{}

		switch identifier {
		case "CheckNonZeroSender", "CheckWeight",
			"StorageWeightReclaim", "CheckWeightReclaim":
		case "CheckSpecVersion":
			additionalValues = []interface{}{types.NewU32(options.SpecVersion)}
		case "CheckTxVersion":
			additionalValues = []interface{}{types.NewU32(options.TransactionVersion)}
		case "CheckGenesis":
			additionalValues = []interface{}{options.GenesisHash}
		case "CheckMortality", "CheckEra":
			extraValues = []interface{}{types.ExtrinsicEra{IsImmortalEra: true}}
			additionalValues = []interface{}{options.GenesisHash}
		case "CheckNonce":
			extraValues = []interface{}{types.NewUCompactFromUInt(options.Nonce)}
		case "ChargeTransactionPayment":
			extraValues = []interface{}{types.NewUCompactFromUInt(options.Tip)}
		case "ChargeAssetTxPayment":
			extraValues = []interface{}{types.NewUCompactFromUInt(options.Tip), types.NewU8(0)}
		case "CheckMetadataHash":
			// metadata hash checking disabled, no hash
			extraValues = []interface{}{types.NewU8(0)}
			additionalValues = []interface{}{types.NewU8(0)}
		default:
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, identifier)
		}

		err = encodeInto(extraBuffer, extraValues)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding extra of %s: %w", identifier, err)
		}

		err = encodeInto(additionalBuffer, additionalValues)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding additional data of %s: %w", identifier, err)
		}
	}

	return extraBuffer.Bytes(), additionalBuffer.Bytes(), nil
}

func encodeInto(buffer *bytes.Buffer, values []interface{}) error {
	for _, value := range values {
		encoded, err := codec.Encode(value)
		if err != nil {
			return err
		}
		buffer.Write(encoded)
	}
	return nil
}
