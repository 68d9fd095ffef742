// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"errors"
	"fmt"
)

// Kind is an event kind the suites assert on.
type Kind uint8

const (
	SystemNewAccount Kind = iota
	SystemKilledAccount
	SystemExtrinsicSuccess
	SystemExtrinsicFailed
	BalancesEndowed
	BalancesWithdraw
	BalancesDeposit
	BalancesTransfer
	TreasuryDeposit
	TransactionFeePaid
	AuthorMappingKeysRegistered
	AuthorMappingKeysRemoved
	AuthorMappingKeysRotated
	// unknownKind must stay last.
	unknownKind
)

var kindNames = [...]string{
	SystemNewAccount:            "System.NewAccount",
	SystemKilledAccount:         "System.KilledAccount",
	SystemExtrinsicSuccess:      "System.ExtrinsicSuccess",
	SystemExtrinsicFailed:       "System.ExtrinsicFailed",
	BalancesEndowed:             "Balances.Endowed",
	BalancesWithdraw:            "Balances.Withdraw",
	BalancesDeposit:             "Balances.Deposit",
	BalancesTransfer:            "Balances.Transfer",
	TreasuryDeposit:             "Treasury.Deposit",
	TransactionFeePaid:          "TransactionPayment.TransactionFeePaid",
	AuthorMappingKeysRegistered: "AuthorMapping.KeysRegistered",
	AuthorMappingKeysRemoved:    "AuthorMapping.KeysRemoved",
	AuthorMappingKeysRotated:    "AuthorMapping.KeysRotated",
}

func (k Kind) String() string {
	if k >= unknownKind {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Is returns true if the record is of the receiving kind.
func (k Kind) Is(record Record) bool {
	return k < unknownKind && record.Name == kindNames[k]
}

// Kinds returns all the event kinds of the catalog.
func Kinds() (kinds []Kind) {
	kinds = make([]Kind, unknownKind)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ErrKindUnknown is returned when parsing a name outside the catalog.
var ErrKindUnknown = errors.New("event kind is unknown")

// ParseKind returns the kind for the event name given,
// for example System.ExtrinsicFailed.
func ParseKind(name string) (kind Kind, err error) {
	for i, kindName := range kindNames {
		if kindName == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrKindUnknown, name)
}

// KindOf returns the kind of the record, and false if the
// record is outside the catalog.
func KindOf(record Record) (kind Kind, ok bool) {
	kind, err := ParseKind(record.Name)
	return kind, err == nil
}
