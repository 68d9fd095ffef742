// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"
	"strings"
)

// Phase is the block execution phase an event was emitted in.
type Phase struct {
	ApplyExtrinsic bool
	// Index is the extrinsic index, only set if ApplyExtrinsic is true.
	Index          uint32
	Finalization   bool
	Initialization bool
}

func (p Phase) String() string {
	switch {
	case p.ApplyExtrinsic:
		return fmt.Sprintf("ApplyExtrinsic(%d)", p.Index)
	case p.Finalization:
		return "Finalization"
	case p.Initialization:
		return "Initialization"
	default:
		return "Unknown"
	}
}

// Field is a decoded event field.
type Field struct {
	Name  string
	Value interface{}
}

// Record is an event emitted during block execution.
type Record struct {
	// Name is the pallet and variant name joined with a dot,
	// for example System.ExtrinsicFailed.
	Name   string
	Phase  Phase
	Fields []Field
}

// Pallet returns the pallet part of the record name.
func (r Record) Pallet() string {
	pallet, _, _ := strings.Cut(r.Name, ".")
	return pallet
}

// Variant returns the variant part of the record name.
func (r Record) Variant() string {
	_, variant, _ := strings.Cut(r.Name, ".")
	return variant
}

func (r Record) String() string {
	if len(r.Fields) == 0 {
		return r.Name
	}

	fields := make([]string, len(r.Fields))
	for i, field := range r.Fields {
		fields[i] = fmt.Sprintf("%s: %v", field.Name, field.Value)
	}
	return r.Name + " { " + strings.Join(fields, ", ") + " }"
}

// ForExtrinsic returns the records emitted while applying
// the extrinsic at the index given, in emission order.
func ForExtrinsic(records []Record, index uint32) (filtered []Record) {
	for _, record := range records {
		if record.Phase.ApplyExtrinsic && record.Phase.Index == index {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Outcome returns whether the records of an extrinsic end with
// a successful dispatch. The ok boolean is false if no dispatch
// outcome event was found.
func Outcome(records []Record) (successful, ok bool) {
	for i := len(records) - 1; i >= 0; i-- {
		switch {
		case SystemExtrinsicSuccess.Is(records[i]):
			return true, true
		case SystemExtrinsicFailed.Is(records[i]):
			return false, true
		}
	}
	return false, false
}

// Find returns the first record of the kind given.
func Find(records []Record, kind Kind) (record Record, found bool) {
	for _, record := range records {
		if kind.Is(record) {
			return record, true
		}
	}
	return record, false
}
