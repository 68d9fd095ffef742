// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"errors"
	"fmt"
)

// Expectation is an event kind expected at a position.
type Expectation struct {
	Index int
	Kind  Kind
}

// Layout is a positional fixture of the events an extrinsic emits.
type Layout struct {
	// Count is the expected number of events, zero meaning unset.
	Count int
	// Strict makes a Count mismatch an error instead of a drift.
	Strict    bool
	Positions []Expectation
}

// Drift reports a non strict event count mismatch.
type Drift struct {
	Expected int
	Actual   int
}

func (d Drift) String() string {
	return fmt.Sprintf("expected %d events but got %d", d.Expected, d.Actual)
}

var (
	ErrEventCount   = errors.New("event count mismatch")
	ErrEventMissing = errors.New("event missing")
	ErrEventKind    = errors.New("event kind mismatch")
)

// Check verifies the records against the layout. Each position is
// checked even if the count does not match. A non strict count
// mismatch is returned as drift and is not an error.
func (l Layout) Check(records []Record) (drift *Drift, err error) {
	if l.Count > 0 && len(records) != l.Count {
		if l.Strict {
			return nil, fmt.Errorf("%w: expected %d events but got %d",
				ErrEventCount, l.Count, len(records))
		}
		drift = &Drift{Expected: l.Count, Actual: len(records)}
	}

	for _, expectation := range l.Positions {
		if expectation.Index >= len(records) {
			return drift, fmt.Errorf("%w: no %s at index %d, only %d events emitted",
				ErrEventMissing, expectation.Kind, expectation.Index, len(records))
		}

		record := records[expectation.Index]
		if !expectation.Kind.Is(record) {
			return drift, fmt.Errorf("%w: expected %s at index %d but got %s",
				ErrEventKind, expectation.Kind, expectation.Index, record.Name)
		}
	}

	return drift, nil
}

// Derive returns the strict layout matching the records given.
// Records outside the kind catalog are counted but have no position.
func Derive(records []Record) (layout Layout) {
	layout.Count = len(records)
	layout.Strict = true
	for i, record := range records {
		kind, ok := KindOf(record)
		if !ok {
			continue
		}
		layout.Positions = append(layout.Positions, Expectation{Index: i, Kind: kind})
	}
	return layout
}
