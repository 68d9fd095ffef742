// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package suite

import (
	"context"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/ChainSafe/moonsuite/tests/utils/dev"
)

// Foundation is the kind of network a suite runs against.
type Foundation string

const (
	// Dev is a single manually sealing dev node, on which
	// blocks are only created on demand by the suite.
	Dev Foundation = "dev"
)

// T is the subset of testing.T the cases use. It is implemented
// by *testing.T and by the runner reporting to the command line.
type T interface {
	Helper()
	Name() string
	Logf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	FailNow()
	Failed() bool
}

// Env is the environment a case runs in.
type Env struct {
	Ctx context.Context
	Dev *dev.Context
	Log *log.Logger
}

// Case is a single test case of a suite.
type Case struct {
	// ID is appended to the suite ID to form the case full ID.
	ID    string
	Title string
	Test  func(t T, env Env)
}

// Cases collects the cases of a suite.
type Cases struct {
	cases []Case
}

// It adds a case.
func (c *Cases) It(testCase Case) {
	c.cases = append(c.cases, testCase)
}

// Suite is a group of cases sharing a foundation.
// Its cases run sequentially, in declaration order,
// against the same foundation.
type Suite struct {
	ID         string
	Title      string
	Foundation Foundation
	TestCases  func(cases *Cases)
}

// Cases returns the cases of the suite.
func (s Suite) Cases() []Case {
	cases := new(Cases)
	if s.TestCases != nil {
		s.TestCases(cases)
	}
	return cases.cases
}

// FullID returns the full ID of the case given.
func (s Suite) FullID(testCase Case) string {
	return s.ID + testCase.ID
}

// CaseName returns the full ID and title of the case given.
func (s Suite) CaseName(testCase Case) string {
	return s.FullID(testCase) + " " + testCase.Title
}

func (s Suite) String() string {
	return s.ID + " " + s.Title
}
