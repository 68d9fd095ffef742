// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package suite

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrSuiteIDEmpty      = errors.New("suite id is empty")
	ErrSuiteRegistered   = errors.New("suite already registered")
	ErrSuiteNotFound     = errors.New("suite not found")
	ErrFoundationUnknown = errors.New("foundation is not supported")
)

var (
	registryMutex sync.RWMutex
	registry      = make(map[string]Suite)
)

// Register registers the suite so it can be listed
// and run from the command line.
func Register(s Suite) error {
	switch {
	case s.ID == "":
		return ErrSuiteIDEmpty
	case s.Foundation != Dev:
		return fmt.Errorf("%w: %s for suite %s", ErrFoundationUnknown, s.Foundation, s.ID)
	}

	registryMutex.Lock()
	defer registryMutex.Unlock()

	_, registered := registry[s.ID]
	if registered {
		return fmt.Errorf("%w: %s", ErrSuiteRegistered, s.ID)
	}
	registry[s.ID] = s
	return nil
}

// MustRegister registers the suite and panics on error.
func MustRegister(s Suite) {
	err := Register(s)
	if err != nil {
		panic(err)
	}
}

// Registered returns the registered suites sorted by ID.
func Registered() (suites []Suite) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	suites = make([]Suite, 0, len(registry))
	for _, s := range registry {
		suites = append(suites, s)
	}
	sort.Slice(suites, func(i, j int) bool {
		return suites[i].ID < suites[j].ID
	})
	return suites
}

// Lookup returns the registered suite with the ID given.
func Lookup(id string) (s Suite, err error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	s, ok := registry[id]
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrSuiteNotFound, id)
	}
	return s, nil
}
