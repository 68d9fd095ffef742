// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"
	scribble "github.com/nanobox-io/golang-scribble"
)

// Recorder stores the values recorded during a run as JSON
// documents, under <dir>/<run id>/<collection>/<sequence>.json.
type Recorder struct {
	runID  string
	db     *scribble.Driver
	mutex  sync.Mutex
	counts map[string]int
}

// NewRecorder creates a recorder for a new run in the directory given.
func NewRecorder(dir string) (*Recorder, error) {
	runID := uuid.New().String()

	db, err := scribble.New(filepath.Join(dir, runID), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create record database: %w", err)
	}

	return &Recorder{
		runID:  runID,
		db:     db,
		counts: make(map[string]int),
	}, nil
}

// RunID returns the identifier of the run recorded.
func (r *Recorder) RunID() string { return r.runID }

// Record stores the value in the collection given.
func (r *Recorder) Record(collection string, value interface{}) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	sequence := r.counts[collection]
	err := r.db.Write(collection, strconv.Itoa(sequence), value)
	if err != nil {
		return fmt.Errorf("error writing to db %v", err)
	}
	r.counts[collection]++

	return nil
}

// Count returns the number of values recorded in the collection.
func (r *Recorder) Count(collection string) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.counts[collection]
}

// Records returns the values recorded in the collection,
// in recording order, as raw JSON documents.
func (r *Recorder) Records(collection string) (records []json.RawMessage, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	records = make([]json.RawMessage, r.counts[collection])
	for i := range records {
		err = r.db.Read(collection, strconv.Itoa(i), &records[i])
		if err != nil {
			return nil, fmt.Errorf("error reading from db %v", err)
		}
	}

	return records, nil
}
