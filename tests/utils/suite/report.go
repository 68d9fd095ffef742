// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package suite

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/qdm12/gotree"
)

// CaseResult is the result of a case run outside of go test.
type CaseResult struct {
	Name     string
	Passed   bool
	Messages []string
	Duration time.Duration
}

// Report is the result of a suite run outside of go test.
type Report struct {
	Suite   string
	Results []CaseResult
}

// Passed returns true if all the cases passed.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	return true
}

func (r Report) String() string {
	return r.toNode().String()
}

func (r Report) toNode() *gotree.Node {
	node := gotree.New("Suite %s:", r.Suite)
	for _, result := range r.Results {
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		caseNode := node.Appendf("%s %s (%s)", status, result.Name, result.Duration.Round(time.Millisecond))
		for _, message := range result.Messages {
			caseNode.Appendf("%s", message)
		}
	}
	return node
}

// RunCases runs the cases of the suite sequentially in the environment
// given and reports their results. A failing case does not stop the
// cases after it.
func RunCases(s Suite, env Env) (report Report) {
	report.Suite = s.String()
	for _, testCase := range s.Cases() {
		report.Results = append(report.Results, runCase(s, testCase, env))
	}
	return report
}

func runCase(s Suite, testCase Case, env Env) (result CaseResult) {
	t := &reportT{name: s.CaseName(testCase)}
	caseEnv := env
	if env.Log != nil {
		caseEnv.Log = env.Log.New(log.AddContext("case", s.FullID(testCase)))
	}

	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
			}
		}()
		testCase.Test(t, caseEnv)
	}()
	<-done

	return CaseResult{
		Name:     t.name,
		Passed:   !t.Failed(),
		Messages: t.messages,
		Duration: time.Since(start),
	}
}

// reportT implements T collecting its messages in memory.
// FailNow stops the case goroutine like testing.T does.
type reportT struct {
	name     string
	mutex    sync.Mutex
	failed   bool
	messages []string
}

func (t *reportT) Helper() {}

func (t *reportT) Name() string { return t.name }

func (t *reportT) Logf(format string, args ...interface{}) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.messages = append(t.messages, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (t *reportT) Errorf(format string, args ...interface{}) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.failed = true
	t.messages = append(t.messages, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (t *reportT) FailNow() {
	t.mutex.Lock()
	t.failed = true
	t.mutex.Unlock()
	runtime.Goexit()
}

func (t *reportT) Failed() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.failed
}
