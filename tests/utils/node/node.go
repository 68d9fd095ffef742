// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"testing"
	"time"

	"github.com/ChainSafe/moonsuite/config"
	"github.com/stretchr/testify/require"
)

// DefaultBinary is the node binary looked up in $PATH
// if no binary is configured.
const DefaultBinary = "moonbeam"

// Node is a structure holding all the settings to
// configure a dev node.
type Node struct {
	index      *int
	cfg        config.Config
	basePath   string
	writer     io.Writer
	logsBuffer *bytes.Buffer
	binPath    string
}

// New returns a node configured using the
// configuration and options given.
func New(t testing.TB, cfg config.Config,
	options ...Option) (node Node) {
	node.cfg = config.Copy(&cfg)
	for _, option := range options {
		option(&node)
	}
	node.setDefaults(t)
	node.setWriterPrefix()

	return node
}

func (n Node) String() string {
	return fmt.Sprintf("%s-%d", n.cfg.Node.Chain, *n.index)
}

// RPCPort returns the rpc port of the node.
func (n Node) RPCPort() (port string) { return fmt.Sprint(n.cfg.Node.RPCPort) }

// Config returns the configuration of the node, with
// its endpoints pointing to the node.
func (n Node) Config() config.Config {
	cfg := config.Copy(&n.cfg)
	cfg.LocalEndpoints()
	return cfg
}

func intPtr(n int) *int { return &n }

func (n *Node) setDefaults(t testing.TB) {
	if n.index == nil {
		n.index = intPtr(0)
	}

	if n.basePath == "" {
		n.basePath = t.TempDir()
	}

	if n.cfg.Node.Chain == "" {
		n.cfg.Node.Chain = config.DefaultChain
	}

	if n.cfg.Node.Sealing == "" {
		n.cfg.Node.Sealing = config.DefaultSealing
	}

	if n.cfg.Node.RPCPort == 0 {
		n.cfg.Node.RPCPort = config.DefaultRPCPort + uint16(*n.index)
	}

	userSetWriter := n.writer != nil && n.writer != io.Discard
	if !userSetWriter {
		n.logsBuffer = bytes.NewBuffer(nil)
	}

	if n.writer == nil {
		n.writer = io.Discard
	}

	if n.binPath == "" {
		n.binPath = n.cfg.Node.Binary
	}
	if n.binPath == "" {
		binPath, err := exec.LookPath(DefaultBinary)
		require.NoError(t, err)
		n.binPath = binPath
	}
}

// args returns the command line arguments of the node.
func (n *Node) args() []string {
	args := []string{
		"--dev",
		"--chain=" + n.cfg.Node.Chain,
		"--sealing=" + n.cfg.Node.Sealing,
		"--base-path", n.basePath,
		"--rpc-port", n.RPCPort(),
		"--rpc-cors=all",
		"--reserved-only",
		"--no-hardware-benchmarks",
		"--no-telemetry",
		"--no-prometheus",
	}
	return append(args, n.cfg.Node.ExtraArgs...)
}

// Start starts a dev node using the node configuration of
// the receiving struct. It returns a start error if the node cannot
// be started, and runs the node until the context gets canceled.
// When the node crashes or is stopped, an error (nil or not) is sent
// in the waitErrCh.
func (n *Node) Start(ctx context.Context, optArgs ...string) (runtimeError <-chan error, startErr error) {
	args := append(n.args(), optArgs...)
	cmd := exec.CommandContext(ctx, n.binPath, args...)

	if n.logsBuffer != nil {
		n.logsBuffer.Reset()
		n.writer = io.MultiWriter(n.writer, n.logsBuffer)
	}

	cmd.Stdout = n.writer
	cmd.Stderr = cmd.Stdout // we assume no race between stdout and stderr

	err := cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("cannot start %s: %w", cmd, err)
	}

	waitErrCh := make(chan error)
	go func(cmd *exec.Cmd, node *Node, waitErr chan<- error) {
		err := cmd.Wait()
		waitErr <- node.wrapRuntimeError(ctx, cmd, err)
	}(cmd, n, waitErrCh)

	return waitErrCh, nil
}

// StartAndWait starts a dev node using the node configuration of
// the receiving struct. It returns a start error if the node cannot
// be started, and runs the node until the context gets canceled.
// When the node crashes or is stopped, an error (nil or not) is sent
// in the waitErrCh.
// It waits for the node to respond to an RPC health call before returning.
func (n *Node) StartAndWait(ctx context.Context, args ...string) (
	runtimeError <-chan error, startErr error) {
	runtimeError, startErr = n.Start(ctx, args...)
	if startErr != nil {
		return nil, startErr
	}

	waitCtx, waitCancel := context.WithTimeout(ctx, n.startupTimeout())
	defer waitCancel()

	err := waitForNode(waitCtx, n.RPCPort())
	if err != nil {
		return nil, fmt.Errorf("failed waiting: %s", err)
	}

	return runtimeError, nil
}

func (n *Node) startupTimeout() time.Duration {
	timeout := n.cfg.Node.Timeout()
	if timeout == 0 {
		const defaultTimeout = 2 * time.Minute
		timeout = defaultTimeout
	}
	return timeout
}

// InitAndStartTest is a test helper method to start the node,
// as well as registering appriopriate test handlers.
// If starting fails, cleanup is done and the test fails instantly.
// If the node crashes during runtime, the passed `signalTestToStop` argument is
// called since the test cannot be failed from outside the main test goroutine.
func (n Node) InitAndStartTest(ctx context.Context, t *testing.T,
	signalTestToStop context.CancelFunc, args ...string) {
	t.Helper()

	nodeCtx, nodeCancel := context.WithCancel(ctx)

	waitErr, err := n.StartAndWait(nodeCtx, args...)
	if err != nil {
		t.Errorf("failed to start node %s: %s", n, err)
		// Release resources and fail the test
		nodeCancel()
		t.FailNow()
	}

	t.Logf("Node %s is ready", n)

	// watch for runtime fatal node error
	watchDogCtx, watchDogCancel := context.WithCancel(ctx)
	watchDogDone := make(chan struct{})
	go func() {
		defer close(watchDogDone)
		select {
		case <-watchDogCtx.Done():
			return
		case err := <-waitErr: // the node crashed
			if watchDogCtx.Err() != nil {
				// make sure the runtime watchdog is not meant
				// to be disengaged, in case of signal racing.
				return
			}
			t.Errorf("node %s crashed: %s", n, err)
			// Release resources
			nodeCancel()
			// we cannot stop the test with t.FailNow() from a goroutine
			// other than the test goroutine, so we call the following function
			// to signal the test goroutine to stop the test.
			signalTestToStop()
		}
	}()

	t.Cleanup(func() {
		t.Helper()
		// Disengage node watchdog goroutine
		watchDogCancel()
		<-watchDogDone
		// Stop the node and wait for it to exit
		nodeCancel()
		<-waitErr
		t.Logf("Node %s terminated", n)
	})
}

func (n *Node) setWriterPrefix() {
	if n.writer == io.Discard {
		return // no need to wrap it
	}

	n.writer = &prefixedWriter{
		prefix: []byte(n.String() + " "),
		writer: n.writer,
	}
}

// wrapRuntimeError wraps the error given using the context available
// such as the command string or the log buffer. It returns nil if the
// argument error is nil.
func (n *Node) wrapRuntimeError(ctx context.Context, cmd *exec.Cmd,
	waitErr error) (wrappedErr error) {
	if waitErr == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w: %s", n, ctx.Err(), waitErr)
	}

	var logInformation string
	if n.logsBuffer != nil {
		// Add log information to error if no writer is set
		// for this node.
		logInformation = "\nLogs:\n" + n.logsBuffer.String()
	}

	return fmt.Errorf("%s encountered a runtime error: %w\ncommand: %s\n\n%s\n\n%s",
		n, waitErr, cmd, n.basePath, logInformation)
}
