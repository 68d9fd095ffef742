// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/moonsuite/internal/httpserver"
	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var (
	ErrServerDoneBeforeReady = errors.New("metrics server terminated before being ready")
	ErrServerStopTimeout     = errors.New("metrics server exit timeout")
)

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer creates a metrics server serving the metrics
// of the gatherer given at /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Start starts the metrics server and returns once it is listening.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("serving metrics at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop stops the metrics server.
func (s *Server) Stop() (err error) {
	s.cancel()
	const stopTimeout = 30 * time.Second
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()
	select {
	case err := <-s.done:
		if err != nil {
			return fmt.Errorf("stopping metrics server: %w", err)
		}
		return nil
	case <-timer.C:
		return ErrServerStopTimeout
	}
}
