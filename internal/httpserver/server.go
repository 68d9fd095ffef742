// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"net/http"
	"sync"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name         string
	address      string
	addressSet   chan struct{}
	addressMutex sync.RWMutex
	handler      http.Handler
	logger       Logger
	optional     optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server is listening or failed to listen.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	s.addressMutex.RLock()
	defer s.addressMutex.RUnlock()
	return s.address
}
