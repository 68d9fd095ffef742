// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server is listening.
// The done channel receives the server exit error and must be read.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	settings := s.optional
	settings.setDefaults()

	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: settings.readHeaderTimeout,
	}

	crashed := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-crashed:
			return
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), settings.shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error(s.name + " http server shutdown error: " + err.Error())
		}
	}()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		close(crashed)
		<-shutdownDone
		done <- err
		return
	}

	s.addressMutex.Lock()
	s.address = listener.Addr().String()
	s.addressMutex.Unlock()
	close(s.addressSet)

	close(ready)

	s.logger.Info(s.name + " http server listening on " + s.address)
	err = server.Serve(listener)

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	} else {
		close(crashed)
		s.logger.Warn(s.name + " http server crashed: " + err.Error())
	}

	<-shutdownDone
	done <- err
}
