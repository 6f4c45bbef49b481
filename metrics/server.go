// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
)

const shutdownTimeout = 5 * time.Second

// Server - background process serving /metrics
type Server struct {
	log      *logger.L
	listener net.Listener
	server   *http.Server
}

// NewServer - bind the listen address now so errors show at startup
func NewServer(log *logger.L, listen string, m *Metrics) (*Server, error) {
	listener, err := net.Listen("tcp", listen)
	if nil != err {
		log.Errorf("listen: %q  error: %s", listen, err)
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	return &Server{
		log:      log,
		listener: listener,
		server:   &http.Server{Handler: mux},
	}, nil
}

// Addr - the bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run - serve until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	done := make(chan struct{})
	go func() {
		s.log.Infof("serving metrics on: %s", s.listener.Addr())
		err := s.server.Serve(s.listener)
		if http.ErrServerClosed != err {
			s.log.Errorf("serve error: %s", err)
		}
		close(done)
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); nil != err {
		s.log.Errorf("shutdown error: %s", err)
	}
	<-done
	s.log.Info("stopped")
}
