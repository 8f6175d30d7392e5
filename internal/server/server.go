// Package server wires the HTTP router and owns the listener lifecycle.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
)

// Server is a running HTTP server plus the resources it closes on Stop.
type Server struct {
	srv     *http.Server
	ln      net.Listener
	closers []io.Closer
	errCh   chan error
}

// Start listens on addr and serves handler in the background.
// closers are closed, in order, after the server has shut down.
func Start(addr string, handler http.Handler, closers ...io.Closer) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		srv:     &http.Server{Handler: handler},
		ln:      ln,
		closers: closers,
		errCh:   make(chan error, 1),
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", ln.Addr())
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
		close(s.errCh)
	}()

	return s, nil
}

// Addr returns the address the server is bound to.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Err delivers a serve failure; it is closed once the server stops.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Stop gracefully shuts the server down within ctx and closes the attached resources.
func (s *Server) Stop(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	if err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil {
			logger.Log.Errorw("failed to close resource", "error", cerr)
			err = errors.Join(err, cerr)
		}
	}

	logger.Log.Info("HTTP server stopped")
	return err
}
