package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/handler"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

type server struct {
	httpServer *httpServer
	listener   net.Listener
	logger     *logger.Logger
}

// NewServer binds the preview address right away so that a busy port is
// reported at startup rather than from the background worker.
func NewServer(handlers *handler.Handlers, cfg config.WidgetPreview, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.Address).Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoPreviewHandler
	}

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.Address, err)
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		listener:   ln,
		logger:     logger,
	}, nil
}

// Addr is the bound listen address.
func (s *server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *server) Run(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.logger.Info().Str("address", s.listener.Addr().String()).Msg("launching preview server")
		s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-done
	case <-done:
	}

	s.logger.Info().Msg("preview server shut down gracefully")
}

// Shutdown stops the server and releases the listener, even when Run was
// never called.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	_ = s.listener.Close()
}
