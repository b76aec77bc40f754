package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/model"
)

// HTTPServer wraps an echo instance with address and lifecycle methods.
type HTTPServer struct {
	echo *echo.Echo
	addr string
}

// NewHTTPServer creates an HTTPServer with given echo instance and address.
func NewHTTPServer(
	echo *echo.Echo,
	addr string,
) *HTTPServer {
	return &HTTPServer{echo: echo, addr: addr}
}

// Start starts serving on the configured address using the provided security layer.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.echo.Listener = listener
	return s.echo.Start("")
}

// Stop gracefully stops the server.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
