package delivery_http

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	ports "social-feed-service/internal/domain/ports/output"
)

type Server struct {
	app     *fiber.App
	address string
	port    int
	log     ports.Logger
}

func NewServer(app *fiber.App, address string, port int, log ports.Logger) *Server {
	return &Server{
		app:     app,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	s.log.Info("Starting HTTP server", slog.String("address", address))
	return s.app.Listen(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
