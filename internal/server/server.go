// Package server is the HTTP facade over the lattice engine: three JSON
// endpoints plus a static index document.
//
// The engine itself is single-threaded; one exclusive mutex is held from just
// after the request body is decoded until the response is written, so a
// snapshot can never observe a half-applied swap and responses are totally
// ordered by lock acquisition.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mquint/hexloop/internal/lattice"
)

// Server owns the process-wide lattice and its HTTP surface.
type Server struct {
	mu  sync.Mutex
	lat *lattice.Lattice
	rng lattice.Rand

	echo *echo.Echo
}

// New wires the routes around an existing lattice and randomness source.
func New(lat *lattice.Lattice, rng lattice.Rand) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{lat: lat, rng: rng, echo: e}

	e.Use(requestLog)
	e.GET("/", s.handleIndex)
	e.GET("/state", s.handleState)
	e.POST("/scramble", s.handleScramble)
	e.POST("/reset", s.handleReset)

	return s
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and blocks until the listener fails or Shutdown
// runs. A closed-by-shutdown listener is reported as nil.
func (s *Server) Start(addr string) error {
	slog.Info("server starting", "addr", addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("server stopping")
	return s.echo.Shutdown(ctx)
}

// requestLog assigns each request a UUIDv7 id (time-sortable, useful when
// correlating logs) and emits one structured line per request.
func requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := uuid.Must(uuid.NewV7()).String()
		c.Response().Header().Set(echo.HeaderXRequestID, id)

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		slog.Info("request",
			"id", id,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
		)
		return nil
	}
}
