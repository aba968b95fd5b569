package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mquint/hexloop/internal/lattice"
)

// stateBody is the common response shape of all three JSON endpoints.
type stateBody struct {
	Cells  map[string]lattice.CellState `json:"cells"`
	Cycles [][]lattice.CyclePoint       `json:"cycles"`
	Size   int                          `json:"size"`
}

// scrambleBody prepends the swap count to the state dump.
type scrambleBody struct {
	Swaps int `json:"swaps"`
	stateBody
}

type scrambleRequest struct {
	Steps int `json:"steps"`
}

type resetRequest struct {
	// Pointers distinguish "absent" from zero values: an absent size keeps
	// the current one, an absent pattern falls back to vertical.
	Size    *int    `json:"size"`
	Pattern *string `json:"pattern"`
}

// state builds the response body from the memoized snapshot.
// Caller must hold s.mu.
func (s *Server) state() stateBody {
	snap := s.lat.Snapshot()
	return stateBody{Cells: snap.Cells, Cycles: snap.Cycles, Size: snap.Size}
}

func (s *Server) handleState(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.state())
}

func (s *Server) handleScramble(c echo.Context) error {
	var req scrambleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed scramble request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	swaps := s.lat.Scramble(s.rng, req.Steps)
	slog.Info("scramble", "steps", req.Steps, "swaps", swaps, "size", s.lat.Size())

	return c.JSON(http.StatusOK, scrambleBody{Swaps: swaps, stateBody: s.state()})
}

func (s *Server) handleReset(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed reset request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.lat.Size()
	if req.Size != nil {
		size = *req.Size // Reset clamps to [5, 200]
	}
	var pattern lattice.Pattern
	if req.Pattern != nil {
		pattern = lattice.ParsePattern(*req.Pattern)
	} else {
		pattern = lattice.DefaultPattern
	}

	s.lat.Reset(size, pattern)
	slog.Info("reset", "size", s.lat.Size(), "pattern", pattern)

	return c.JSON(http.StatusOK, s.state())
}
