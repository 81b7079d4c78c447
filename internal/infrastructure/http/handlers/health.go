package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invoicehub/invoicing-system/internal/infrastructure/db/memory"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// There are no external dependencies; readiness reports the in-memory
// collection sizes, which doubles as a cheap first-run check that seeding
// happened.
type ReadinessHandler struct {
	store *memory.Store
}

func NewReadinessHandler(store *memory.Store) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type readinessResponse struct {
	Status   string `json:"status"`
	Clients  int    `json:"clients"`
	Invoices int    `json:"invoices"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, readinessResponse{
		Status:   "ok",
		Clients:  len(h.store.Clients(ctx)),
		Invoices: len(h.store.Invoices(ctx)),
	})
}
