package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/invoicehub/invoicing-system/internal/api/handler"
	"github.com/invoicehub/invoicing-system/internal/core/service"
	"github.com/invoicehub/invoicing-system/internal/infrastructure/config"
	"github.com/invoicehub/invoicing-system/internal/infrastructure/db/memory"
	healthhandlers "github.com/invoicehub/invoicing-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The store is the single owner of all state; every handler reaches it
// through the service layer.
func NewRouter(store *memory.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("invoicing"))

	// --- Dependencies ---
	invoiceService := service.NewInvoiceService(store, store, log)
	clientService := service.NewClientService(store, log)
	dashboardService := service.NewDashboardService(store, store, cfg.RecentLimit, log)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	clientHandler := handler.NewClientHandler(clientService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Invoice routes ---
	e.POST("/v1/invoices", invoiceHandler.Create)
	e.GET("/v1/invoices", invoiceHandler.List)
	e.GET("/v1/invoices/:id", invoiceHandler.Get)
	e.PUT("/v1/invoices/:id", invoiceHandler.Update)
	e.DELETE("/v1/invoices/:id", invoiceHandler.Delete)

	// --- Client routes ---
	e.POST("/v1/clients", clientHandler.Create)
	e.GET("/v1/clients", clientHandler.List)
	e.GET("/v1/clients/:id", clientHandler.Get)
	e.PUT("/v1/clients/:id", clientHandler.Update)
	e.DELETE("/v1/clients/:id", clientHandler.Delete)

	// --- Dashboard routes ---
	e.GET("/v1/dashboard/stats", dashboardHandler.Stats)
	e.GET("/v1/dashboard/recent", dashboardHandler.Recent)

	// --- Health probes and metrics ---
	healthHandler := healthhandlers.NewHealthHandler()
	readyHandler := healthhandlers.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness) // readiness – is the store seeded?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
