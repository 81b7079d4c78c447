package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

// DashboardHandler serves the read-only dashboard aggregates.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type statusBucketResponse struct {
	Count         int     `json:"count"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
}

type statsResponse struct {
	InvoiceCount       int     `json:"invoice_count"`
	TotalAmount        float64 `json:"total_amount"`
	TotalAmountDisplay string  `json:"total_amount_display"`

	Paid    statusBucketResponse `json:"paid"`
	Pending statusBucketResponse `json:"pending"`
	Overdue statusBucketResponse `json:"overdue"`
}

type recentInvoicesResponse struct {
	Data []invoiceSummaryResponse `json:"data"`
}

// Stats handles GET /v1/dashboard/stats.
//
// @Summary      Revenue totals by status
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		InvoiceCount:       stats.InvoiceCount,
		TotalAmount:        stats.TotalAmount,
		TotalAmountDisplay: formatAmount(stats.TotalAmount),
		Paid:               toBucketResponse(stats.Paid),
		Pending:            toBucketResponse(stats.Pending),
		Overdue:            toBucketResponse(stats.Overdue),
	})
}

// Recent handles GET /v1/dashboard/recent?limit=N.
//
// @Summary      Most recently created invoices
// @Tags         dashboard
// @Produce      json
// @Param        limit  query     int  false  "Max invoices to return (default 5)"
// @Success      200    {object}  recentInvoicesResponse
// @Router       /v1/dashboard/recent [get]
func (h *DashboardHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit")) // malformed input coerces to zero, service applies the default

	items, err := h.service.RecentInvoices(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	data := make([]invoiceSummaryResponse, len(items))
	for i, s := range items {
		data[i] = toInvoiceSummaryResponse(s)
	}
	return c.JSON(http.StatusOK, recentInvoicesResponse{Data: data})
}

func toBucketResponse(b ports.StatusBucket) statusBucketResponse {
	return statusBucketResponse{
		Count:         b.Count,
		Amount:        b.Amount,
		AmountDisplay: formatAmount(b.Amount),
	}
}
