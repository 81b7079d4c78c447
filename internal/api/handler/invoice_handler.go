package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invoicehub/invoicing-system/internal/api/metrics"
	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoice operations.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Create handles POST /v1/invoices.
//
// @Summary      Create a new invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      createInvoiceRequest  true  "Invoice fields"
// @Success      201   {object}  invoiceResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	detail, err := h.service.CreateInvoice(c.Request().Context(), toCreateInvoiceInput(req))
	if err != nil {
		return err
	}

	metrics.InvoicesCreatedTotal.WithLabelValues(detail.Status).Inc()

	return c.JSON(http.StatusCreated, toInvoiceResponse(detail))
}

// Get handles GET /v1/invoices/:id.
//
// @Summary      Get an invoice by id
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	detail, err := h.service.GetInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(detail))
}

// List handles GET /v1/invoices?status=&search=.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        search  query     string  false  "Match invoice number or client name"
// @Success      200     {object}  listInvoicesResponse
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	result, err := h.service.ListInvoices(c.Request().Context(), ports.ListInvoicesFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListInvoicesResponse(result))
}

// Update handles PUT /v1/invoices/:id.
//
// @Summary      Update an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Invoice id"
// @Param        body  body      updateInvoiceRequest  true  "Fields to change"
// @Success      200   {object}  invoiceResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	detail, err := h.service.UpdateInvoice(c.Request().Context(), c.Param("id"), toUpdateInvoiceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(detail))
}

// Delete handles DELETE /v1/invoices/:id.
//
// @Summary      Delete an invoice
// @Tags         invoices
// @Param        id  path  string  true  "Invoice id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteInvoice(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.InvoicesDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}
