package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invoicehub/invoicing-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	Name    string `json:"name"  validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

type updateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Company *string `json:"company"`
}

type clientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

type listClientsResponse struct {
	Data []clientResponse `json:"data"`
}

// Create handles POST /v1/clients.
//
// @Summary      Create a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client fields"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	detail, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toClientResponse(detail))
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	detail, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(detail))
}

// List handles GET /v1/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {object}  listClientsResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	data := make([]clientResponse, len(clients))
	for i := range clients {
		data[i] = toClientResponse(&clients[i])
	}
	return c.JSON(http.StatusOK, listClientsResponse{Data: data})
}

// Update handles PUT /v1/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	detail, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(detail))
}

// Delete handles DELETE /v1/clients/:id. Invoices referencing the client
// are untouched; their client name resolves to a fallback label afterwards.
//
// @Summary      Delete a client
// @Tags         clients
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toClientResponse(d *ports.ClientDetail) clientResponse {
	return clientResponse{
		ID:      d.ID,
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Address: d.Address,
		Company: d.Company,
	}
}
