package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List GET /api/clients?search=&status=&service_id=
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var filter dto.ClientFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondInvalidBody(c)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	client, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	client, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary GET /api/clients/:id/summary
func (h *ClientHandler) Summary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	summary, err := h.uc.Summary(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
