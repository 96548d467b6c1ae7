package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/application/usecase"
)

// TicketHandler maneja las peticiones HTTP de tickets de soporte.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// List GET /api/tickets?search=&status=&priority=&client_id=&service_id=
func (h *TicketHandler) List(c *fiber.Ctx) error {
	var filter dto.TicketFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondInvalidBody(c)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/tickets/:id
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	ticket, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ticket)
}

// Create POST /api/tickets
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	ticket, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// Update PUT /api/tickets/:id
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	ticket, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ticket)
}

// Delete DELETE /api/tickets/:id
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMessage POST /api/tickets/:id/messages
func (h *TicketHandler) AddMessage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.AddMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	ticket, err := h.uc.AddMessage(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}
