package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/application/usecase"
)

// ServiceHandler maneja las peticiones HTTP del catálogo de servicios.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List GET /api/services?search=&category=&client_id=
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	var filter dto.ServiceFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondInvalidBody(c)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/services/:id
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	service, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(service)
}

// Create POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	service, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// Update PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	service, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(service)
}

// Delete DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary GET /api/services/:id/summary
func (h *ServiceHandler) Summary(c *fiber.Ctx) error {
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
