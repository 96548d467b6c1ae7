package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/application/usecase"
)

// TeamHandler maneja las peticiones HTTP del equipo interno.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List GET /api/team?search=&role=&status=
func (h *TeamHandler) List(c *fiber.Ctx) error {
	var filter dto.TeamFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondInvalidBody(c)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Roles GET /api/team/roles
func (h *TeamHandler) Roles(c *fiber.Ctx) error {
	return c.JSON(h.uc.Roles())
}

// GetByID GET /api/team/:id
func (h *TeamHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	member, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(member)
}

// Create POST /api/team
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	member, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// Update PUT /api/team/:id
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	member, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(member)
}

// Delete DELETE /api/team/:id
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
