package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/application/usecase"
)

// NotificationHandler maneja las peticiones HTTP de notificaciones.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/notifications?search=&type=&status=
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var filter dto.NotificationFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondInvalidBody(c)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/notifications/:id
func (h *NotificationHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	notification, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notification)
}

// Create POST /api/notifications
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	notification, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// Update PUT /api/notifications/:id
func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	notification, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notification)
}

// Delete DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
