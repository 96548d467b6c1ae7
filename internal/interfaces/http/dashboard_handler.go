package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/usecase"
)

// DashboardHandler expone los indicadores del tablero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
