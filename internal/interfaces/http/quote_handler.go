package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/application/usecase"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones.
type QuoteHandler struct {
	uc  *usecase.QuoteUseCase
	pdf *usecase.QuotePDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, pdf *usecase.QuotePDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdf: pdf}
}

// List GET /api/quotes?search=&status=&client_id=
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var filter dto.QuoteFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondInvalidBody(c)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	quote, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quote)
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	quote, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// Update PUT /api/quotes/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	quote, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quote)
}

// UpdateStatus PATCH /api/quotes/:id/status
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	var in dto.UpdateQuoteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	quote, err := h.uc.UpdateStatus(id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quote)
}

// Delete DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/quotes/:id/pdf
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondInvalidBody(c)
	}
	data, filename, err := h.pdf.Generate(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
