package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemPayload línea de cotización. El total por línea y los montos
// derivados los calcula siempre el servidor.
type QuoteItemPayload struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// QuoteItemResponse línea de cotización con su total calculado.
type QuoteItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// CreateQuoteRequest datos para emitir una cotización.
type CreateQuoteRequest struct {
	ClientID    int                `json:"clientId"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Items       []QuoteItemPayload `json:"items"`
	Status      string             `json:"status"`
	ValidUntil  time.Time          `json:"validUntil"`
	Notes       string             `json:"notes"`
}

// UpdateQuoteRequest actualización parcial: solo los campos presentes se
// aplican; si Items viene, los montos derivados se recalculan.
type UpdateQuoteRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Items       *[]QuoteItemPayload `json:"items"`
	Status      *string             `json:"status"`
	ValidUntil  *time.Time          `json:"validUntil"`
	Notes       *string             `json:"notes"`
}

// UpdateQuoteStatusRequest cambio de estado de una cotización.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

// QuoteResponse forma de cotización que consume la UI.
type QuoteResponse struct {
	ID          int                 `json:"Id"`
	ClientID    int                 `json:"clientId"`
	ClientName  string              `json:"clientName"`
	QuoteNumber string              `json:"quoteNumber"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Items       []QuoteItemResponse `json:"items"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Tax         decimal.Decimal     `json:"tax"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	ValidUntil  time.Time           `json:"validUntil"`
	Notes       string              `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// QuoteFilter filtros del listado. Status vacío o "all" no filtra.
type QuoteFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	ClientID int    `query:"client_id"`
}
