package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cotización.
const (
	QuotePending  = "Pendiente"
	QuoteApproved = "Aprobada"
	QuoteRejected = "Rechazada"
)

// TaxRate es el IVA aplicado a toda cotización (México: 16%).
var TaxRate = decimal.NewFromFloat(0.16)

// QuoteItem es una línea de cotización. Total se recalcula siempre como
// Quantity × UnitPrice; nunca se confía en el valor recibido.
type QuoteItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Quote es una cotización emitida a un cliente. Subtotal, Tax y Total son
// campos derivados de Items y se recalculan en cada escritura que los toca.
type Quote struct {
	ID          int
	ClientID    int
	ClientName  string // snapshot desnormalizado del nombre del cliente
	QuoteNumber string // formato COT-<año>-<seq>
	Title       string
	Description string
	Items       []QuoteItem
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	Status      string
	ValidUntil  time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidQuoteStatus indica si s es un estado permitido.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuotePending, QuoteApproved, QuoteRejected:
		return true
	}
	return false
}

// RecalculateTotals recalcula el total de cada línea y los montos derivados:
// subtotal = Σ cantidad×precio unitario, tax = subtotal×0.16, total = subtotal+tax.
// Cantidades o precios ausentes (cero) aportan cero.
func (q *Quote) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range q.Items {
		q.Items[i].Total = q.Items[i].Quantity.Mul(q.Items[i].UnitPrice)
		subtotal = subtotal.Add(q.Items[i].Total)
	}
	q.Subtotal = subtotal
	q.Tax = subtotal.Mul(TaxRate)
	q.Total = subtotal.Add(q.Tax)
}
