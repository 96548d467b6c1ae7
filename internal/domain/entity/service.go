package entity

import "github.com/shopspring/decimal"

// Ciclos de facturación.
const (
	BillingMonthly = "monthly"
	BillingAnnual  = "annual"
	BillingOneTime = "oneTime"
)

// Service es un servicio administrado del catálogo (hosting, soporte, etc.).
type Service struct {
	ID           int
	Name         string
	Category     string // etiqueta libre
	Price        decimal.Decimal
	BillingCycle string
	Description  string
}

// ValidBillingCycle indica si s es un ciclo de facturación permitido.
func ValidBillingCycle(s string) bool {
	return s == BillingMonthly || s == BillingAnnual || s == BillingOneTime
}
