package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest datos para crear un servicio del catálogo.
type CreateServiceRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
	Description  string          `json:"description"`
}

// UpdateServiceRequest actualización parcial: solo los campos presentes se aplican.
type UpdateServiceRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	BillingCycle *string          `json:"billingCycle"`
	Description  *string          `json:"description"`
}

// ServiceResponse forma de servicio que consume la UI.
type ServiceResponse struct {
	ID           int             `json:"Id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
	Description  string          `json:"description"`
}

// ServiceFilter filtros del listado. Category vacía o "all" no filtra.
type ServiceFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	ClientID int    `query:"client_id"`
}

// ServiceSummaryResponse composición para la página de detalle de servicio.
// EstimatedRevenue = precio × clientes activos que tienen contratado el servicio.
type ServiceSummaryResponse struct {
	Service          ServiceResponse  `json:"service"`
	Clients          []ClientResponse `json:"clients"`
	ActiveClients    int              `json:"activeClients"`
	EstimatedRevenue decimal.Decimal  `json:"estimatedRevenue"`
}
