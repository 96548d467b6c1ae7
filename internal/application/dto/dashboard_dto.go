package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse indicadores del tablero principal.
// MonthlyRevenue suma el precio de los servicios con ciclo mensual.
type DashboardStatsResponse struct {
	ActiveClients  int             `json:"activeClients"`
	OpenTickets    int             `json:"openTickets"`
	TotalServices  int             `json:"totalServices"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
}
