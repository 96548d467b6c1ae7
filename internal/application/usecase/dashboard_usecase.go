package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// DashboardUseCase agrega indicadores sobre una lectura fresca de las
// colecciones; no mantiene contadores materializados.
type DashboardUseCase struct {
	clients  repository.ClientRepository
	services repository.ServiceRepository
	tickets  repository.TicketRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(clients repository.ClientRepository, services repository.ServiceRepository, tickets repository.TicketRepository) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, services: services, tickets: tickets}
}

// Stats calcula los indicadores del tablero: clientes activos, tickets
// abiertos o en progreso, tamaño del catálogo e ingreso mensual (suma de
// precios de los servicios con ciclo mensual).
func (uc *DashboardUseCase) Stats() (*dto.DashboardStatsResponse, error) {
	clients, err := uc.clients.GetAll()
	if err != nil {
		return nil, err
	}
	services, err := uc.services.GetAll()
	if err != nil {
		return nil, err
	}
	tickets, err := uc.tickets.GetAll()
	if err != nil {
		return nil, err
	}

	activeClients := 0
	for _, c := range clients {
		if c.Status == entity.ClientStatusActive {
			activeClients++
		}
	}
	openTickets := 0
	for _, t := range tickets {
		if t.Status == entity.TicketOpen || t.Status == entity.TicketInProgress {
			openTickets++
		}
	}
	monthlyRevenue := decimal.Zero
	for _, s := range services {
		if s.BillingCycle == entity.BillingMonthly {
			monthlyRevenue = monthlyRevenue.Add(s.Price)
		}
	}

	return &dto.DashboardStatsResponse{
		ActiveClients:  activeClients,
		OpenTickets:    openTickets,
		TotalServices:  len(services),
		MonthlyRevenue: monthlyRevenue,
	}, nil
}
