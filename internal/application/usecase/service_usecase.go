package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// ServiceUseCase casos de uso del catálogo de servicios.
type ServiceUseCase struct {
	services repository.ServiceRepository
	clients  repository.ClientRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(services repository.ServiceRepository, clients repository.ClientRepository) *ServiceUseCase {
	return &ServiceUseCase{services: services, clients: clients}
}

// List devuelve los servicios que pasan los filtros activos. El filtro
// ClientID limita a los servicios contratados por ese cliente.
func (uc *ServiceUseCase) List(filter dto.ServiceFilter) ([]dto.ServiceResponse, error) {
	all, err := uc.services.GetAll()
	if err != nil {
		return nil, err
	}

	var contracted map[int]bool
	if filter.ClientID > 0 {
		client, err := uc.clients.GetByID(filter.ClientID)
		if err != nil {
			return nil, err
		}
		contracted = make(map[int]bool, len(client.ServiceIDs))
		for _, id := range client.ServiceIDs {
			contracted[id] = true
		}
	}

	out := make([]dto.ServiceResponse, 0, len(all))
	for _, s := range all {
		if contracted != nil && !contracted[s.ID] {
			continue
		}
		if !matchService(s, filter) {
			continue
		}
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// GetByID devuelve el servicio o domain.ErrNotFound.
func (uc *ServiceUseCase) GetByID(id int) (*dto.ServiceResponse, error) {
	s, err := uc.services.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toServiceResponse(s)
	return &resp, nil
}

// Create da de alta un servicio. El nombre es obligatorio, el precio no puede
// ser negativo y el ciclo de facturación debe ser válido.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	cycle := in.BillingCycle
	if cycle == "" {
		cycle = entity.BillingMonthly
	}
	if !entity.ValidBillingCycle(cycle) {
		return nil, fmt.Errorf("billingCycle %q inválido: %w", cycle, domain.ErrInvalidInput)
	}

	service := &entity.Service{
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		BillingCycle: cycle,
		Description:  in.Description,
	}
	if err := uc.services.Create(service); err != nil {
		return nil, err
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// Update aplica una mezcla parcial sobre el servicio existente.
func (uc *ServiceUseCase) Update(id int, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		service.Price = *in.Price
	}
	if in.BillingCycle != nil {
		if !entity.ValidBillingCycle(*in.BillingCycle) {
			return nil, fmt.Errorf("billingCycle %q inválido: %w", *in.BillingCycle, domain.ErrInvalidInput)
		}
		service.BillingCycle = *in.BillingCycle
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if err := uc.services.Update(service); err != nil {
		return nil, err
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// Delete elimina el servicio o falla con domain.ErrNotFound.
func (uc *ServiceUseCase) Delete(id int) error {
	return uc.services.Delete(id)
}

// Summary compone el detalle del servicio: clientes que lo tienen contratado,
// cuántos de ellos están activos y el ingreso mensual estimado
// (precio × clientes activos).
func (uc *ServiceUseCase) Summary(id int) (*dto.ServiceSummaryResponse, error) {
	service, err := uc.services.GetByID(id)
	if err != nil {
		return nil, err
	}
	allClients, err := uc.clients.GetAll()
	if err != nil {
		return nil, err
	}

	clients := make([]dto.ClientResponse, 0)
	active := 0
	for _, c := range allClients {
		if !c.HasService(id) {
			continue
		}
		clients = append(clients, toClientResponse(c))
		if c.Status == entity.ClientStatusActive {
			active++
		}
	}

	return &dto.ServiceSummaryResponse{
		Service:          toServiceResponse(service),
		Clients:          clients,
		ActiveClients:    active,
		EstimatedRevenue: service.Price.Mul(decimal.NewFromInt(int64(active))),
	}, nil
}
