package usecase

import (
	"fmt"
	"time"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes: CRUD, filtrado y la composición de
// la página de detalle (servicios contratados + tickets del cliente).
type ClientUseCase struct {
	clients  repository.ClientRepository
	services repository.ServiceRepository
	tickets  repository.TicketRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, services repository.ServiceRepository, tickets repository.TicketRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, services: services, tickets: tickets}
}

// List devuelve los clientes que pasan todos los filtros activos, en orden de
// inserción. La búsqueda libre cubre razón social, RFC y nombre/email de los
// contactos.
func (uc *ClientUseCase) List(filter dto.ClientFilter) ([]dto.ClientResponse, error) {
	all, err := uc.clients.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(all))
	for _, c := range all {
		if !matchClient(c, filter) {
			continue
		}
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// GetByID devuelve el cliente o domain.ErrNotFound.
func (uc *ClientUseCase) GetByID(id int) (*dto.ClientResponse, error) {
	c, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toClientResponse(c)
	return &resp, nil
}

// Create da de alta un cliente. La razón social es obligatoria; el estado por
// defecto es "active".
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.CompanyName == "" {
		return nil, fmt.Errorf("companyName es requerido: %w", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	if !entity.ValidClientStatus(status) {
		return nil, fmt.Errorf("status %q inválido: %w", status, domain.ErrInvalidInput)
	}

	client := &entity.Client{
		CompanyName: in.CompanyName,
		RFC:         in.RFC,
		Contacts:    fromContactPayloads(in.Contacts),
		ServiceIDs:  append([]int{}, in.ServiceIDs...),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Update aplica una mezcla parcial sobre el cliente existente. El ID del
// registro nunca cambia.
func (uc *ClientUseCase) Update(id int, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.CompanyName != nil {
		client.CompanyName = *in.CompanyName
	}
	if in.RFC != nil {
		client.RFC = *in.RFC
	}
	if in.Contacts != nil {
		client.Contacts = fromContactPayloads(*in.Contacts)
	}
	if in.ServiceIDs != nil {
		client.ServiceIDs = append([]int{}, (*in.ServiceIDs)...)
	}
	if in.Status != nil {
		if !entity.ValidClientStatus(*in.Status) {
			return nil, fmt.Errorf("status %q inválido: %w", *in.Status, domain.ErrInvalidInput)
		}
		client.Status = *in.Status
	}
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Delete elimina el cliente o falla con domain.ErrNotFound.
func (uc *ClientUseCase) Delete(id int) error {
	return uc.clients.Delete(id)
}

// Summary compone el detalle del cliente: sus servicios contratados (las
// referencias colgantes se omiten), sus tickets y el conteo de tickets
// abiertos o en progreso.
func (uc *ClientUseCase) Summary(id int) (*dto.ClientSummaryResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}

	services := make([]dto.ServiceResponse, 0, len(client.ServiceIDs))
	for _, sid := range client.ServiceIDs {
		s, err := uc.services.GetByID(sid)
		if err != nil {
			if errorsIsNotFound(err) {
				continue // referencia colgante, tolerada al leer
			}
			return nil, err
		}
		services = append(services, toServiceResponse(s))
	}

	allTickets, err := uc.tickets.GetAll()
	if err != nil {
		return nil, err
	}
	tickets := make([]dto.TicketResponse, 0)
	open := 0
	for _, t := range allTickets {
		if t.ClientID != id {
			continue
		}
		tickets = append(tickets, toTicketResponse(t))
		if t.Status == entity.TicketOpen || t.Status == entity.TicketInProgress {
			open++
		}
	}

	return &dto.ClientSummaryResponse{
		Client:      toClientResponse(client),
		Services:    services,
		Tickets:     tickets,
		OpenTickets: open,
	}, nil
}
