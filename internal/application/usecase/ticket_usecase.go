package usecase

import (
	"fmt"
	"time"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// TicketUseCase casos de uso de tickets de soporte, incluida la conversación.
type TicketUseCase struct {
	tickets repository.TicketRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(tickets repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{tickets: tickets}
}

// List devuelve los tickets que pasan los filtros activos, en orden de inserción.
func (uc *TicketUseCase) List(filter dto.TicketFilter) ([]dto.TicketResponse, error) {
	all, err := uc.tickets.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0, len(all))
	for _, t := range all {
		if !matchTicket(t, filter) {
			continue
		}
		out = append(out, toTicketResponse(t))
	}
	return out, nil
}

// GetByID devuelve el ticket o domain.ErrNotFound.
func (uc *TicketUseCase) GetByID(id int) (*dto.TicketResponse, error) {
	t, err := uc.tickets.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toTicketResponse(t)
	return &resp, nil
}

// Create abre un ticket. El asunto y las referencias a cliente y servicio son
// obligatorios (la existencia del cliente/servicio no se verifica: las
// referencias colgantes se toleran al leer). El ticket nace en estado "open"
// con conversación vacía.
func (uc *TicketUseCase) Create(in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.Subject == "" {
		return nil, fmt.Errorf("subject es requerido: %w", domain.ErrInvalidInput)
	}
	if in.ClientID <= 0 || in.ServiceID <= 0 {
		return nil, fmt.Errorf("clientId y serviceId son requeridos: %w", domain.ErrInvalidInput)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidTicketPriority(priority) {
		return nil, fmt.Errorf("priority %q inválida: %w", priority, domain.ErrInvalidInput)
	}

	ticket := &entity.Ticket{
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		Subject:   in.Subject,
		Priority:  priority,
		Status:    entity.TicketOpen,
		Messages:  []entity.Message{},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.tickets.Create(ticket); err != nil {
		return nil, err
	}
	resp := toTicketResponse(ticket)
	return &resp, nil
}

// Update aplica una mezcla parcial sobre el ticket existente. El almacén
// acepta cualquiera de los cuatro estados; la progresión la impone la UI.
func (uc *TicketUseCase) Update(id int, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.tickets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != nil {
		ticket.ClientID = *in.ClientID
	}
	if in.ServiceID != nil {
		ticket.ServiceID = *in.ServiceID
	}
	if in.Subject != nil {
		ticket.Subject = *in.Subject
	}
	if in.Priority != nil {
		if !entity.ValidTicketPriority(*in.Priority) {
			return nil, fmt.Errorf("priority %q inválida: %w", *in.Priority, domain.ErrInvalidInput)
		}
		ticket.Priority = *in.Priority
	}
	if in.Status != nil {
		if !entity.ValidTicketStatus(*in.Status) {
			return nil, fmt.Errorf("status %q inválido: %w", *in.Status, domain.ErrInvalidInput)
		}
		ticket.Status = *in.Status
	}
	if err := uc.tickets.Update(ticket); err != nil {
		return nil, err
	}
	resp := toTicketResponse(ticket)
	return &resp, nil
}

// Delete elimina el ticket o falla con domain.ErrNotFound.
func (uc *TicketUseCase) Delete(id int) error {
	return uc.tickets.Delete(id)
}

// AddMessage agrega una entrada a la conversación del ticket. El ID del
// mensaje es max(ids)+1 dentro del ticket y el timestamp lo pone el servidor.
func (uc *TicketUseCase) AddMessage(ticketID int, in dto.AddMessageRequest) (*dto.TicketResponse, error) {
	if in.Content == "" {
		return nil, fmt.Errorf("content es requerido: %w", domain.ErrInvalidInput)
	}
	if !entity.ValidSender(in.Sender) {
		return nil, fmt.Errorf("sender %q inválido: %w", in.Sender, domain.ErrInvalidInput)
	}

	ticket, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	ticket.Messages = append(ticket.Messages, entity.Message{
		ID:        ticket.NextMessageID(),
		Content:   in.Content,
		Sender:    in.Sender,
		Timestamp: time.Now().UTC(),
	})
	if err := uc.tickets.Update(ticket); err != nil {
		return nil, err
	}
	resp := toTicketResponse(ticket)
	return &resp, nil
}
