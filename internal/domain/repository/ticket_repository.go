package repository

import "github.com/soportec/gestor-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para Ticket.
type TicketRepository interface {
	GetAll() ([]*entity.Ticket, error)
	GetByID(id int) (*entity.Ticket, error)
	Create(ticket *entity.Ticket) error
	Update(ticket *entity.Ticket) error
	Delete(id int) error
}
