package memory

import (
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación en memoria de TicketRepository.
type TicketRepo struct {
	store *Store
}

// NewTicketRepository construye el adaptador sobre el Store compartido.
func NewTicketRepository(store *Store) *TicketRepo {
	return &TicketRepo{store: store}
}

// GetAll devuelve copias de todos los tickets en orden de inserción.
func (r *TicketRepo) GetAll() ([]*entity.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Ticket, 0, len(r.store.tickets))
	for _, t := range r.store.tickets {
		tt := copyTicket(t)
		out = append(out, &tt)
	}
	return out, nil
}

// GetByID devuelve una copia del ticket o domain.ErrNotFound.
func (r *TicketRepo) GetByID(id int) (*entity.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.tickets {
		if t.ID == id {
			tt := copyTicket(t)
			return &tt, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create asigna el siguiente ID y agrega el ticket al final de la colección.
func (r *TicketRepo) Create(ticket *entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ticket.ID = r.store.nextTicketID
	r.store.nextTicketID++
	r.store.tickets = append(r.store.tickets, copyTicket(*ticket))
	return nil
}

// Update reemplaza el registro con el mismo ID o falla con domain.ErrNotFound.
func (r *TicketRepo) Update(ticket *entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, t := range r.store.tickets {
		if t.ID == ticket.ID {
			r.store.tickets[i] = copyTicket(*ticket)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el ticket o falla con domain.ErrNotFound.
func (r *TicketRepo) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, t := range r.store.tickets {
		if t.ID == id {
			r.store.tickets = append(r.store.tickets[:i], r.store.tickets[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
