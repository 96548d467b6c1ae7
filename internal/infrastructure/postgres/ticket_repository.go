package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación PostgreSQL de TicketRepository.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, client_id, service_id, subject, priority, status, messages, created_at`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	var priority, status, messages string
	if err := row.Scan(&t.ID, &t.ClientID, &t.ServiceID, &t.Subject, &priority, &status, &messages, &t.CreatedAt); err != nil {
		return nil, err
	}
	decoded, err := DecodeMessages(messages)
	if err != nil {
		return nil, err
	}
	t.Messages = decoded
	t.Priority = fallback(priority, entity.PriorityMedium)
	t.Status = fallback(status, entity.TicketOpen)
	return &t, nil
}

// GetAll devuelve todos los tickets en orden de inserción.
func (r *TicketRepo) GetAll() ([]*entity.Ticket, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+ticketColumns+` FROM tickets ORDER BY id`)
	if err != nil {
		return nil, remoteErr("listar tickets", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, remoteErr("scan ticket", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("listar tickets", err)
	}
	return list, nil
}

// GetByID obtiene un ticket por ID o domain.ErrNotFound.
func (r *TicketRepo) GetByID(id int) (*entity.Ticket, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener ticket", err)
	}
	return t, nil
}

// Create inserta el ticket y asigna su ID desde la columna identidad.
func (r *TicketRepo) Create(ticket *entity.Ticket) error {
	messages, err := EncodeMessages(ticket.Messages)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(context.Background(), `
		INSERT INTO tickets (client_id, service_id, subject, priority, status, messages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		ticket.ClientID, ticket.ServiceID, ticket.Subject, ticket.Priority,
		ticket.Status, messages, ticket.CreatedAt,
	).Scan(&ticket.ID)
	if err != nil {
		return remoteErr("insert ticket", err)
	}
	return nil
}

// Update reemplaza los campos del ticket; domain.ErrNotFound si no existe.
func (r *TicketRepo) Update(ticket *entity.Ticket) error {
	messages, err := EncodeMessages(ticket.Messages)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(), `
		UPDATE tickets SET client_id = $2, service_id = $3, subject = $4, priority = $5, status = $6, messages = $7
		WHERE id = $1`,
		ticket.ID, ticket.ClientID, ticket.ServiceID, ticket.Subject,
		ticket.Priority, ticket.Status, messages,
	)
	if err != nil {
		return remoteErr("update ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ticket por ID; domain.ErrNotFound si no existe.
func (r *TicketRepo) Delete(id int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return remoteErr("delete ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
