package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación PostgreSQL de ClientRepository.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, company_name, rfc, contacts, services, status, created_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var contacts, services, status string
	if err := row.Scan(&c.ID, &c.CompanyName, &c.RFC, &contacts, &services, &status, &c.CreatedAt); err != nil {
		return nil, err
	}
	decoded, err := DecodeContacts(contacts)
	if err != nil {
		return nil, err
	}
	c.Contacts = decoded
	c.ServiceIDs = DecodeIDList(services)
	c.Status = fallback(status, entity.ClientStatusActive)
	return &c, nil
}

// GetAll devuelve todos los clientes en orden de inserción.
func (r *ClientRepo) GetAll() ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, remoteErr("listar clientes", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, remoteErr("scan cliente", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("listar clientes", err)
	}
	return list, nil
}

// GetByID obtiene un cliente por ID o domain.ErrNotFound.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener cliente", err)
	}
	return c, nil
}

// Create inserta el cliente y asigna su ID desde la columna identidad.
func (r *ClientRepo) Create(client *entity.Client) error {
	contacts, err := EncodeContacts(client.Contacts)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(context.Background(), `
		INSERT INTO clients (company_name, rfc, contacts, services, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		client.CompanyName, client.RFC, contacts, EncodeIDList(client.ServiceIDs),
		client.Status, client.CreatedAt,
	).Scan(&client.ID)
	if err != nil {
		return remoteErr("insert cliente", err)
	}
	return nil
}

// Update reemplaza los campos del cliente; domain.ErrNotFound si no existe.
func (r *ClientRepo) Update(client *entity.Client) error {
	contacts, err := EncodeContacts(client.Contacts)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(), `
		UPDATE clients SET company_name = $2, rfc = $3, contacts = $4, services = $5, status = $6
		WHERE id = $1`,
		client.ID, client.CompanyName, client.RFC, contacts,
		EncodeIDList(client.ServiceIDs), client.Status,
	)
	if err != nil {
		return remoteErr("update cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el cliente por ID; domain.ErrNotFound si no existe.
func (r *ClientRepo) Delete(id int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return remoteErr("delete cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
