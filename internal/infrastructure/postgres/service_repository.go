package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación PostgreSQL de ServiceRepository.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, name, category, price, billing_cycle, description`

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.BillingCycle, &s.Description); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll devuelve todos los servicios en orden de inserción.
func (r *ServiceRepo) GetAll() ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+serviceColumns+` FROM services ORDER BY id`)
	if err != nil {
		return nil, remoteErr("listar servicios", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, remoteErr("scan servicio", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("listar servicios", err)
	}
	return list, nil
}

// GetByID obtiene un servicio por ID o domain.ErrNotFound.
func (r *ServiceRepo) GetByID(id int) (*entity.Service, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener servicio", err)
	}
	return s, nil
}

// Create inserta el servicio y asigna su ID desde la columna identidad.
func (r *ServiceRepo) Create(service *entity.Service) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO services (name, category, price, billing_cycle, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		service.Name, service.Category, service.Price, service.BillingCycle, service.Description,
	).Scan(&service.ID)
	if err != nil {
		return remoteErr("insert servicio", err)
	}
	return nil
}

// Update reemplaza los campos del servicio; domain.ErrNotFound si no existe.
func (r *ServiceRepo) Update(service *entity.Service) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE services SET name = $2, category = $3, price = $4, billing_cycle = $5, description = $6
		WHERE id = $1`,
		service.ID, service.Name, service.Category, service.Price, service.BillingCycle, service.Description,
	)
	if err != nil {
		return remoteErr("update servicio", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el servicio por ID; domain.ErrNotFound si no existe.
func (r *ServiceRepo) Delete(id int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return remoteErr("delete servicio", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
