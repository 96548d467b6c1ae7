package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación PostgreSQL de TeamRepository. La unicidad de email
// la respalda un índice único sobre LOWER(email); la violación se traduce a
// domain.ErrEmailAlreadyExists.
type TeamRepo struct {
	q Querier
}

// NewTeamRepository construye el adaptador.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

const teamColumns = `id, name, email, phone, role, status, created_at, updated_at`

func scanTeamMember(row pgx.Row) (*entity.TeamMember, error) {
	var m entity.TeamMember
	var status string
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Role, &status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Status = fallback(status, entity.MemberActive)
	return &m, nil
}

// GetAll devuelve todos los miembros en orden de inserción.
func (r *TeamRepo) GetAll() ([]*entity.TeamMember, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+teamColumns+` FROM team_members ORDER BY id`)
	if err != nil {
		return nil, remoteErr("listar equipo", err)
	}
	defer rows.Close()
	var list []*entity.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, remoteErr("scan miembro", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("listar equipo", err)
	}
	return list, nil
}

// GetByID obtiene un miembro por ID o domain.ErrNotFound.
func (r *TeamRepo) GetByID(id int) (*entity.TeamMember, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id)
	m, err := scanTeamMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener miembro", err)
	}
	return m, nil
}

// GetByEmail busca por email sin distinguir mayúsculas.
func (r *TeamRepo) GetByEmail(email string) (*entity.TeamMember, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+teamColumns+` FROM team_members WHERE LOWER(email) = LOWER($1)`, email)
	m, err := scanTeamMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener miembro por email", err)
	}
	return m, nil
}

// CountByRole cuenta los miembros con el rol dado.
func (r *TeamRepo) CountByRole(role string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM team_members WHERE role = $1`, role).Scan(&n)
	if err != nil {
		return 0, remoteErr("contar por rol", err)
	}
	return n, nil
}

// Create inserta el miembro y asigna su ID desde la columna identidad.
func (r *TeamRepo) Create(member *entity.TeamMember) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO team_members (name, email, phone, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		member.Name, member.Email, member.Phone, member.Role, member.Status,
		member.CreatedAt, member.UpdatedAt,
	).Scan(&member.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return remoteErr("insert miembro", err)
	}
	return nil
}

// Update reemplaza los campos del miembro; domain.ErrNotFound si no existe.
func (r *TeamRepo) Update(member *entity.TeamMember) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE team_members SET name = $2, email = $3, phone = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`,
		member.ID, member.Name, member.Email, member.Phone, member.Role,
		member.Status, member.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return remoteErr("update miembro", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el miembro por ID; domain.ErrNotFound si no existe. La regla
// del último Superadmin vive en el caso de uso.
func (r *TeamRepo) Delete(id int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return remoteErr("delete miembro", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
