package memory

import (
	"strings"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación en memoria de TeamRepository.
type TeamRepo struct {
	store *Store
}

// NewTeamRepository construye el adaptador sobre el Store compartido.
func NewTeamRepository(store *Store) *TeamRepo {
	return &TeamRepo{store: store}
}

// GetAll devuelve copias de todos los miembros en orden de inserción.
func (r *TeamRepo) GetAll() ([]*entity.TeamMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.TeamMember, 0, len(r.store.team))
	for _, m := range r.store.team {
		mm := m
		out = append(out, &mm)
	}
	return out, nil
}

// GetByID devuelve una copia del miembro o domain.ErrNotFound.
func (r *TeamRepo) GetByID(id int) (*entity.TeamMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.team {
		if m.ID == id {
			mm := m
			return &mm, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByEmail busca por email sin distinguir mayúsculas.
func (r *TeamRepo) GetByEmail(email string) (*entity.TeamMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.team {
		if strings.EqualFold(m.Email, email) {
			mm := m
			return &mm, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CountByRole cuenta los miembros con el rol dado.
func (r *TeamRepo) CountByRole(role string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n := 0
	for _, m := range r.store.team {
		if m.Role == role {
			n++
		}
	}
	return n, nil
}

// Create asigna el siguiente ID y agrega el miembro al final de la colección.
func (r *TeamRepo) Create(member *entity.TeamMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	member.ID = r.store.nextTeamID
	r.store.nextTeamID++
	r.store.team = append(r.store.team, *member)
	return nil
}

// Update reemplaza el registro con el mismo ID o falla con domain.ErrNotFound.
func (r *TeamRepo) Update(member *entity.TeamMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, m := range r.store.team {
		if m.ID == member.ID {
			r.store.team[i] = *member
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el miembro o falla con domain.ErrNotFound. La regla del
// último Superadmin vive en el caso de uso, no aquí.
func (r *TeamRepo) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, m := range r.store.team {
		if m.ID == id {
			r.store.team = append(r.store.team[:i], r.store.team[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
