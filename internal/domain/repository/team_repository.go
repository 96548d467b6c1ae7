package repository

import "github.com/soportec/gestor-api/internal/domain/entity"

// TeamRepository define el puerto de persistencia para TeamMember.
// GetByEmail compara sin distinguir mayúsculas y falla con domain.ErrNotFound
// si no hay coincidencia. CountByRole cuenta los miembros con el rol dado.
type TeamRepository interface {
	GetAll() ([]*entity.TeamMember, error)
	GetByID(id int) (*entity.TeamMember, error)
	GetByEmail(email string) (*entity.TeamMember, error)
	CountByRole(role string) (int, error)
	Create(member *entity.TeamMember) error
	Update(member *entity.TeamMember) error
	Delete(id int) error
}
