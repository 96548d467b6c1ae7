package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// TeamUseCase casos de uso del equipo interno. Hace cumplir la unicidad de
// email (sin distinguir mayúsculas) y la regla del último Superadmin.
type TeamUseCase struct {
	team repository.TeamRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(team repository.TeamRepository) *TeamUseCase {
	return &TeamUseCase{team: team}
}

// List devuelve los miembros que pasan los filtros activos, en orden de inserción.
func (uc *TeamUseCase) List(filter dto.TeamFilter) ([]dto.TeamMemberResponse, error) {
	all, err := uc.team.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(all))
	for _, m := range all {
		if !matchTeamMember(m, filter) {
			continue
		}
		out = append(out, toTeamMemberResponse(m))
	}
	return out, nil
}

// GetByID devuelve el miembro o domain.ErrNotFound.
func (uc *TeamUseCase) GetByID(id int) (*dto.TeamMemberResponse, error) {
	m, err := uc.team.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toTeamMemberResponse(m)
	return &resp, nil
}

// Roles devuelve la lista fija de roles asignables.
func (uc *TeamUseCase) Roles() []dto.RoleOption {
	roles := entity.Roles()
	out := make([]dto.RoleOption, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleOption{Value: r, Label: r})
	}
	return out
}

// Create da de alta un integrante. Nombre, email y rol son obligatorios; un
// email ya registrado (en cualquier combinación de mayúsculas) falla con
// domain.ErrEmailAlreadyExists.
func (uc *TeamUseCase) Create(in dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if in.Name == "" || in.Email == "" || in.Role == "" {
		return nil, fmt.Errorf("nombre, email y rol son requeridos: %w", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("rol %q inválido: %w", in.Role, domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.MemberActive
	}
	if !entity.ValidMemberStatus(status) {
		return nil, fmt.Errorf("status %q inválido: %w", status, domain.ErrInvalidInput)
	}
	if _, err := uc.team.GetByEmail(in.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errorsIsNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	member := &entity.TeamMember{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.team.Create(member); err != nil {
		return nil, err
	}
	resp := toTeamMemberResponse(member)
	return &resp, nil
}

// Update aplica una mezcla parcial y refresca updatedAt. Cambiar el email a
// uno ya usado por otro miembro falla con domain.ErrEmailAlreadyExists; quitarle
// el rol al último Superadmin falla con domain.ErrLastSuperadmin.
func (uc *TeamUseCase) Update(id int, in dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := uc.team.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Email != nil && !strings.EqualFold(*in.Email, member.Email) {
		existing, err := uc.team.GetByEmail(*in.Email)
		if err == nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		if err != nil && !errorsIsNotFound(err) {
			return nil, err
		}
		member.Email = *in.Email
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("rol %q inválido: %w", *in.Role, domain.ErrInvalidInput)
		}
		if member.Role == entity.RoleSuperadmin && *in.Role != entity.RoleSuperadmin {
			n, err := uc.team.CountByRole(entity.RoleSuperadmin)
			if err != nil {
				return nil, err
			}
			if n <= 1 {
				return nil, domain.ErrLastSuperadmin
			}
		}
		member.Role = *in.Role
	}
	if in.Status != nil {
		if !entity.ValidMemberStatus(*in.Status) {
			return nil, fmt.Errorf("status %q inválido: %w", *in.Status, domain.ErrInvalidInput)
		}
		member.Status = *in.Status
	}
	member.UpdatedAt = time.Now().UTC()
	if err := uc.team.Update(member); err != nil {
		return nil, err
	}
	resp := toTeamMemberResponse(member)
	return &resp, nil
}

// Delete elimina el miembro. Si es el último Superadmin de la colección, la
// operación se rechaza con domain.ErrLastSuperadmin.
func (uc *TeamUseCase) Delete(id int) error {
	member, err := uc.team.GetByID(id)
	if err != nil {
		return err
	}
	if member.Role == entity.RoleSuperadmin {
		n, err := uc.team.CountByRole(entity.RoleSuperadmin)
		if err != nil {
			return err
		}
		if n <= 1 {
			return domain.ErrLastSuperadmin
		}
	}
	return uc.team.Delete(id)
}
