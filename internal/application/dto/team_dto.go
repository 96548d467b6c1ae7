package dto

import "time"

// CreateTeamMemberRequest datos para dar de alta a un integrante del equipo.
type CreateTeamMemberRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UpdateTeamMemberRequest actualización parcial: solo los campos presentes se aplican.
type UpdateTeamMemberRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// TeamMemberResponse forma de integrante que consume la UI.
type TeamMemberResponse struct {
	ID        int       `json:"Id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoleOption par valor/etiqueta para el selector de roles.
type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TeamFilter filtros del listado. Role vacío o "all" no filtra.
type TeamFilter struct {
	Search string `query:"search"`
	Role   string `query:"role"`
	Status string `query:"status"`
}
