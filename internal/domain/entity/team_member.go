package entity

import "time"

// Roles del equipo.
const (
	RoleSuperadmin  = "Superadmin"
	RoleAdmin       = "Admin"
	RoleColaborator = "Colaborator"
)

// Estados de miembro del equipo.
const (
	MemberActive   = "Activo"
	MemberInactive = "Inactivo"
)

// TeamMember es un integrante del equipo interno. El email es único en la
// colección (comparación sin distinguir mayúsculas) y siempre debe quedar al
// menos un Superadmin.
type TeamMember struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles devuelve la lista fija de roles asignables.
func Roles() []string {
	return []string{RoleSuperadmin, RoleAdmin, RoleColaborator}
}

// ValidRole indica si s es un rol permitido.
func ValidRole(s string) bool {
	switch s {
	case RoleSuperadmin, RoleAdmin, RoleColaborator:
		return true
	}
	return false
}

// ValidMemberStatus indica si s es un estado permitido.
func ValidMemberStatus(s string) bool {
	return s == MemberActive || s == MemberInactive
}
