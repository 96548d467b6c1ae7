package entity

import "time"

// Estados de cliente.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Contact es una persona de contacto dentro de un cliente.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

// Client representa una empresa cliente del negocio de servicios administrados.
// ServiceIDs referencia servicios contratados sin integridad referencial
// forzada: un ID colgante se resuelve como "no encontrado" al leer.
type Client struct {
	ID          int
	CompanyName string
	RFC         string // identificación fiscal (México)
	Contacts    []Contact
	ServiceIDs  []int
	Status      string
	CreatedAt   time.Time
}

// ValidClientStatus indica si s es un estado de cliente permitido.
func ValidClientStatus(s string) bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

// HasService reporta si el cliente tiene contratado el servicio indicado.
func (c *Client) HasService(serviceID int) bool {
	for _, id := range c.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
