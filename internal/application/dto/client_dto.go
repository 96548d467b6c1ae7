package dto

import "time"

// ContactPayload contacto dentro de un cliente (entrada y salida).
type ContactPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

// CreateClientRequest datos para crear un cliente.
type CreateClientRequest struct {
	CompanyName string           `json:"companyName"`
	RFC         string           `json:"rfc"`
	Contacts    []ContactPayload `json:"contacts"`
	ServiceIDs  []int            `json:"services"`
	Status      string           `json:"status"`
}

// UpdateClientRequest actualización parcial: solo los campos presentes se aplican.
type UpdateClientRequest struct {
	CompanyName *string           `json:"companyName"`
	RFC         *string           `json:"rfc"`
	Contacts    *[]ContactPayload `json:"contacts"`
	ServiceIDs  *[]int            `json:"services"`
	Status      *string           `json:"status"`
}

// ClientResponse forma de cliente que consume la UI.
type ClientResponse struct {
	ID          int              `json:"Id"`
	CompanyName string           `json:"companyName"`
	RFC         string           `json:"rfc"`
	Contacts    []ContactPayload `json:"contacts"`
	ServiceIDs  []int            `json:"services"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ClientFilter filtros del listado; los activos se combinan con AND.
// Status vacío o "all" no filtra.
type ClientFilter struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	ServiceID int    `query:"service_id"`
}

// ClientSummaryResponse composición para la página de detalle de cliente.
type ClientSummaryResponse struct {
	Client      ClientResponse    `json:"client"`
	Services    []ServiceResponse `json:"services"`
	Tickets     []TicketResponse  `json:"tickets"`
	OpenTickets int               `json:"openTickets"`
}
