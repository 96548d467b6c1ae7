package dto

import "time"

// CreateTicketRequest datos para abrir un ticket de soporte.
type CreateTicketRequest struct {
	ClientID  int    `json:"clientId"`
	ServiceID int    `json:"serviceId"`
	Subject   string `json:"subject"`
	Priority  string `json:"priority"`
}

// UpdateTicketRequest actualización parcial: solo los campos presentes se aplican.
type UpdateTicketRequest struct {
	ClientID  *int    `json:"clientId"`
	ServiceID *int    `json:"serviceId"`
	Subject   *string `json:"subject"`
	Priority  *string `json:"priority"`
	Status    *string `json:"status"`
}

// AddMessageRequest nueva entrada de conversación en un ticket.
type AddMessageRequest struct {
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

// MessageResponse mensaje dentro de un ticket.
type MessageResponse struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// TicketResponse forma de ticket que consume la UI.
type TicketResponse struct {
	ID        int               `json:"Id"`
	ClientID  int               `json:"clientId"`
	ServiceID int               `json:"serviceId"`
	Subject   string            `json:"subject"`
	Priority  string            `json:"priority"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Messages  []MessageResponse `json:"messages"`
}

// TicketFilter filtros del listado; Search también coincide con el ID textual.
type TicketFilter struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	Priority  string `query:"priority"`
	ClientID  int    `query:"client_id"`
	ServiceID int    `query:"service_id"`
}
