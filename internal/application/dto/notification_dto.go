package dto

import "time"

// CreateNotificationRequest datos para registrar una notificación.
// ClientID nil implica una difusión general (type broadcast).
type CreateNotificationRequest struct {
	ClientID *int   `json:"clientId"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

// UpdateNotificationRequest actualización parcial: solo los campos presentes se aplican.
type UpdateNotificationRequest struct {
	ClientID *int    `json:"clientId"`
	Message  *string `json:"message"`
	Type     *string `json:"type"`
	Status   *string `json:"status"`
}

// NotificationResponse forma de notificación que consume la UI.
type NotificationResponse struct {
	ID        int       `json:"Id"`
	ClientID  *int      `json:"clientId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationFilter filtros del listado.
type NotificationFilter struct {
	Search string `query:"search"`
	Type   string `query:"type"`
	Status string `query:"status"`
}
