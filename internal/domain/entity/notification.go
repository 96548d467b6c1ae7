package entity

import "time"

// Tipos de notificación.
const (
	NotificationIndividual = "individual"
	NotificationBroadcast  = "broadcast"
)

// Estados de envío.
const (
	NotificationSent    = "sent"
	NotificationPending = "pending"
	NotificationFailed  = "failed"
)

// Notification es un aviso dirigido a un cliente o a todos (ClientID nil =
// difusión general).
type Notification struct {
	ID        int
	ClientID  *int
	Message   string
	Type      string
	Status    string
	Timestamp time.Time
}

// ValidNotificationType indica si s es un tipo permitido.
func ValidNotificationType(s string) bool {
	return s == NotificationIndividual || s == NotificationBroadcast
}

// ValidNotificationStatus indica si s es un estado permitido.
func ValidNotificationStatus(s string) bool {
	switch s {
	case NotificationSent, NotificationPending, NotificationFailed:
		return true
	}
	return false
}
