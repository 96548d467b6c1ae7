package entity

import "time"

// Prioridades de ticket.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Estados de ticket. El almacén acepta cualquiera de los cuatro; la progresión
// open→inProgress→resolved→closed la impone la capa de presentación.
const (
	TicketOpen       = "open"
	TicketInProgress = "inProgress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// Remitentes válidos de un mensaje.
const (
	SenderSupport = "support"
	SenderClient  = "client"
)

// Message es una entrada de la conversación de un ticket. Los IDs son únicos
// y crecientes dentro del ticket.
type Message struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Ticket es un caso de soporte ligado a un cliente y un servicio.
type Ticket struct {
	ID        int
	ClientID  int
	ServiceID int
	Subject   string
	Priority  string
	Status    string
	CreatedAt time.Time
	Messages  []Message
}

// ValidTicketPriority indica si s es una prioridad permitida.
func ValidTicketPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidTicketStatus indica si s es un estado permitido.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// ValidSender indica si s es un remitente permitido.
func ValidSender(s string) bool {
	return s == SenderSupport || s == SenderClient
}

// NextMessageID devuelve max(ids)+1, o 1 si no hay mensajes.
func (t *Ticket) NextMessageID() int {
	max := 0
	for _, m := range t.Messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}
