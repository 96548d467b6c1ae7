// Package memory implementa el backend en memoria del almacén de registros.
//
// Un único Store posee las seis colecciones detrás de un mutex: cada operación
// ejecuta la secuencia completa leer/mezclar/reemplazar antes de devolver el
// control, lo que preserva la atomicidad lógica de escritor único que asume el
// sistema. Las lecturas devuelven siempre copias profundas; mutar el resultado
// no afecta el estado almacenado.
//
// Los IDs se asignan con un contador por colección sembrado desde el ID máximo
// de los datos semilla, de modo que nunca se reutiliza un ID aunque se borre el
// registro más alto.
package memory

import (
	"sync"

	"github.com/soportec/gestor-api/internal/domain/entity"
)

// Store es la celda mutable de dueño único que respalda a los repositorios en
// memoria. Construir uno por proceso (o por test) e inyectarlo.
type Store struct {
	mu sync.Mutex

	clients       []entity.Client
	services      []entity.Service
	tickets       []entity.Ticket
	team          []entity.TeamMember
	quotes        []entity.Quote
	notifications []entity.Notification

	nextClientID       int
	nextServiceID      int
	nextTicketID       int
	nextTeamID         int
	nextQuoteID        int
	nextNotificationID int
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		nextClientID:       1,
		nextServiceID:      1,
		nextTicketID:       1,
		nextTeamID:         1,
		nextQuoteID:        1,
		nextNotificationID: 1,
	}
}

// NewSeededStore crea un Store poblado con el dataset semilla.
func NewSeededStore() *Store {
	s := NewStore()
	s.clients = seedClients()
	s.services = seedServices()
	s.tickets = seedTickets()
	s.team = seedTeam()
	s.quotes = seedQuotes()
	s.notifications = seedNotifications()

	s.nextClientID = maxID(s.clients, func(c entity.Client) int { return c.ID }) + 1
	s.nextServiceID = maxID(s.services, func(v entity.Service) int { return v.ID }) + 1
	s.nextTicketID = maxID(s.tickets, func(t entity.Ticket) int { return t.ID }) + 1
	s.nextTeamID = maxID(s.team, func(m entity.TeamMember) int { return m.ID }) + 1
	s.nextQuoteID = maxID(s.quotes, func(q entity.Quote) int { return q.ID }) + 1
	s.nextNotificationID = maxID(s.notifications, func(n entity.Notification) int { return n.ID }) + 1
	return s
}

func maxID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if id(it) > max {
			max = id(it)
		}
	}
	return max
}

// ── Copias profundas ──────────────────────────────────────────────────────────
//
// Los campos anidados (contactos, referencias a servicios, mensajes, líneas de
// cotización) se clonan para que el llamador no pueda mutar el estado interno.

func copyClient(c entity.Client) entity.Client {
	out := c
	out.Contacts = append([]entity.Contact(nil), c.Contacts...)
	out.ServiceIDs = append([]int(nil), c.ServiceIDs...)
	return out
}

func copyTicket(t entity.Ticket) entity.Ticket {
	out := t
	out.Messages = append([]entity.Message(nil), t.Messages...)
	return out
}

func copyQuote(q entity.Quote) entity.Quote {
	out := q
	out.Items = append([]entity.QuoteItem(nil), q.Items...)
	return out
}

func copyNotification(n entity.Notification) entity.Notification {
	out := n
	if n.ClientID != nil {
		id := *n.ClientID
		out.ClientID = &id
	}
	return out
}
