package usecase

import (
	"strconv"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/pkg/textutil"
)

// Motor de filtrado: predicados puros sobre una lectura fresca de la
// colección; los filtros activos se combinan con AND. El centinela "all" (o
// cadena vacía) desactiva los filtros de igualdad exacta.

func filterActive(value string) bool {
	return value != "" && value != "all"
}

func matchClient(c *entity.Client, f dto.ClientFilter) bool {
	if f.Search != "" {
		hit := textutil.ContainsFold(c.CompanyName, f.Search) ||
			textutil.ContainsFold(c.RFC, f.Search)
		for _, contact := range c.Contacts {
			if hit {
				break
			}
			hit = textutil.ContainsFold(contact.Name, f.Search) ||
				textutil.ContainsFold(contact.Email, f.Search)
		}
		if !hit {
			return false
		}
	}
	if filterActive(f.Status) && c.Status != f.Status {
		return false
	}
	if f.ServiceID > 0 && !c.HasService(f.ServiceID) {
		return false
	}
	return true
}

func matchService(s *entity.Service, f dto.ServiceFilter) bool {
	if f.Search != "" {
		if !textutil.ContainsFold(s.Name, f.Search) &&
			!textutil.ContainsFold(s.Category, f.Search) &&
			!textutil.ContainsFold(s.Description, f.Search) {
			return false
		}
	}
	if filterActive(f.Category) && s.Category != f.Category {
		return false
	}
	return true
}

func matchTicket(t *entity.Ticket, f dto.TicketFilter) bool {
	if f.Search != "" {
		if !textutil.ContainsFold(t.Subject, f.Search) &&
			!textutil.ContainsFold(strconv.Itoa(t.ID), f.Search) {
			return false
		}
	}
	if filterActive(f.Status) && t.Status != f.Status {
		return false
	}
	if filterActive(f.Priority) && t.Priority != f.Priority {
		return false
	}
	if f.ClientID > 0 && t.ClientID != f.ClientID {
		return false
	}
	if f.ServiceID > 0 && t.ServiceID != f.ServiceID {
		return false
	}
	return true
}

func matchTeamMember(m *entity.TeamMember, f dto.TeamFilter) bool {
	if f.Search != "" {
		if !textutil.ContainsFold(m.Name, f.Search) &&
			!textutil.ContainsFold(m.Email, f.Search) {
			return false
		}
	}
	if filterActive(f.Role) && m.Role != f.Role {
		return false
	}
	if filterActive(f.Status) && m.Status != f.Status {
		return false
	}
	return true
}

func matchQuote(q *entity.Quote, f dto.QuoteFilter) bool {
	if f.Search != "" {
		if !textutil.ContainsFold(q.QuoteNumber, f.Search) &&
			!textutil.ContainsFold(q.Title, f.Search) &&
			!textutil.ContainsFold(q.ClientName, f.Search) {
			return false
		}
	}
	if filterActive(f.Status) && q.Status != f.Status {
		return false
	}
	if f.ClientID > 0 && q.ClientID != f.ClientID {
		return false
	}
	return true
}

func matchNotification(n *entity.Notification, f dto.NotificationFilter) bool {
	if f.Search != "" && !textutil.ContainsFold(n.Message, f.Search) {
		return false
	}
	if filterActive(f.Type) && n.Type != f.Type {
		return false
	}
	if filterActive(f.Status) && n.Status != f.Status {
		return false
	}
	return true
}
