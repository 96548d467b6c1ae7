package usecase

import (
	"errors"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
)

// Conversión entidad ↔ DTO. Las listas anidadas se copian para que el DTO no
// comparta memoria con la entidad.

func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func fromContactPayloads(in []dto.ContactPayload) []entity.Contact {
	out := make([]entity.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, entity.Contact{Name: c.Name, Email: c.Email, Phone: c.Phone, Position: c.Position})
	}
	return out
}

func toContactPayloads(in []entity.Contact) []dto.ContactPayload {
	out := make([]dto.ContactPayload, 0, len(in))
	for _, c := range in {
		out = append(out, dto.ContactPayload{Name: c.Name, Email: c.Email, Phone: c.Phone, Position: c.Position})
	}
	return out
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		RFC:         c.RFC,
		Contacts:    toContactPayloads(c.Contacts),
		ServiceIDs:  append([]int{}, c.ServiceIDs...),
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Price:        s.Price,
		BillingCycle: s.BillingCycle,
		Description:  s.Description,
	}
}

func toTicketResponse(t *entity.Ticket) dto.TicketResponse {
	messages := make([]dto.MessageResponse, 0, len(t.Messages))
	for _, m := range t.Messages {
		messages = append(messages, dto.MessageResponse{ID: m.ID, Content: m.Content, Sender: m.Sender, Timestamp: m.Timestamp})
	}
	return dto.TicketResponse{
		ID:        t.ID,
		ClientID:  t.ClientID,
		ServiceID: t.ServiceID,
		Subject:   t.Subject,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		Messages:  messages,
	}
}

func toTeamMemberResponse(m *entity.TeamMember) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toQuoteResponse(q *entity.Quote) dto.QuoteResponse {
	items := make([]dto.QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuoteItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return dto.QuoteResponse{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		QuoteNumber: q.QuoteNumber,
		Title:       q.Title,
		Description: q.Description,
		Items:       items,
		Subtotal:    q.Subtotal,
		Tax:         q.Tax,
		Total:       q.Total,
		Status:      q.Status,
		ValidUntil:  q.ValidUntil,
		Notes:       q.Notes,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	var clientID *int
	if n.ClientID != nil {
		id := *n.ClientID
		clientID = &id
	}
	return dto.NotificationResponse{
		ID:        n.ID,
		ClientID:  clientID,
		Message:   n.Message,
		Type:      n.Type,
		Status:    n.Status,
		Timestamp: n.Timestamp,
	}
}
