package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soportec/gestor-api/internal/domain/entity"
)

// Dataset semilla del backend en memoria. Con STORE_BACKEND=memory la
// aplicación arranca con estos registros; los tests construyen su propio Store
// vacío o sembrado según lo que necesiten.

func seedTime(day int, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}

func seedClients() []entity.Client {
	return []entity.Client{
		{
			ID:          1,
			CompanyName: "Grupo Almeda SA de CV",
			RFC:         "GAL920815JK3",
			Contacts: []entity.Contact{
				{Name: "Laura Martínez", Email: "laura@grupoalmeda.mx", Phone: "+52 55 1234 5678", Position: "Directora de TI"},
				{Name: "Pedro Sánchez", Email: "pedro@grupoalmeda.mx", Phone: "+52 55 1234 5679", Position: "Compras"},
			},
			ServiceIDs: []int{1, 2},
			Status:     entity.ClientStatusActive,
			CreatedAt:  seedTime(1, 9),
		},
		{
			ID:          2,
			CompanyName: "Ferretería El Tornillo",
			RFC:         "FET850101AB1",
			Contacts: []entity.Contact{
				{Name: "Miguel Ángel Ruiz", Email: "miguel@eltornillo.mx", Phone: "+52 33 9876 5432", Position: "Gerente"},
			},
			ServiceIDs: []int{1},
			Status:     entity.ClientStatusActive,
			CreatedAt:  seedTime(3, 11),
		},
		{
			ID:          3,
			CompanyName: "Consultores Náhuatl",
			RFC:         "CNA010203CD9",
			Contacts:    []entity.Contact{},
			ServiceIDs:  []int{3},
			Status:      entity.ClientStatusInactive,
			CreatedAt:   seedTime(5, 16),
		},
	}
}

func seedServices() []entity.Service {
	return []entity.Service{
		{ID: 1, Name: "Hosting Administrado", Category: "Infraestructura", Price: decimal.NewFromInt(1500), BillingCycle: entity.BillingMonthly, Description: "Hosting con monitoreo 24/7 y respaldos diarios"},
		{ID: 2, Name: "Soporte Premium", Category: "Soporte", Price: decimal.NewFromInt(3200), BillingCycle: entity.BillingMonthly, Description: "Mesa de ayuda con SLA de 2 horas"},
		{ID: 3, Name: "Auditoría de Seguridad", Category: "Consultoría", Price: decimal.NewFromInt(18000), BillingCycle: entity.BillingOneTime, Description: "Revisión anual de vulnerabilidades"},
		{ID: 4, Name: "Licenciamiento Office", Category: "Licencias", Price: decimal.NewFromInt(9600), BillingCycle: entity.BillingAnnual, Description: "Suite ofimática por usuario"},
	}
}

func seedTickets() []entity.Ticket {
	return []entity.Ticket{
		{
			ID: 1, ClientID: 1, ServiceID: 1,
			Subject:  "Sitio web caído desde las 3am",
			Priority: entity.PriorityUrgent,
			Status:   entity.TicketInProgress,
			Messages: []entity.Message{
				{ID: 1, Content: "El sitio no responde, clientes reportan error 502", Sender: entity.SenderClient, Timestamp: seedTime(10, 6)},
				{ID: 2, Content: "Estamos revisando el balanceador, les informamos en breve", Sender: entity.SenderSupport, Timestamp: seedTime(10, 7)},
			},
			CreatedAt: seedTime(10, 6),
		},
		{
			ID: 2, ClientID: 2, ServiceID: 1,
			Subject:   "Solicitud de certificado SSL adicional",
			Priority:  entity.PriorityLow,
			Status:    entity.TicketOpen,
			Messages:  []entity.Message{},
			CreatedAt: seedTime(11, 10),
		},
		{
			ID: 3, ClientID: 1, ServiceID: 2,
			Subject:   "Acceso VPN para nuevo empleado",
			Priority:  entity.PriorityMedium,
			Status:    entity.TicketResolved,
			Messages:  []entity.Message{},
			CreatedAt: seedTime(8, 12),
		},
	}
}

func seedTeam() []entity.TeamMember {
	return []entity.TeamMember{
		{ID: 1, Name: "Ana Torres", Email: "ana.torres@soportec.mx", Phone: "+52 55 1111 2222", Role: entity.RoleSuperadmin, Status: entity.MemberActive, CreatedAt: seedTime(1, 8), UpdatedAt: seedTime(1, 8)},
		{ID: 2, Name: "Carlos Mendoza", Email: "carlos.mendoza@soportec.mx", Phone: "+52 55 3333 4444", Role: entity.RoleAdmin, Status: entity.MemberActive, CreatedAt: seedTime(2, 8), UpdatedAt: seedTime(2, 8)},
		{ID: 3, Name: "Lucía Fernández", Email: "lucia.fernandez@soportec.mx", Phone: "+52 55 5555 6666", Role: entity.RoleColaborator, Status: entity.MemberInactive, CreatedAt: seedTime(4, 8), UpdatedAt: seedTime(6, 15)},
	}
}

func seedQuotes() []entity.Quote {
	q := entity.Quote{
		ID: 1, ClientID: 2, ClientName: "Ferretería El Tornillo",
		QuoteNumber: "COT-2024-001",
		Title:       "Migración a Hosting Administrado",
		Description: "Migración de sitio y correo al plan administrado",
		Items: []entity.QuoteItem{
			{Description: "Hosting Administrado (3 meses)", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(1500)},
			{Description: "Migración inicial", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2500)},
		},
		Status:     entity.QuotePending,
		ValidUntil: seedTime(31, 23),
		Notes:      "Precios en MXN, no incluyen dominio",
		CreatedAt:  seedTime(12, 13),
		UpdatedAt:  seedTime(12, 13),
	}
	q.RecalculateTotals()
	return []entity.Quote{q}
}

func seedNotifications() []entity.Notification {
	clientID := 1
	return []entity.Notification{
		{ID: 1, ClientID: &clientID, Message: "Su ticket #1 fue tomado por el equipo de soporte", Type: entity.NotificationIndividual, Status: entity.NotificationSent, Timestamp: seedTime(10, 7)},
		{ID: 2, ClientID: nil, Message: "Mantenimiento programado el domingo 02:00-04:00", Type: entity.NotificationBroadcast, Status: entity.NotificationSent, Timestamp: seedTime(9, 18)},
	}
}
