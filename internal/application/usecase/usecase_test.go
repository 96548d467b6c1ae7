package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/infrastructure/memory"
)

func newClientUC(store *memory.Store) *ClientUseCase {
	return NewClientUseCase(
		memory.NewClientRepository(store),
		memory.NewServiceRepository(store),
		memory.NewTicketRepository(store),
	)
}

func ptr[T any](v T) *T { return &v }

func TestClientUseCase_CreaConEstadoPorDefecto(t *testing.T) {
	uc := newClientUC(memory.NewStore())

	created, err := uc.Create(dto.CreateClientRequest{CompanyName: "Acme SA de CV", RFC: "AAA010101AAA"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, entity.ClientStatusActive, created.Status)
	assert.NotNil(t, created.Contacts)
	assert.NotNil(t, created.ServiceIDs)
}

func TestClientUseCase_CreateSinRazonSocialFalla(t *testing.T) {
	uc := newClientUC(memory.NewStore())

	_, err := uc.Create(dto.CreateClientRequest{RFC: "AAA010101AAA"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientUseCase_UpdateParcialConservaID(t *testing.T) {
	uc := newClientUC(memory.NewStore())
	created, err := uc.Create(dto.CreateClientRequest{CompanyName: "Acme SA de CV"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdateClientRequest{Status: ptr(entity.ClientStatusInactive)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme SA de CV", updated.CompanyName)
	assert.Equal(t, entity.ClientStatusInactive, updated.Status)
}

func TestClientUseCase_FiltroBusquedaIgnoraAcentos(t *testing.T) {
	uc := newClientUC(memory.NewStore())
	_, err := uc.Create(dto.CreateClientRequest{CompanyName: "Cafetería El Portal"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateClientRequest{CompanyName: "Transportes del Norte"})
	require.NoError(t, err)

	got, err := uc.List(dto.ClientFilter{Search: "cafeteria"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cafetería El Portal", got[0].CompanyName)
}

func TestClientUseCase_FiltrosCombinadosConAND(t *testing.T) {
	uc := newClientUC(memory.NewStore())
	_, err := uc.Create(dto.CreateClientRequest{CompanyName: "Acme Hosting", Status: entity.ClientStatusActive, ServiceIDs: []int{1}})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateClientRequest{CompanyName: "Acme Diseño", Status: entity.ClientStatusInactive, ServiceIDs: []int{1}})
	require.NoError(t, err)

	got, err := uc.List(dto.ClientFilter{Search: "acme", Status: entity.ClientStatusActive, ServiceID: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Hosting", got[0].CompanyName)

	// "all" es centinela: no filtra por estado.
	got, err = uc.List(dto.ClientFilter{Search: "acme", Status: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientUseCase_SummaryOmiteReferenciasColgantes(t *testing.T) {
	store := memory.NewStore()
	uc := newClientUC(store)
	svcUC := NewServiceUseCase(memory.NewServiceRepository(store), memory.NewClientRepository(store))
	tktUC := NewTicketUseCase(memory.NewTicketRepository(store))

	svc, err := svcUC.Create(dto.CreateServiceRequest{Name: "Hosting", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	client, err := uc.Create(dto.CreateClientRequest{CompanyName: "Acme", ServiceIDs: []int{svc.ID, 99}})
	require.NoError(t, err)
	_, err = tktUC.Create(dto.CreateTicketRequest{ClientID: client.ID, ServiceID: svc.ID, Subject: "Caída del sitio"})
	require.NoError(t, err)

	summary, err := uc.Summary(client.ID)
	require.NoError(t, err)
	require.Len(t, summary.Services, 1) // la referencia al servicio 99 se omite
	assert.Equal(t, svc.ID, summary.Services[0].ID)
	assert.Len(t, summary.Tickets, 1)
	assert.Equal(t, 1, summary.OpenTickets)
}

func TestServiceUseCase_SummaryIngresoEstimado(t *testing.T) {
	store := memory.NewStore()
	svcUC := NewServiceUseCase(memory.NewServiceRepository(store), memory.NewClientRepository(store))
	cliUC := newClientUC(store)

	svc, err := svcUC.Create(dto.CreateServiceRequest{Name: "Hosting", Price: decimal.NewFromInt(150)})
	require.NoError(t, err)
	_, err = cliUC.Create(dto.CreateClientRequest{CompanyName: "Activo Uno", ServiceIDs: []int{svc.ID}})
	require.NoError(t, err)
	_, err = cliUC.Create(dto.CreateClientRequest{CompanyName: "Activo Dos", ServiceIDs: []int{svc.ID}})
	require.NoError(t, err)
	_, err = cliUC.Create(dto.CreateClientRequest{CompanyName: "Suspendido", Status: entity.ClientStatusInactive, ServiceIDs: []int{svc.ID}})
	require.NoError(t, err)

	summary, err := svcUC.Summary(svc.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Clients, 3)
	assert.Equal(t, 2, summary.ActiveClients)
	assert.True(t, summary.EstimatedRevenue.Equal(decimal.NewFromInt(300)),
		"ingreso estimado = precio × clientes activos, fue %s", summary.EstimatedRevenue)
}

func TestServiceUseCase_PrecioNegativoFalla(t *testing.T) {
	store := memory.NewStore()
	svcUC := NewServiceUseCase(memory.NewServiceRepository(store), memory.NewClientRepository(store))

	_, err := svcUC.Create(dto.CreateServiceRequest{Name: "Hosting", Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicketUseCase_AddMessageAsignaIDsCrecientes(t *testing.T) {
	uc := NewTicketUseCase(memory.NewTicketRepository(memory.NewStore()))

	ticket, err := uc.Create(dto.CreateTicketRequest{ClientID: 1, ServiceID: 1, Subject: "Correo no sale"})
	require.NoError(t, err)
	require.Empty(t, ticket.Messages)
	assert.Equal(t, entity.TicketOpen, ticket.Status)
	assert.Equal(t, entity.PriorityMedium, ticket.Priority)

	ticket, err = uc.AddMessage(ticket.ID, dto.AddMessageRequest{Content: "Revisando el servidor", Sender: entity.SenderSupport})
	require.NoError(t, err)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, 1, ticket.Messages[0].ID)
	assert.False(t, ticket.Messages[0].Timestamp.IsZero())

	ticket, err = uc.AddMessage(ticket.ID, dto.AddMessageRequest{Content: "Gracias", Sender: entity.SenderClient})
	require.NoError(t, err)
	require.Len(t, ticket.Messages, 2)
	assert.Equal(t, 2, ticket.Messages[1].ID)
}

func TestTicketUseCase_AddMessageValidaciones(t *testing.T) {
	uc := NewTicketUseCase(memory.NewTicketRepository(memory.NewStore()))
	ticket, err := uc.Create(dto.CreateTicketRequest{ClientID: 1, ServiceID: 1, Subject: "Dominio vencido"})
	require.NoError(t, err)

	_, err = uc.AddMessage(ticket.ID, dto.AddMessageRequest{Sender: entity.SenderClient})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddMessage(ticket.ID, dto.AddMessageRequest{Content: "hola", Sender: "bot"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddMessage(999, dto.AddMessageRequest{Content: "hola", Sender: entity.SenderClient})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTicketUseCase_BusquedaPorIDTextual(t *testing.T) {
	uc := NewTicketUseCase(memory.NewTicketRepository(memory.NewStore()))
	for _, subject := range []string{"Primero", "Segundo", "Tercero"} {
		_, err := uc.Create(dto.CreateTicketRequest{ClientID: 1, ServiceID: 1, Subject: subject})
		require.NoError(t, err)
	}

	got, err := uc.List(dto.TicketFilter{Search: "2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Segundo", got[0].Subject)
}

func TestTeamUseCase_EmailDuplicadoIgnoraMayusculas(t *testing.T) {
	uc := NewTeamUseCase(memory.NewTeamRepository(memory.NewStore()))

	_, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Ana", Email: "ana@soportec.mx", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateTeamMemberRequest{Name: "Ana Dos", Email: "ANA@Soportec.MX", Role: entity.RoleAdmin})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestTeamUseCase_UpdateConservaSuPropioEmail(t *testing.T) {
	uc := NewTeamUseCase(memory.NewTeamRepository(memory.NewStore()))
	created, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Ana", Email: "ana@soportec.mx", Role: entity.RoleAdmin})
	require.NoError(t, err)

	// Reenviar el mismo email (con otras mayúsculas) no cuenta como duplicado.
	updated, err := uc.Update(created.ID, dto.UpdateTeamMemberRequest{Email: ptr("ANA@soportec.mx"), Name: ptr("Ana María")})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)
}

func TestTeamUseCase_UltimoSuperadminNoSeBorra(t *testing.T) {
	uc := NewTeamUseCase(memory.NewTeamRepository(memory.NewStore()))

	boss, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Root", Email: "root@soportec.mx", Role: entity.RoleSuperadmin})
	require.NoError(t, err)

	err = uc.Delete(boss.ID)
	require.ErrorIs(t, err, domain.ErrLastSuperadmin)

	// Con un segundo Superadmin el borrado procede.
	other, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Root Dos", Email: "root2@soportec.mx", Role: entity.RoleSuperadmin})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(boss.ID))

	// Y el que queda vuelve a estar protegido.
	err = uc.Delete(other.ID)
	assert.ErrorIs(t, err, domain.ErrLastSuperadmin)
}

func TestTeamUseCase_UpdateEmailDeOtroMiembroFalla(t *testing.T) {
	uc := NewTeamUseCase(memory.NewTeamRepository(memory.NewStore()))
	_, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Ana", Email: "ana@soportec.mx", Role: entity.RoleAdmin})
	require.NoError(t, err)
	luis, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Luis", Email: "luis@soportec.mx", Role: entity.RoleAdmin})
	require.NoError(t, err)

	// Tomar el email de otro miembro falla aunque cambien las mayúsculas.
	_, err = uc.Update(luis.ID, dto.UpdateTeamMemberRequest{Email: ptr("ANA@Soportec.MX")})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	sigue, err := uc.GetByID(luis.ID)
	require.NoError(t, err)
	assert.Equal(t, "luis@soportec.mx", sigue.Email, "el email original queda intacto")
}

func TestTeamUseCase_UltimoSuperadminNoSeDegrada(t *testing.T) {
	uc := NewTeamUseCase(memory.NewTeamRepository(memory.NewStore()))

	boss, err := uc.Create(dto.CreateTeamMemberRequest{Name: "Root", Email: "root@soportec.mx", Role: entity.RoleSuperadmin})
	require.NoError(t, err)

	_, err = uc.Update(boss.ID, dto.UpdateTeamMemberRequest{Role: ptr(entity.RoleAdmin)})
	require.ErrorIs(t, err, domain.ErrLastSuperadmin)

	// Reafirmar el mismo rol no dispara la regla.
	_, err = uc.Update(boss.ID, dto.UpdateTeamMemberRequest{Role: ptr(entity.RoleSuperadmin)})
	require.NoError(t, err)

	// Con un segundo Superadmin el cambio de rol procede.
	_, err = uc.Create(dto.CreateTeamMemberRequest{Name: "Root Dos", Email: "root2@soportec.mx", Role: entity.RoleSuperadmin})
	require.NoError(t, err)
	updated, err := uc.Update(boss.ID, dto.UpdateTeamMemberRequest{Role: ptr(entity.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestTeamUseCase_RolesFijos(t *testing.T) {
	uc := NewTeamUseCase(memory.NewTeamRepository(memory.NewStore()))

	roles := uc.Roles()
	require.Len(t, roles, 3)
	assert.Equal(t, entity.RoleSuperadmin, roles[0].Value)
}

func newQuoteUC(store *memory.Store) (*QuoteUseCase, *ClientUseCase) {
	return NewQuoteUseCase(memory.NewQuoteRepository(store), memory.NewClientRepository(store)), newClientUC(store)
}

func TestQuoteUseCase_MontosDerivados(t *testing.T) {
	store := memory.NewStore()
	uc, cliUC := newQuoteUC(store)
	client, err := cliUC.Create(dto.CreateClientRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	quote, err := uc.Create(dto.CreateQuoteRequest{
		ClientID: client.ID,
		Title:    "Migración de hosting",
		Items: []dto.QuoteItemPayload{
			{Description: "Horas de migración", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)
	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal fue %s", quote.Subtotal)
	assert.True(t, quote.Tax.Equal(decimal.NewFromInt(16)), "iva fue %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(116)), "total fue %s", quote.Total)
	assert.Equal(t, "Acme", quote.ClientName)
	assert.Equal(t, entity.QuotePending, quote.Status)
}

func TestQuoteUseCase_FoliosSecuencialesPorAnio(t *testing.T) {
	store := memory.NewStore()
	uc, cliUC := newQuoteUC(store)
	client, err := cliUC.Create(dto.CreateClientRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	first, err := uc.Create(dto.CreateQuoteRequest{ClientID: client.ID, Title: "Uno"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateQuoteRequest{ClientID: client.ID, Title: "Dos"})
	require.NoError(t, err)

	assert.Regexp(t, `^COT-\d{4}-001$`, first.QuoteNumber)
	assert.Regexp(t, `^COT-\d{4}-002$`, second.QuoteNumber)
}

func TestQuoteUseCase_UpdateRecalculaSoloConItems(t *testing.T) {
	store := memory.NewStore()
	uc, cliUC := newQuoteUC(store)
	client, err := cliUC.Create(dto.CreateClientRequest{CompanyName: "Acme"})
	require.NoError(t, err)
	quote, err := uc.Create(dto.CreateQuoteRequest{
		ClientID: client.ID,
		Title:    "Original",
		Items:    []dto.QuoteItemPayload{{Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	// Cambiar solo el título no toca los montos.
	updated, err := uc.Update(quote.ID, dto.UpdateQuoteRequest{Title: ptr("Renombrada")})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(quote.Total))

	// Cambiar las líneas sí recalcula.
	updated, err = uc.Update(quote.ID, dto.UpdateQuoteRequest{
		Items: ptr([]dto.QuoteItemPayload{{Description: "y", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10)}}),
	})
	require.NoError(t, err)
	assert.True(t, updated.Subtotal.Equal(decimal.NewFromInt(30)), "subtotal fue %s", updated.Subtotal)
	assert.True(t, updated.Total.Equal(decimal.NewFromFloat(34.8)), "total fue %s", updated.Total)
}

func TestQuoteUseCase_ClienteInexistenteFalla(t *testing.T) {
	uc, _ := newQuoteUC(memory.NewStore())

	_, err := uc.Create(dto.CreateQuoteRequest{ClientID: 42, Title: "Huérfana"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	store := memory.NewStore()
	uc, cliUC := newQuoteUC(store)
	client, err := cliUC.Create(dto.CreateClientRequest{CompanyName: "Acme"})
	require.NoError(t, err)
	quote, err := uc.Create(dto.CreateQuoteRequest{ClientID: client.ID, Title: "Pendiente"})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(quote.ID, entity.QuoteApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteApproved, updated.Status)

	_, err = uc.UpdateStatus(quote.ID, "Archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNotificationUseCase_DefaultsYValidacion(t *testing.T) {
	uc := NewNotificationUseCase(memory.NewNotificationRepository(memory.NewStore()))

	broadcast, err := uc.Create(dto.CreateNotificationRequest{Message: "Mantenimiento programado"})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationBroadcast, broadcast.Type)
	assert.Equal(t, entity.NotificationSent, broadcast.Status)
	assert.Nil(t, broadcast.ClientID)

	individual, err := uc.Create(dto.CreateNotificationRequest{Message: "Su factura está lista", ClientID: ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationIndividual, individual.Type)
	require.NotNil(t, individual.ClientID)
	assert.Equal(t, 7, *individual.ClientID)

	_, err = uc.Create(dto.CreateNotificationRequest{Message: "Sin destinatario", Type: entity.NotificationIndividual})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateNotificationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDashboardUseCase_Stats(t *testing.T) {
	store := memory.NewStore()
	cliUC := newClientUC(store)
	svcUC := NewServiceUseCase(memory.NewServiceRepository(store), memory.NewClientRepository(store))
	tktUC := NewTicketUseCase(memory.NewTicketRepository(store))
	dashUC := NewDashboardUseCase(
		memory.NewClientRepository(store),
		memory.NewServiceRepository(store),
		memory.NewTicketRepository(store),
	)

	_, err := cliUC.Create(dto.CreateClientRequest{CompanyName: "Activo"})
	require.NoError(t, err)
	_, err = cliUC.Create(dto.CreateClientRequest{CompanyName: "Suspendido", Status: entity.ClientStatusInactive})
	require.NoError(t, err)

	_, err = svcUC.Create(dto.CreateServiceRequest{Name: "Hosting", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	_, err = svcUC.Create(dto.CreateServiceRequest{Name: "VPS", Price: decimal.NewFromInt(200)})
	require.NoError(t, err)
	_, err = svcUC.Create(dto.CreateServiceRequest{Name: "Diseño web", Price: decimal.NewFromInt(5000), BillingCycle: entity.BillingOneTime})
	require.NoError(t, err)

	open, err := tktUC.Create(dto.CreateTicketRequest{ClientID: 1, ServiceID: 1, Subject: "Abierto"})
	require.NoError(t, err)
	_ = open
	closedTicket, err := tktUC.Create(dto.CreateTicketRequest{ClientID: 1, ServiceID: 1, Subject: "Cerrado"})
	require.NoError(t, err)
	_, err = tktUC.Update(closedTicket.ID, dto.UpdateTicketRequest{Status: ptr(entity.TicketClosed)})
	require.NoError(t, err)

	stats, err := dashUC.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveClients)
	assert.Equal(t, 1, stats.OpenTickets)
	assert.Equal(t, 3, stats.TotalServices)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(300)),
		"solo los servicios mensuales suman al ingreso, fue %s", stats.MonthlyRevenue)
}
