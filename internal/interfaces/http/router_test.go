package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soportec/gestor-api/internal/application/usecase"
	"github.com/soportec/gestor-api/internal/infrastructure/memory"
	"github.com/soportec/gestor-api/internal/infrastructure/pdf"
	"github.com/soportec/gestor-api/internal/infrastructure/postgres"
	apphttp "github.com/soportec/gestor-api/internal/interfaces/http"
	"github.com/soportec/gestor-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa sobre un almacén en
// memoria vacío, con las mismas rutas y middleware que producción.
func buildTestApp() *fiber.App {
	store := memory.NewStore()

	clientRepo := memory.NewClientRepository(store)
	serviceRepo := memory.NewServiceRepository(store)
	ticketRepo := memory.NewTicketRepository(store)
	teamRepo := memory.NewTeamRepository(store)
	quoteRepo := memory.NewQuoteRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))

	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC:       usecase.NewClientUseCase(clientRepo, serviceRepo, ticketRepo),
		ServiceUC:      usecase.NewServiceUseCase(serviceRepo, clientRepo),
		TicketUC:       usecase.NewTicketUseCase(ticketRepo),
		TeamUC:         usecase.NewTeamUseCase(teamRepo),
		QuoteUC:        usecase.NewQuoteUseCase(quoteRepo, clientRepo),
		QuotePDFUC:     usecase.NewQuotePDFUseCase(quoteRepo, pdf.NewMarotoQuoteGenerator()),
		NotificationUC: usecase.NewNotificationUseCase(notificationRepo),
		DashboardUC:    usecase.NewDashboardUseCase(clientRepo, serviceRepo, ticketRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Clients
// ──────────────────────────────────────────────────────────────────────────────

func TestClients_CicloCompleto(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", map[string]any{
		"companyName": "Acme SA de CV",
		"rfc":         "AAA010101AAA",
		"contacts":    []map[string]any{{"name": "Juan Pérez", "email": "juan@acme.mx"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)

	// La forma de salida usa Id y camelCase.
	assert.Equal(t, float64(1), created["Id"])
	assert.Equal(t, "Acme SA de CV", created["companyName"])
	assert.Equal(t, "active", created["status"])

	resp = doJSON(t, app, http.MethodGet, "/api/clients/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/clients/1", map[string]any{"status": "inactive"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "inactive", updated["status"])
	assert.Equal(t, "Acme SA de CV", updated["companyName"], "la mezcla parcial conserva el resto")

	resp = doJSON(t, app, http.MethodDelete, "/api/clients/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/clients/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestClients_ValidacionRetorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", map[string]any{"rfc": "AAA010101AAA"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

// ──────────────────────────────────────────────────────────────────────────────
// Team
// ──────────────────────────────────────────────────────────────────────────────

func TestTeam_EmailDuplicadoRetorna409(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/team", map[string]any{
		"name": "Ana", "email": "ana@soportec.mx", "role": "Admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/team", map[string]any{
		"name": "Ana Dos", "email": "ANA@soportec.mx", "role": "Admin",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMAIL_IN_USE")
}

func TestTeam_UltimoSuperadminRetorna409(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/team", map[string]any{
		"name": "Root", "email": "root@soportec.mx", "role": "Superadmin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/team/1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "LAST_SUPERADMIN")
}

func TestTeam_RolesNoSeConfundeConID(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/team/roles", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roles []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roles))
	require.Len(t, roles, 3)
	assert.Equal(t, "Superadmin", roles[0]["value"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tickets
// ──────────────────────────────────────────────────────────────────────────────

func TestTickets_ConversacionPorHTTP(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", map[string]any{
		"clientId": 1, "serviceId": 1, "subject": "Sitio caído",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, "open", created["status"])
	assert.Equal(t, "medium", created["priority"])

	resp = doJSON(t, app, http.MethodPost, "/api/tickets/1/messages", map[string]any{
		"content": "Revisando el servidor", "sender": "support",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ticket := decodeBody(t, resp)
	messages := ticket["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, float64(1), messages[0].(map[string]any)["id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Quotes
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotes_CreacionYCambioDeEstado(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", map[string]any{"companyName": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/quotes", map[string]any{
		"clientId": 1,
		"title":    "Migración de hosting",
		"items":    []map[string]any{{"description": "Horas", "quantity": 2, "unitPrice": 50}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	quote := decodeBody(t, resp)
	assert.Equal(t, "Acme", quote["clientName"])
	assert.Equal(t, "Pendiente", quote["status"])
	assert.Equal(t, "116", quote["total"])

	resp = doJSON(t, app, http.MethodPatch, "/api/quotes/1/status", map[string]any{"status": "Aprobada"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "Aprobada", updated["status"])
}

func TestQuotes_PDFEntregaDocumento(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", map[string]any{"companyName": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/quotes", map[string]any{"clientId": 1, "title": "Propuesta"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/quotes/1/pdf", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Stats(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/services", map[string]any{"name": "Hosting", "price": 100})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody(t, resp)
	assert.Equal(t, float64(1), stats["totalServices"])
	assert.Equal(t, "100", stats["monthlyRevenue"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacén remoto caído
// ──────────────────────────────────────────────────────────────────────────────

// downQuerier rechaza toda operación, como un PostgreSQL inalcanzable.
type downQuerier struct{}

var errDown = errors.New("connect: connection refused")

func (downQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errDown
}
func (downQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errDown
}

func (downQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return downRow{}
}

type downRow struct{}

func (downRow) Scan(...any) error { return errDown }

func TestClients_AlmacenRemotoCaidoRetorna502(t *testing.T) {
	store := memory.NewStore()
	serviceRepo := memory.NewServiceRepository(store)
	ticketRepo := memory.NewTicketRepository(store)
	clientRepo := postgres.NewClientRepository(downQuerier{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC:  usecase.NewClientUseCase(clientRepo, serviceRepo, ticketRepo),
		ServiceUC: usecase.NewServiceUseCase(serviceRepo, clientRepo),
		TicketUC:  usecase.NewTicketUseCase(ticketRepo),
	})

	resp := doJSON(t, app, http.MethodGet, "/api/clients", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "REMOTE_STORE")
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app := buildTestApp()

	// Sin cabecera: el middleware genera una.
	resp := doJSON(t, app, http.MethodGet, "/api/clients", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	resp.Body.Close()

	// Con cabecera: se respeta la del cliente.
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set(apphttp.HeaderRequestID, "corr-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "corr-123", resp.Header.Get(apphttp.HeaderRequestID))
}
