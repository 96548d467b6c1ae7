package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soportec/gestor-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC       *usecase.ClientUseCase
	ServiceUC      *usecase.ServiceUseCase
	TicketUC       *usecase.TicketUseCase
	TeamUC         *usecase.TeamUseCase
	QuoteUC        *usecase.QuoteUseCase
	QuotePDFUC     *usecase.QuotePDFUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *usecase.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/summary", clientHandler.Summary)

	// Services
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)
	services.Get("/:id/summary", serviceHandler.Summary)

	// Tickets (incluye la conversación)
	tickets := api.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Put("/:id", ticketHandler.Update)
	tickets.Delete("/:id", ticketHandler.Delete)
	tickets.Post("/:id/messages", ticketHandler.AddMessage)

	// Team ("/roles" va antes que "/:id" para no capturarlo como id)
	team := api.Group("/team")
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Get("/", teamHandler.List)
	team.Post("/", teamHandler.Create)
	team.Get("/roles", teamHandler.Roles)
	team.Get("/:id", teamHandler.GetByID)
	team.Put("/:id", teamHandler.Update)
	team.Delete("/:id", teamHandler.Delete)

	// Quotes
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.QuotePDFUC)
	quotes.Get("/", quoteHandler.List)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Patch("/:id/status", quoteHandler.UpdateStatus)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Notifications
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Put("/:id", notificationHandler.Update)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
