package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soportec/gestor-api/internal/application/usecase"
	"github.com/soportec/gestor-api/internal/domain/repository"
	"github.com/soportec/gestor-api/internal/infrastructure/jobs"
	"github.com/soportec/gestor-api/internal/infrastructure/memory"
	infrapdf "github.com/soportec/gestor-api/internal/infrastructure/pdf"
	"github.com/soportec/gestor-api/internal/infrastructure/postgres"
	apphttp "github.com/soportec/gestor-api/internal/interfaces/http"
	"github.com/soportec/gestor-api/pkg/config"
	"github.com/soportec/gestor-api/pkg/logger"
)

// repos agrupa los seis puertos de persistencia; se llena con el backend
// elegido por STORE_BACKEND.
type repos struct {
	clients       repository.ClientRepository
	services      repository.ServiceRepository
	tickets       repository.TicketRepository
	team          repository.TeamRepository
	quotes        repository.QuoteRepository
	notifications repository.NotificationRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			clients:       postgres.NewClientRepository(pool),
			services:      postgres.NewServiceRepository(pool),
			tickets:       postgres.NewTicketRepository(pool),
			team:          postgres.NewTeamRepository(pool),
			quotes:        postgres.NewQuoteRepository(pool),
			notifications: postgres.NewNotificationRepository(pool),
		}
	default:
		store := memory.NewSeededStore()
		r = repos{
			clients:       memory.NewClientRepository(store),
			services:      memory.NewServiceRepository(store),
			tickets:       memory.NewTicketRepository(store),
			team:          memory.NewTeamRepository(store),
			quotes:        memory.NewQuoteRepository(store),
			notifications: memory.NewNotificationRepository(store),
		}
	}

	clientUC := usecase.NewClientUseCase(r.clients, r.services, r.tickets)
	serviceUC := usecase.NewServiceUseCase(r.services, r.clients)
	ticketUC := usecase.NewTicketUseCase(r.tickets)
	teamUC := usecase.NewTeamUseCase(r.team)
	quoteUC := usecase.NewQuoteUseCase(r.quotes, r.clients)
	quotePDFUC := usecase.NewQuotePDFUseCase(r.quotes, infrapdf.NewMarotoQuoteGenerator())
	notificationUC := usecase.NewNotificationUseCase(r.notifications)
	dashboardUC := usecase.NewDashboardUseCase(r.clients, r.services, r.tickets)

	// Barrido diario de cotizaciones vencidas
	if cfg.Jobs.QuoteExpiryEnabled {
		expiryJob := jobs.NewQuoteExpiryJob(r.quotes, r.notifications, log)
		if err := expiryJob.Start(cfg.Jobs.QuoteExpirySpec); err != nil {
			log.Fatal().Err(err).Msg("arrancar barrido de cotizaciones")
		}
		defer expiryJob.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(apphttp.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": cfg.Store.Backend})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC:       clientUC,
		ServiceUC:      serviceUC,
		TicketUC:       ticketUC,
		TeamUC:         teamUC,
		QuoteUC:        quoteUC,
		QuotePDFUC:     quotePDFUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
