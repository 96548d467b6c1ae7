// Package jobs agrupa las tareas programadas del proceso.
package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
	"github.com/soportec/gestor-api/pkg/logger"
)

// QuoteExpiryJob barre las cotizaciones pendientes cuya vigencia venció desde
// la última corrida y registra una notificación por cada una, para que el
// equipo dé seguimiento antes de perder la venta.
type QuoteExpiryJob struct {
	quotes        repository.QuoteRepository
	notifications repository.NotificationRepository
	log           *logger.Logger

	cron    *cron.Cron
	lastRun time.Time
}

// NewQuoteExpiryJob construye la tarea. La ventana de barrido arranca en el
// momento de construcción: vencimientos anteriores al arranque no se notifican.
func NewQuoteExpiryJob(quotes repository.QuoteRepository, notifications repository.NotificationRepository, log *logger.Logger) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		quotes:        quotes,
		notifications: notifications,
		log:           log,
		lastRun:       time.Now().UTC(),
	}
}

// Start programa la tarea con la expresión cron dada y arranca el scheduler.
func (j *QuoteExpiryJob) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, j.Run); err != nil {
		return fmt.Errorf("programar barrido de cotizaciones (%q): %w", spec, err)
	}
	c.Start()
	j.cron = c
	j.log.Info().Str("spec", spec).Msg("barrido de cotizaciones vencidas programado")
	return nil
}

// Stop detiene el scheduler y espera a que termine la corrida en curso.
func (j *QuoteExpiryJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

// Run ejecuta una pasada del barrido. Exportado para poder dispararlo a mano.
func (j *QuoteExpiryJob) Run() {
	now := time.Now().UTC()
	pending, err := j.quotes.GetByStatus(entity.QuotePending)
	if err != nil {
		j.log.Error().Err(err).Msg("barrido de cotizaciones: leer pendientes")
		return
	}

	expired := 0
	for _, q := range pending {
		if q.ValidUntil.IsZero() || !q.ValidUntil.After(j.lastRun) || q.ValidUntil.After(now) {
			continue
		}
		clientID := q.ClientID
		notification := &entity.Notification{
			ClientID: &clientID,
			Message: fmt.Sprintf("La cotización %s (%s) venció el %s sin respuesta del cliente.",
				q.QuoteNumber, q.Title, q.ValidUntil.Format("02/01/2006")),
			Type:      entity.NotificationIndividual,
			Status:    entity.NotificationPending,
			Timestamp: now,
		}
		if err := j.notifications.Create(notification); err != nil {
			j.log.Error().Err(err).Str("quote", q.QuoteNumber).Msg("barrido de cotizaciones: crear notificación")
			continue
		}
		expired++
	}

	j.lastRun = now
	j.log.Info().Int("expired", expired).Int("pending", len(pending)).Msg("barrido de cotizaciones completado")
}
