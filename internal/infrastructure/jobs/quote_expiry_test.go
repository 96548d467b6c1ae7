package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/infrastructure/memory"
	"github.com/soportec/gestor-api/pkg/logger"
)

func TestQuoteExpiryJob_NotificaVencidasUnaSolaVez(t *testing.T) {
	store := memory.NewStore()
	quotes := memory.NewQuoteRepository(store)
	notifications := memory.NewNotificationRepository(store)

	expired := &entity.Quote{
		ClientID:    7,
		ClientName:  "Acme",
		QuoteNumber: "COT-2026-001",
		Title:       "Migración",
		Status:      entity.QuotePending,
		ValidUntil:  time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, quotes.Create(expired))

	vigente := &entity.Quote{
		ClientID:    8,
		ClientName:  "Otro",
		QuoteNumber: "COT-2026-002",
		Title:       "Soporte",
		Status:      entity.QuotePending,
		ValidUntil:  time.Now().UTC().Add(24 * time.Hour),
	}
	require.NoError(t, quotes.Create(vigente))

	job := NewQuoteExpiryJob(quotes, notifications, logger.Nop())
	job.lastRun = time.Now().UTC().Add(-48 * time.Hour)
	job.Run()

	list, err := notifications.GetAll()
	require.NoError(t, err)
	require.Len(t, list, 1, "solo la cotización vencida genera notificación")
	require.NotNil(t, list[0].ClientID)
	assert.Equal(t, 7, *list[0].ClientID)
	assert.Contains(t, list[0].Message, "COT-2026-001")
	assert.Equal(t, entity.NotificationPending, list[0].Status)

	// Una segunda pasada no vuelve a notificar lo ya barrido.
	job.Run()
	list, err = notifications.GetAll()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQuoteExpiryJob_SpecInvalidoFalla(t *testing.T) {
	store := memory.NewStore()
	job := NewQuoteExpiryJob(memory.NewQuoteRepository(store), memory.NewNotificationRepository(store), logger.Nop())

	err := job.Start("cada rato")
	assert.Error(t, err)
}
