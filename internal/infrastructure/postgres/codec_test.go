package postgres_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/infrastructure/postgres"
)

// La ida y vuelta encode→decode debe ser idempotente: decodificar, recodificar
// y volver a decodificar produce el mismo valor.

func TestCodec_ContactosRoundTrip(t *testing.T) {
	contacts := []entity.Contact{
		{Name: "Laura Martínez", Email: "laura@cliente.mx", Phone: "+52 55 1234 5678", Position: "Directora"},
		{Name: "Pedro", Email: "pedro@cliente.mx"},
	}

	encoded, err := postgres.EncodeContacts(contacts)
	require.NoError(t, err)

	decoded, err := postgres.DecodeContacts(encoded)
	require.NoError(t, err)
	assert.Equal(t, contacts, decoded)

	again, err := postgres.EncodeContacts(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, again)
}

func TestCodec_ContactosVacioOAusente(t *testing.T) {
	for _, in := range []string{"", "   ", "[]"} {
		decoded, err := postgres.DecodeContacts(in)
		require.NoError(t, err, "entrada %q no debe fallar", in)
		assert.Empty(t, decoded)
		assert.NotNil(t, decoded, "debe ser lista vacía, no nil")
	}
}

func TestCodec_ContactosMalformado(t *testing.T) {
	_, err := postgres.DecodeContacts("{esto no es json")
	assert.Error(t, err)
}

func TestCodec_ListaIDsRoundTrip(t *testing.T) {
	ids := []int{1, 2, 15}
	encoded := postgres.EncodeIDList(ids)
	assert.Equal(t, "1,2,15", encoded)
	assert.Equal(t, ids, postgres.DecodeIDList(encoded))
}

func TestCodec_ListaIDsVaciaYBasura(t *testing.T) {
	assert.Equal(t, "", postgres.EncodeIDList(nil))
	assert.Empty(t, postgres.DecodeIDList(""))
	// Entradas vacías o no numéricas se descartan sin error
	assert.Equal(t, []int{3, 9}, postgres.DecodeIDList("3,,abc, 9 ,"))
}

func TestCodec_MensajesRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC)
	messages := []entity.Message{
		{ID: 1, Content: "hola", Sender: entity.SenderClient, Timestamp: ts},
		{ID: 2, Content: "en revisión", Sender: entity.SenderSupport, Timestamp: ts.Add(time.Minute)},
	}

	encoded, err := postgres.EncodeMessages(messages)
	require.NoError(t, err)

	decoded, err := postgres.DecodeMessages(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, messages[0].ID, decoded[0].ID)
	assert.Equal(t, messages[1].Content, decoded[1].Content)
	assert.True(t, messages[0].Timestamp.Equal(decoded[0].Timestamp))

	again, err := postgres.EncodeMessages(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, again)
}

func TestCodec_LineasRoundTrip(t *testing.T) {
	items := []entity.QuoteItem{
		{Description: "Hosting (3 meses)", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(1500), Total: decimal.NewFromInt(4500)},
	}

	encoded, err := postgres.EncodeItems(items)
	require.NoError(t, err)

	decoded, err := postgres.DecodeItems(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.True(t, items[0].Quantity.Equal(decoded[0].Quantity))
	assert.True(t, items[0].UnitPrice.Equal(decoded[0].UnitPrice))
	assert.True(t, items[0].Total.Equal(decoded[0].Total))

	again, err := postgres.EncodeItems(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, again)
}

func TestCodec_LineasVacio(t *testing.T) {
	decoded, err := postgres.DecodeItems("")
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}
