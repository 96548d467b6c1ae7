package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/infrastructure/memory"
)

func newClient(name string) *entity.Client {
	return &entity.Client{
		CompanyName: name,
		RFC:         "XAXX010101000",
		Contacts:    []entity.Contact{},
		ServiceIDs:  []int{},
		Status:      entity.ClientStatusActive,
		CreatedAt:   time.Now(),
	}
}

// Los IDs asignados crecen estrictamente aunque se borre el registro más alto.
func TestClientRepo_IDsMonotonicosTrasBorrado(t *testing.T) {
	repo := memory.NewClientRepository(memory.NewStore())

	a := newClient("Alfa")
	require.NoError(t, repo.Create(a))
	assert.Equal(t, 1, a.ID)

	b := newClient("Beta")
	require.NoError(t, repo.Create(b))
	assert.Equal(t, 2, b.ID)

	require.NoError(t, repo.Delete(b.ID))

	c := newClient("Gamma")
	require.NoError(t, repo.Create(c))
	assert.Equal(t, 3, c.ID, "el ID 2 no debe reutilizarse aunque se haya borrado")
}

func TestClientRepo_GetByIDInexistente(t *testing.T) {
	repo := memory.NewClientRepository(memory.NewStore())
	_, err := repo.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepo_DeleteLuegoGetFalla(t *testing.T) {
	repo := memory.NewClientRepository(memory.NewStore())
	c := newClient("Efímera SA")
	require.NoError(t, repo.Create(c))
	require.NoError(t, repo.Delete(c.ID))

	_, err := repo.GetByID(c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar dos veces debe fallar")
}

// GetAll conserva el orden de inserción y devuelve copias defensivas.
func TestClientRepo_GetAllOrdenYCopia(t *testing.T) {
	repo := memory.NewClientRepository(memory.NewStore())
	first := newClient("Primera")
	first.Contacts = []entity.Contact{{Name: "Juan", Email: "juan@primera.mx"}}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(newClient("Segunda")))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Primera", all[0].CompanyName)
	assert.Equal(t, "Segunda", all[1].CompanyName)

	// Mutar lo devuelto no debe tocar el estado almacenado
	all[0].Contacts[0].Name = "Hackeado"
	all[0].CompanyName = "Otra"

	again, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Primera", again.CompanyName)
	assert.Equal(t, "Juan", again.Contacts[0].Name)
}

func TestServiceRepo_EscenarioCatalogo(t *testing.T) {
	repo := memory.NewServiceRepository(memory.NewStore())
	require.NoError(t, repo.Create(&entity.Service{
		Name: "Hosting", Price: decimal.NewFromInt(100), BillingCycle: entity.BillingMonthly,
	}))

	vps := &entity.Service{Name: "VPS", Price: decimal.NewFromInt(200), BillingCycle: entity.BillingMonthly}
	require.NoError(t, repo.Create(vps))
	assert.Equal(t, 2, vps.ID)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)
}

func TestTeamRepo_GetByEmailIgnoraMayusculas(t *testing.T) {
	repo := memory.NewTeamRepository(memory.NewStore())
	require.NoError(t, repo.Create(&entity.TeamMember{
		Name: "Ana", Email: "Ana.Torres@soportec.mx", Role: entity.RoleSuperadmin, Status: entity.MemberActive,
	}))

	m, err := repo.GetByEmail("ana.torres@SOPORTEC.mx")
	require.NoError(t, err)
	assert.Equal(t, "Ana", m.Name)

	_, err = repo.GetByEmail("nadie@soportec.mx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteRepo_MaxSequenceForYear(t *testing.T) {
	repo := memory.NewQuoteRepository(memory.NewStore())
	for _, num := range []string{"COT-2024-001", "COT-2024-007", "COT-2023-042"} {
		require.NoError(t, repo.Create(&entity.Quote{QuoteNumber: num, Status: entity.QuotePending}))
	}

	seq, err := repo.MaxSequenceForYear(2024)
	require.NoError(t, err)
	assert.Equal(t, 7, seq)

	seq, err = repo.MaxSequenceForYear(2025)
	require.NoError(t, err)
	assert.Equal(t, 0, seq, "año sin folios debe devolver 0")
}

func TestNotificationRepo_OrdenTimestampDescendente(t *testing.T) {
	repo := memory.NewNotificationRepository(memory.NewStore())
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	vieja := &entity.Notification{Message: "vieja", Type: entity.NotificationBroadcast, Status: entity.NotificationSent, Timestamp: base}
	nueva := &entity.Notification{Message: "nueva", Type: entity.NotificationBroadcast, Status: entity.NotificationSent, Timestamp: base.Add(2 * time.Hour)}
	media := &entity.Notification{Message: "media", Type: entity.NotificationBroadcast, Status: entity.NotificationSent, Timestamp: base.Add(time.Hour)}
	for _, n := range []*entity.Notification{vieja, nueva, media} {
		require.NoError(t, repo.Create(n))
	}

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "nueva", all[0].Message)
	assert.Equal(t, "media", all[1].Message)
	assert.Equal(t, "vieja", all[2].Message)
}

// Con timestamps iguales el desempate es por ID descendente, igual que el
// ORDER BY del backend PostgreSQL.
func TestNotificationRepo_EmpateDeTimestampGanaElIDMayor(t *testing.T) {
	repo := memory.NewNotificationRepository(memory.NewStore())
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	primera := &entity.Notification{Message: "primera", Type: entity.NotificationBroadcast, Status: entity.NotificationSent, Timestamp: ts}
	segunda := &entity.Notification{Message: "segunda", Type: entity.NotificationBroadcast, Status: entity.NotificationSent, Timestamp: ts}
	require.NoError(t, repo.Create(primera))
	require.NoError(t, repo.Create(segunda))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, segunda.ID, all[0].ID, "a igual timestamp, el registro más nuevo va primero")
	assert.Equal(t, primera.ID, all[1].ID)
}

func TestNewSeededStore_ContadoresArribaDelMaximo(t *testing.T) {
	store := memory.NewSeededStore()
	repo := memory.NewClientRepository(store)

	existing, err := repo.GetAll()
	require.NoError(t, err)
	require.NotEmpty(t, existing)

	maxID := 0
	for _, c := range existing {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	nuevo := newClient("Nuevo Cliente")
	require.NoError(t, repo.Create(nuevo))
	assert.Equal(t, maxID+1, nuevo.ID)
}
