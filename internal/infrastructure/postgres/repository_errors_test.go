package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/infrastructure/postgres"
)

// brokenQuerier simula un almacén remoto que responde con el mismo error de
// bajo nivel en toda operación.
type brokenQuerier struct{ err error }

func (q brokenQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q brokenQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q brokenQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return brokenRow{err: q.err}
}

type brokenRow struct{ err error }

func (r brokenRow) Scan(...any) error { return r.err }

func TestRepos_FalloDelDriverSeTraduceAErrRemote(t *testing.T) {
	q := brokenQuerier{err: errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")}

	_, err := postgres.NewClientRepository(q).GetAll()
	assert.ErrorIs(t, err, domain.ErrRemote, "listar clientes")

	_, err = postgres.NewServiceRepository(q).GetByID(1)
	assert.ErrorIs(t, err, domain.ErrRemote, "obtener servicio")

	err = postgres.NewTicketRepository(q).Delete(1)
	assert.ErrorIs(t, err, domain.ErrRemote, "borrar ticket")

	err = postgres.NewNotificationRepository(q).Create(&entity.Notification{Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrRemote, "insertar notificación")

	_, err = postgres.NewQuoteRepository(q).MaxSequenceForYear(2026)
	assert.ErrorIs(t, err, domain.ErrRemote, "secuencia de folio")

	_, err = postgres.NewTeamRepository(q).CountByRole(entity.RoleSuperadmin)
	assert.ErrorIs(t, err, domain.ErrRemote, "contar por rol")
}

// Los errores ya clasificados conservan su traducción y no se marcan remotos.
func TestRepos_ClasificadosNoSonErrRemote(t *testing.T) {
	sinFilas := brokenQuerier{err: pgx.ErrNoRows}
	_, err := postgres.NewClientRepository(sinFilas).GetByID(7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrRemote)

	duplicado := brokenQuerier{err: &pgconn.PgError{Code: "23505"}}
	err = postgres.NewTeamRepository(duplicado).Create(&entity.TeamMember{
		Name: "Ana", Email: "ana@soportec.mx", Role: entity.RoleAdmin, Status: entity.MemberActive,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, domain.ErrRemote)
}
