package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación PostgreSQL de QuoteRepository.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, client_id, client_name, quote_number, title, description, items,
	subtotal, tax, total, status, valid_until, notes, created_at, updated_at`

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	var items, status string
	if err := row.Scan(
		&q.ID, &q.ClientID, &q.ClientName, &q.QuoteNumber, &q.Title, &q.Description, &items,
		&q.Subtotal, &q.Tax, &q.Total, &status, &q.ValidUntil, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}
	decoded, err := DecodeItems(items)
	if err != nil {
		return nil, err
	}
	q.Items = decoded
	q.Status = fallback(status, entity.QuotePending)
	return &q, nil
}

func (r *QuoteRepo) queryMany(query string, args ...any) ([]*entity.Quote, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, remoteErr("listar cotizaciones", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, remoteErr("scan cotización", err)
		}
		list = append(list, q)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("listar cotizaciones", err)
	}
	return list, nil
}

// GetAll devuelve todas las cotizaciones en orden de inserción.
func (r *QuoteRepo) GetAll() ([]*entity.Quote, error) {
	return r.queryMany(`SELECT ` + quoteColumns + ` FROM quotes ORDER BY id`)
}

// GetByClientID devuelve las cotizaciones del cliente en orden de inserción.
func (r *QuoteRepo) GetByClientID(clientID int) ([]*entity.Quote, error) {
	return r.queryMany(`SELECT `+quoteColumns+` FROM quotes WHERE client_id = $1 ORDER BY id`, clientID)
}

// GetByStatus devuelve las cotizaciones con el estado dado en orden de inserción.
func (r *QuoteRepo) GetByStatus(status string) ([]*entity.Quote, error) {
	return r.queryMany(`SELECT `+quoteColumns+` FROM quotes WHERE status = $1 ORDER BY id`, status)
}

// GetByID obtiene una cotización por ID o domain.ErrNotFound.
func (r *QuoteRepo) GetByID(id int) (*entity.Quote, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	q, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, remoteErr("obtener cotización", err)
	}
	return q, nil
}

// MaxSequenceForYear extrae la secuencia más alta de los folios COT-<año>-<seq>.
func (r *QuoteRepo) MaxSequenceForYear(year int) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(MAX(SPLIT_PART(quote_number, '-', 3)::int), 0)
		FROM quotes WHERE quote_number LIKE 'COT-' || $1::text || '-%'`, year).Scan(&max)
	if err != nil {
		return 0, remoteErr("max secuencia de folio", err)
	}
	return max, nil
}

// Create inserta la cotización y asigna su ID desde la columna identidad.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	items, err := EncodeItems(quote.Items)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(context.Background(), `
		INSERT INTO quotes (client_id, client_name, quote_number, title, description, items,
			subtotal, tax, total, status, valid_until, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		quote.ClientID, quote.ClientName, quote.QuoteNumber, quote.Title, quote.Description, items,
		quote.Subtotal, quote.Tax, quote.Total, quote.Status, quote.ValidUntil, quote.Notes,
		quote.CreatedAt, quote.UpdatedAt,
	).Scan(&quote.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return remoteErr("insert cotización", err)
	}
	return nil
}

// Update reemplaza los campos de la cotización; domain.ErrNotFound si no existe.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	items, err := EncodeItems(quote.Items)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(), `
		UPDATE quotes SET client_id = $2, client_name = $3, title = $4, description = $5, items = $6,
			subtotal = $7, tax = $8, total = $9, status = $10, valid_until = $11, notes = $12, updated_at = $13
		WHERE id = $1`,
		quote.ID, quote.ClientID, quote.ClientName, quote.Title, quote.Description, items,
		quote.Subtotal, quote.Tax, quote.Total, quote.Status, quote.ValidUntil, quote.Notes,
		quote.UpdatedAt,
	)
	if err != nil {
		return remoteErr("update cotización", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la cotización por ID; domain.ErrNotFound si no existe.
func (r *QuoteRepo) Delete(id int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return remoteErr("delete cotización", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
