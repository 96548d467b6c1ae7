package memory

import (
	"fmt"

	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación en memoria de QuoteRepository.
type QuoteRepo struct {
	store *Store
}

// NewQuoteRepository construye el adaptador sobre el Store compartido.
func NewQuoteRepository(store *Store) *QuoteRepo {
	return &QuoteRepo{store: store}
}

// GetAll devuelve copias de todas las cotizaciones en orden de inserción.
func (r *QuoteRepo) GetAll() ([]*entity.Quote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Quote, 0, len(r.store.quotes))
	for _, q := range r.store.quotes {
		qq := copyQuote(q)
		out = append(out, &qq)
	}
	return out, nil
}

// GetByID devuelve una copia de la cotización o domain.ErrNotFound.
func (r *QuoteRepo) GetByID(id int) (*entity.Quote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, q := range r.store.quotes {
		if q.ID == id {
			qq := copyQuote(q)
			return &qq, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByClientID devuelve las cotizaciones del cliente en orden de inserción.
func (r *QuoteRepo) GetByClientID(clientID int) ([]*entity.Quote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Quote
	for _, q := range r.store.quotes {
		if q.ClientID == clientID {
			qq := copyQuote(q)
			out = append(out, &qq)
		}
	}
	return out, nil
}

// GetByStatus devuelve las cotizaciones con el estado dado en orden de inserción.
func (r *QuoteRepo) GetByStatus(status string) ([]*entity.Quote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Quote
	for _, q := range r.store.quotes {
		if q.Status == status {
			qq := copyQuote(q)
			out = append(out, &qq)
		}
	}
	return out, nil
}

// MaxSequenceForYear devuelve la secuencia más alta de los folios COT-<año>-<seq>
// existentes para el año dado, 0 si no hay ninguno.
func (r *QuoteRepo) MaxSequenceForYear(year int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prefix := fmt.Sprintf("COT-%d-", year)
	max := 0
	for _, q := range r.store.quotes {
		var seq int
		if _, err := fmt.Sscanf(q.QuoteNumber, prefix+"%d", &seq); err == nil && seq > max {
			max = seq
		}
	}
	return max, nil
}

// Create asigna el siguiente ID y agrega la cotización al final de la colección.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	quote.ID = r.store.nextQuoteID
	r.store.nextQuoteID++
	r.store.quotes = append(r.store.quotes, copyQuote(*quote))
	return nil
}

// Update reemplaza el registro con el mismo ID o falla con domain.ErrNotFound.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, q := range r.store.quotes {
		if q.ID == quote.ID {
			r.store.quotes[i] = copyQuote(*quote)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la cotización o falla con domain.ErrNotFound.
func (r *QuoteRepo) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, q := range r.store.quotes {
		if q.ID == id {
			r.store.quotes = append(r.store.quotes[:i], r.store.quotes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
