package repository

import "github.com/soportec/gestor-api/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote.
// MaxSequenceForYear devuelve la secuencia más alta usada en folios
// COT-<año>-<seq> del año dado (0 si ninguno), para asignar folios únicos.
type QuoteRepository interface {
	GetAll() ([]*entity.Quote, error)
	GetByID(id int) (*entity.Quote, error)
	GetByClientID(clientID int) ([]*entity.Quote, error)
	GetByStatus(status string) ([]*entity.Quote, error)
	MaxSequenceForYear(year int) (int, error)
	Create(quote *entity.Quote) error
	Update(quote *entity.Quote) error
	Delete(id int) error
}
