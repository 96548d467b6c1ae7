package usecase

import (
	"fmt"
	"time"

	"github.com/soportec/gestor-api/internal/application/dto"
	"github.com/soportec/gestor-api/internal/domain"
	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones. Asigna folios COT-<año>-<seq> y
// es el único lugar donde se recalculan los montos derivados.
type QuoteUseCase struct {
	quotes  repository.QuoteRepository
	clients repository.ClientRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(quotes repository.QuoteRepository, clients repository.ClientRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, clients: clients}
}

// List devuelve las cotizaciones que pasan los filtros activos, en orden de
// inserción. Cuando hay filtro de cliente la lectura se acota en el
// repositorio; el resto de los filtros se aplica sobre el resultado.
func (uc *QuoteUseCase) List(filter dto.QuoteFilter) ([]dto.QuoteResponse, error) {
	var (
		all []*entity.Quote
		err error
	)
	if filter.ClientID > 0 {
		all, err = uc.quotes.GetByClientID(filter.ClientID)
	} else {
		all, err = uc.quotes.GetAll()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteResponse, 0, len(all))
	for _, q := range all {
		if !matchQuote(q, filter) {
			continue
		}
		out = append(out, toQuoteResponse(q))
	}
	return out, nil
}

// GetByID devuelve la cotización o domain.ErrNotFound.
func (uc *QuoteUseCase) GetByID(id int) (*dto.QuoteResponse, error) {
	q, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toQuoteResponse(q)
	return &resp, nil
}

// Create emite una cotización. El cliente debe existir: su nombre se copia
// como snapshot para que la cotización sobreviva a renombres o bajas del
// cliente. El folio es COT-<año>-<seq> con seq = máximo del año + 1.
func (uc *QuoteUseCase) Create(in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ClientID <= 0 {
		return nil, fmt.Errorf("clientId es requerido: %w", domain.ErrInvalidInput)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("title es requerido: %w", domain.ErrInvalidInput)
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.QuotePending
	}
	if !entity.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("status %q inválido: %w", status, domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	seq, err := uc.quotes.MaxSequenceForYear(now.Year())
	if err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		ClientID:    in.ClientID,
		ClientName:  client.CompanyName,
		QuoteNumber: fmt.Sprintf("COT-%d-%03d", now.Year(), seq+1),
		Title:       in.Title,
		Description: in.Description,
		Items:       fromQuoteItemPayloads(in.Items),
		Status:      status,
		ValidUntil:  in.ValidUntil,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	quote.RecalculateTotals()
	if err := uc.quotes.Create(quote); err != nil {
		return nil, err
	}
	resp := toQuoteResponse(quote)
	return &resp, nil
}

// Update aplica una mezcla parcial. Si Items viene en la petición los montos
// derivados se recalculan; el folio y el snapshot del cliente no cambian.
func (uc *QuoteUseCase) Update(id int, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		quote.Title = *in.Title
	}
	if in.Description != nil {
		quote.Description = *in.Description
	}
	if in.Items != nil {
		quote.Items = fromQuoteItemPayloads(*in.Items)
		quote.RecalculateTotals()
	}
	if in.Status != nil {
		if !entity.ValidQuoteStatus(*in.Status) {
			return nil, fmt.Errorf("status %q inválido: %w", *in.Status, domain.ErrInvalidInput)
		}
		quote.Status = *in.Status
	}
	if in.ValidUntil != nil {
		quote.ValidUntil = *in.ValidUntil
	}
	if in.Notes != nil {
		quote.Notes = *in.Notes
	}
	quote.UpdatedAt = time.Now().UTC()
	if err := uc.quotes.Update(quote); err != nil {
		return nil, err
	}
	resp := toQuoteResponse(quote)
	return &resp, nil
}

// UpdateStatus cambia solo el estado de la cotización.
func (uc *QuoteUseCase) UpdateStatus(id int, status string) (*dto.QuoteResponse, error) {
	if !entity.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("status %q inválido: %w", status, domain.ErrInvalidInput)
	}
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	quote.Status = status
	quote.UpdatedAt = time.Now().UTC()
	if err := uc.quotes.Update(quote); err != nil {
		return nil, err
	}
	resp := toQuoteResponse(quote)
	return &resp, nil
}

// Delete elimina la cotización o falla con domain.ErrNotFound.
func (uc *QuoteUseCase) Delete(id int) error {
	return uc.quotes.Delete(id)
}

func fromQuoteItemPayloads(in []dto.QuoteItemPayload) []entity.QuoteItem {
	out := make([]entity.QuoteItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.QuoteItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}
