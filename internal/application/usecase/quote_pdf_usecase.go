package usecase

import (
	"context"
	"fmt"

	"github.com/soportec/gestor-api/internal/domain/entity"
	"github.com/soportec/gestor-api/internal/domain/repository"
)

// QuotePDFGenerator renderiza una cotización como documento PDF.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote) ([]byte, error)
}

// QuotePDFUseCase produce la representación imprimible de una cotización.
type QuotePDFUseCase struct {
	quotes    repository.QuoteRepository
	generator QuotePDFGenerator
}

// NewQuotePDFUseCase construye el caso de uso.
func NewQuotePDFUseCase(quotes repository.QuoteRepository, generator QuotePDFGenerator) *QuotePDFUseCase {
	return &QuotePDFUseCase{quotes: quotes, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *QuotePDFUseCase) Generate(ctx context.Context, id int) ([]byte, string, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.generator.GenerateQuotePDF(ctx, quote)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf de cotización %d: %w", id, err)
	}
	return data, fmt.Sprintf("cotizacion-%s.pdf", quote.QuoteNumber), nil
}
