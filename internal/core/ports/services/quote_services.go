package services

import (
	"context"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/ARLocke322/Payment-Router/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	// GetQuote retrieves a quote with its ranked routes.
	GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error)
}

// QuoteWriterSvc defines quote generation
type QuoteWriterSvc interface {
	// GenerateQuote prices every eligible payment method for the transfer and
	// persists the ranked result.
	GenerateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.Quote, error)
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
