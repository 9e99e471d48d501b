package repositories

import (
	"context"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
)

// QuoteReader defines read operations for quotes
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its routes ordered by rank.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
}

// QuoteWriter defines write operations for quotes
type QuoteWriter interface {
	// SaveQuote persists a quote and all of its routes as one unit; readers never
	// observe one without the other.
	SaveQuote(ctx context.Context, quote domain.Quote) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}

// QuoteRepositoryWithTx extends QuoteRepositoryFacade with transaction capabilities
type QuoteRepositoryWithTx interface {
	QuoteRepositoryFacade
	TransactionManager
}
