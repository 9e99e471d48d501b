package repositories

import (
	"context"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
)

// ConsumeQuoteParams identifies the quote and route being executed and the
// identifiers of the records created for the execution.
type ConsumeQuoteParams struct {
	QuoteID         string
	PaymentMethodID string
	TransactionID   string
	RouteID         string
	Now             time.Time
}

// QuoteConsumer performs the single atomic step of an execution.
type QuoteConsumer interface {
	// ConsumeQuote marks the quote used if and only if it is active and
	// expires after params.Now, then records a pending transaction and its
	// selected route. Concurrent calls for one quote succeed at most once; the
	// others get apperrors.ErrQuoteNotUsable. When the quote has no route for
	// the payment method nothing is changed and apperrors.ErrRouteNotFound is
	// returned.
	ConsumeQuote(ctx context.Context, params ConsumeQuoteParams) (*domain.ConsumedQuote, error)
}

// TransactionReader defines read operations for executed transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its route.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for executed transactions
type TransactionWriter interface {
	// UpdateTransactionStatus records the rail's answer for a transaction.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, providerReference *string, now time.Time) error
}

// ExecutionRepositoryFacade combines all execution-related repository interfaces
type ExecutionRepositoryFacade interface {
	QuoteConsumer
	TransactionReader
	TransactionWriter
}

// ExecutionRepositoryWithTx extends ExecutionRepositoryFacade with transaction capabilities
type ExecutionRepositoryWithTx interface {
	ExecutionRepositoryFacade
	TransactionManager
}
