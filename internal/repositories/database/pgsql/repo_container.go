package pgsql

import (
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:      newPgxCurrencyRepository(dbPool),
		PaymentMethodRepo: newPgxPaymentMethodRepository(dbPool),
		ExchangeRateRepo:  newPgxExchangeRateRepository(dbPool),
		QuoteRepo:         newPgxQuoteRepository(dbPool),
		ExecutionRepo:     newPgxExecutionRepository(dbPool),
		Health:            &BaseRepository{Pool: dbPool},
	}
}
