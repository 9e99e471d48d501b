package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/ARLocke322/Payment-Router/internal/models"
	"github.com/ARLocke322/Payment-Router/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExecutionRepository stores transactions and performs the atomic quote consume.
type PgxExecutionRepository struct {
	BaseRepository
}

func newPgxExecutionRepository(pool *pgxpool.Pool) *PgxExecutionRepository {
	return &PgxExecutionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExecutionRepositoryWithTx = (*PgxExecutionRepository)(nil)

// ConsumeQuote flips the quote to used with a conditional update, so among
// concurrent callers exactly one sees a returned row. The route lookup and
// the inserts share the transaction; a missing route rolls the flip back.
func (r *PgxExecutionRepository) ConsumeQuote(ctx context.Context, params portsrepo.ConsumeQuoteParams) (*domain.ConsumedQuote, error) {
	if !isUUID(params.QuoteID) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrQuoteNotUsable, params.QuoteID)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	mq, err := scanQuote(tx.QueryRow(ctx, `
		UPDATE quotes SET status = 'used'
		WHERE quote_id = $1 AND status = 'active' AND expires_at > $2
		RETURNING `+quoteColumns+`;`,
		params.QuoteID, params.Now,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrQuoteNotUsable, params.QuoteID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to consume quote "+params.QuoteID, err)
	}

	mr, err := scanQuoteRoute(tx.QueryRow(ctx,
		quoteRouteSelect+` WHERE qr.quote_id = $1 AND qr.payment_method_id = $2;`,
		params.QuoteID, params.PaymentMethodID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRouteNotFound, params.PaymentMethodID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to load quote route", err)
	}

	quote := mapping.ToDomainQuote(mq, []models.QuoteRoute{mr})
	route := quote.Routes[0]

	txn := domain.Transaction{
		TransactionID:  params.TransactionID,
		QuoteID:        quote.QuoteID,
		SourceCurrency: quote.SourceCurrency,
		TargetCurrency: quote.TargetCurrency,
		SourceAmount:   quote.SourceAmount,
		TargetAmount:   quote.TargetAmount,
		Status:         domain.TransactionPending,
		CreatedAt:      params.Now,
		LastUpdatedAt:  params.Now,
		Route: &domain.Route{
			RouteID:            params.RouteID,
			TransactionID:      params.TransactionID,
			PaymentMethodID:    route.PaymentMethodID,
			EstimatedCost:      route.EstimatedCost,
			EstimatedTimeHours: route.EstimatedTimeHours,
			ExchangeRate:       quote.ExchangeRate,
			Score:              route.Score,
			IsSelected:         true,
			CreatedAt:          params.Now,
		},
	}

	mt := mapping.ToModelTransaction(txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (
			transaction_id, quote_id, source_currency, target_currency, source_amount, target_amount,
			status, provider_reference, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		mt.TransactionID, mt.QuoteID, mt.SourceCurrency, mt.TargetCurrency, mt.SourceAmount, mt.TargetAmount,
		mt.Status, mt.ProviderReference, mt.CreatedAt, mt.LastUpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert transaction "+mt.TransactionID, err)
	}

	mroute := mapping.ToModelRoute(*txn.Route)
	_, err = tx.Exec(ctx, `
		INSERT INTO routes (
			route_id, transaction_id, payment_method_id, estimated_cost, estimated_time_hours,
			exchange_rate, score, is_selected, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		mroute.RouteID, mroute.TransactionID, mroute.PaymentMethodID, mroute.EstimatedCost,
		mroute.EstimatedTimeHours, mroute.ExchangeRate, mroute.Score, mroute.IsSelected, mroute.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert route for transaction "+mt.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.ConsumedQuote{Quote: quote, QuoteRoute: route, Transaction: txn}, nil
}

// UpdateTransactionStatus records the rail's answer for a transaction.
func (r *PgxExecutionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, providerReference *string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET status = $2, provider_reference = COALESCE($3, provider_reference), last_updated_at = $4
		WHERE transaction_id = $1;`,
		transactionID, string(status), providerReference, now,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its route. Both rows are
// written by ConsumeQuote in one transaction, so the join never drops a row.
func (r *PgxExecutionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if !isUUID(transactionID) {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}

	var mt models.Transaction
	var mr models.Route
	err := r.Pool.QueryRow(ctx, `
		SELECT t.transaction_id, t.quote_id, t.source_currency, t.target_currency, t.source_amount,
			t.target_amount, t.status, t.provider_reference, t.created_at, t.last_updated_at,
			r.route_id, r.payment_method_id, r.estimated_cost, r.estimated_time_hours,
			r.exchange_rate, r.score, r.is_selected, r.created_at
		FROM transactions t
		JOIN routes r ON r.transaction_id = t.transaction_id
		WHERE t.transaction_id = $1;`,
		transactionID,
	).Scan(
		&mt.TransactionID, &mt.QuoteID, &mt.SourceCurrency, &mt.TargetCurrency, &mt.SourceAmount,
		&mt.TargetAmount, &mt.Status, &mt.ProviderReference, &mt.CreatedAt, &mt.LastUpdatedAt,
		&mr.RouteID, &mr.PaymentMethodID, &mr.EstimatedCost, &mr.EstimatedTimeHours,
		&mr.ExchangeRate, &mr.Score, &mr.IsSelected, &mr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	mr.TransactionID = mt.TransactionID
	txn := mapping.ToDomainTransaction(mt, &mr)
	return &txn, nil
}
