package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/ARLocke322/Payment-Router/internal/models"
	"github.com/ARLocke322/Payment-Router/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quoteColumns = `quote_id, source_currency, target_currency, source_amount, exchange_rate, target_amount, status, created_at, expires_at`

// quoteRouteSelect reads routes with the method name and type the rail registry needs.
const quoteRouteSelect = `
	SELECT qr.quote_route_id, qr.quote_id, qr.payment_method_id, pm.name, pm.type,
		qr.estimated_cost, qr.total_cost, qr.estimated_time_hours, qr.score, qr.rank
	FROM quote_routes qr
	JOIN payment_methods pm ON pm.payment_method_id = qr.payment_method_id`

// PgxQuoteRepository persists quotes and their ranked routes.
type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) *PgxQuoteRepository {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepositoryWithTx = (*PgxQuoteRepository)(nil)

// SaveQuote inserts the quote and every route in one transaction.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	mq := mapping.ToModelQuote(quote)
	_, err = tx.Exec(ctx, `
		INSERT INTO quotes (`+quoteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		mq.QuoteID, mq.SourceCurrency, mq.TargetCurrency, mq.SourceAmount, mq.ExchangeRate,
		mq.TargetAmount, mq.Status, mq.CreatedAt, mq.ExpiresAt,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert quote "+mq.QuoteID, err)
	}

	batch := &pgx.Batch{}
	for _, route := range quote.Routes {
		mr := mapping.ToModelQuoteRoute(route)
		batch.Queue(`
			INSERT INTO quote_routes (
				quote_route_id, quote_id, payment_method_id, estimated_cost, total_cost,
				estimated_time_hours, score, rank
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			mr.QuoteRouteID, mq.QuoteID, mr.PaymentMethodID, mr.EstimatedCost, mr.TotalCost,
			mr.EstimatedTimeHours, mr.Score, mr.Rank,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert routes for quote "+mq.QuoteID, err)
	}

	return r.Commit(ctx, tx)
}

// FindQuoteByID retrieves a quote with its routes ordered by rank.
func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	if !isUUID(quoteID) {
		return nil, apperrors.NewNotFoundError("quote " + quoteID + " not found")
	}

	mq, err := scanQuote(r.Pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE quote_id = $1;`, quoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("quote " + quoteID + " not found")
		}
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}

	rows, err := r.Pool.Query(ctx, quoteRouteSelect+` WHERE qr.quote_id = $1 ORDER BY qr.rank;`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes for quote %s: %w", quoteID, err)
	}
	defer rows.Close()

	routes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuoteRoute, error) {
		return scanQuoteRoute(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan routes for quote %s: %w", quoteID, err)
	}

	quote := mapping.ToDomainQuote(mq, routes)
	return &quote, nil
}

func scanQuote(row pgx.Row) (models.Quote, error) {
	var q models.Quote
	err := row.Scan(
		&q.QuoteID, &q.SourceCurrency, &q.TargetCurrency, &q.SourceAmount, &q.ExchangeRate,
		&q.TargetAmount, &q.Status, &q.CreatedAt, &q.ExpiresAt,
	)
	return q, err
}

func scanQuoteRoute(row pgx.Row) (models.QuoteRoute, error) {
	var qr models.QuoteRoute
	err := row.Scan(
		&qr.QuoteRouteID, &qr.QuoteID, &qr.PaymentMethodID, &qr.MethodName, &qr.MethodType,
		&qr.EstimatedCost, &qr.TotalCost, &qr.EstimatedTimeHours, &qr.Score, &qr.Rank,
	)
	return qr, err
}
