package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/ARLocke322/Payment-Router/internal/models"
	"github.com/ARLocke322/Payment-Router/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const paymentMethodColumns = `
	payment_method_id, name, type, min_amount, max_amount, avg_settlement_hours, fee_percentage,
	source_currencies, target_currencies, is_active, created_at, created_by, last_updated_at, last_updated_by`

// PgxPaymentMethodRepository reads and writes the payment method catalog.
type PgxPaymentMethodRepository struct {
	BaseRepository
}

func newPgxPaymentMethodRepository(pool *pgxpool.Pool) *PgxPaymentMethodRepository {
	return &PgxPaymentMethodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

// SavePaymentMethod inserts or updates a payment method.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (payment_method_id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			min_amount = EXCLUDED.min_amount,
			max_amount = EXCLUDED.max_amount,
			avg_settlement_hours = EXCLUDED.avg_settlement_hours,
			fee_percentage = EXCLUDED.fee_percentage,
			source_currencies = EXCLUDED.source_currencies,
			target_currencies = EXCLUDED.target_currencies,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentMethodID, m.Name, m.Type, m.MinAmount, m.MaxAmount, m.AvgSettlementHours, m.FeePercentage,
		m.SourceCurrencies, m.TargetCurrencies, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment method %s: %w", m.PaymentMethodID, err)
	}
	return nil
}

// FindPaymentMethodByID retrieves a payment method by its identifier.
func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE payment_method_id = $1;`

	m, err := scanPaymentMethod(r.Pool.QueryRow(ctx, query, paymentMethodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment method " + paymentMethodID + " not found")
		}
		return nil, fmt.Errorf("failed to find payment method %s: %w", paymentMethodID, err)
	}
	method := mapping.ToDomainPaymentMethod(m)
	return &method, nil
}

// ListPaymentMethods retrieves the catalog ordered by identifier.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error) {
	query := `
		SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE is_active OR NOT $1
		ORDER BY payment_method_id;
	`
	return r.query(ctx, query, activeOnly)
}

// FindEligiblePaymentMethods retrieves active methods covering the amount and currency pair.
func (r *PgxPaymentMethodRepository) FindEligiblePaymentMethods(ctx context.Context, source, target string, amount decimal.Decimal) ([]domain.PaymentMethod, error) {
	query := `
		SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE is_active
			AND $1::numeric BETWEEN min_amount AND max_amount
			AND $2 = ANY(source_currencies)
			AND $3 = ANY(target_currencies)
		ORDER BY payment_method_id;
	`
	return r.query(ctx, query, amount, source, target)
}

func (r *PgxPaymentMethodRepository) query(ctx context.Context, query string, args ...any) ([]domain.PaymentMethod, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	methods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PaymentMethod, error) {
		return scanPaymentMethod(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment methods: %w", err)
	}
	return mapping.ToDomainPaymentMethodSlice(methods), nil
}

func scanPaymentMethod(row pgx.Row) (models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := row.Scan(
		&m.PaymentMethodID, &m.Name, &m.Type, &m.MinAmount, &m.MaxAmount, &m.AvgSettlementHours, &m.FeePercentage,
		&m.SourceCurrencies, &m.TargetCurrencies, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
