package repositories

import (
	"context"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentMethodReader defines read operations for the payment method catalog
type PaymentMethodReader interface {
	// FindPaymentMethodByID retrieves a payment method by its identifier.
	FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves the catalog, optionally only the active methods.
	ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error)

	// FindEligiblePaymentMethods retrieves active methods whose amount range covers
	// amount and whose currency sets include source and target.
	FindEligiblePaymentMethods(ctx context.Context, source, target string, amount decimal.Decimal) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for the payment method catalog
type PaymentMethodWriter interface {
	// SavePaymentMethod inserts or updates a payment method.
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
}

// PaymentMethodRepositoryFacade combines all payment method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
