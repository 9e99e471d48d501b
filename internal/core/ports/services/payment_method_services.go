package services

import (
	"context"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
)

// PaymentMethodSvcFacade exposes the payment method catalog.
type PaymentMethodSvcFacade interface {
	// ListPaymentMethods retrieves the active payment methods.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
