package services

import (
	"context"
	"fmt"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
)

type paymentMethodService struct {
	BaseService
	methodRepo portsrepo.PaymentMethodReader
}

// NewPaymentMethodService creates a service over the payment method catalog.
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodReader) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo}
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.ListPaymentMethods(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods")
		return nil, fmt.Errorf("failed to list payment methods in service: %w", err)
	}
	if methods == nil {
		return []domain.PaymentMethod{}, nil
	}
	return methods, nil
}
