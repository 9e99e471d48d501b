package mapping

import (
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/ARLocke322/Payment-Router/internal/models"
)

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID:    d.PaymentMethodID,
		Name:               d.Name,
		Type:               string(d.Type),
		MinAmount:          d.MinAmount,
		MaxAmount:          d.MaxAmount,
		AvgSettlementHours: d.AvgSettlementHours,
		FeePercentage:      d.FeePercentage,
		SourceCurrencies:   d.SourceCurrencies,
		TargetCurrencies:   d.TargetCurrencies,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID:    m.PaymentMethodID,
		Name:               m.Name,
		Type:               domain.PaymentMethodType(m.Type),
		MinAmount:          m.MinAmount,
		MaxAmount:          m.MaxAmount,
		AvgSettlementHours: m.AvgSettlementHours,
		FeePercentage:      m.FeePercentage,
		SourceCurrencies:   m.SourceCurrencies,
		TargetCurrencies:   m.TargetCurrencies,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentMethodSlice converts model PaymentMethods to domain PaymentMethods
func ToDomainPaymentMethodSlice(ms []models.PaymentMethod) []domain.PaymentMethod {
	ds := make([]domain.PaymentMethod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethod(m)
	}
	return ds
}
