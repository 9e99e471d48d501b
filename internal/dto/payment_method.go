package dto

import (
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentMethodResponse defines the data returned for a catalog payment method.
type PaymentMethodResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	MinAmount          decimal.Decimal `json:"min_amount"`
	MaxAmount          decimal.Decimal `json:"max_amount"`
	AvgSettlementHours decimal.Decimal `json:"avg_settlement_hours"`
	FeePercentage      decimal.Decimal `json:"fee_percentage"`
	SourceCurrencies   []string        `json:"source_currencies"`
	TargetCurrencies   []string        `json:"target_currencies"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to its DTO
func ToPaymentMethodResponse(m domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:                 m.PaymentMethodID,
		Name:               m.Name,
		Type:               string(m.Type),
		MinAmount:          m.MinAmount,
		MaxAmount:          m.MaxAmount,
		AvgSettlementHours: m.AvgSettlementHours,
		FeePercentage:      m.FeePercentage,
		SourceCurrencies:   m.SourceCurrencies,
		TargetCurrencies:   m.TargetCurrencies,
	}
}

// ToListPaymentMethodResponse converts payment methods to DTOs
func ToListPaymentMethodResponse(methods []domain.PaymentMethod) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		res[i] = ToPaymentMethodResponse(m)
	}
	return res
}
