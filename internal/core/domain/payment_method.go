package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PaymentMethodType is the settlement mechanism behind a payment method.
type PaymentMethodType string

const (
	PaymentMethodWire     PaymentMethodType = "wire"
	PaymentMethodRegional PaymentMethodType = "regional"
	PaymentMethodCrypto   PaymentMethodType = "crypto"
)

// PaymentMethod is catalog reference data describing one way of moving money.
type PaymentMethod struct {
	PaymentMethodID    string            `json:"paymentMethodID"`
	Name               string            `json:"name"`
	Type               PaymentMethodType `json:"type"`
	MinAmount          decimal.Decimal   `json:"minAmount"`
	MaxAmount          decimal.Decimal   `json:"maxAmount"`
	AvgSettlementHours decimal.Decimal   `json:"avgSettlementHours"`
	FeePercentage      decimal.Decimal   `json:"feePercentage"` // fraction, 0.01 is 1%
	SourceCurrencies   []string          `json:"sourceCurrencies"`
	TargetCurrencies   []string          `json:"targetCurrencies"`
	IsActive           bool              `json:"isActive"`
	AuditFields
}

// CoversAmount reports whether amount lies within [MinAmount, MaxAmount].
func (m PaymentMethod) CoversAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(m.MinAmount) && amount.LessThanOrEqual(m.MaxAmount)
}

// SupportsPair reports whether the method accepts source and target currencies.
func (m PaymentMethod) SupportsPair(source, target string) bool {
	return slices.Contains(m.SourceCurrencies, source) && slices.Contains(m.TargetCurrencies, target)
}

// IsEligible reports whether the method can quote the transfer.
func (m PaymentMethod) IsEligible(source, target string, amount decimal.Decimal) bool {
	return m.IsActive && m.CoversAmount(amount) && m.SupportsPair(source, target)
}
