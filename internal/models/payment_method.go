package models

import "github.com/shopspring/decimal"

// PaymentMethod is a row of the payment_methods catalog table.
type PaymentMethod struct {
	PaymentMethodID    string          `json:"paymentMethodID"` // Primary Key (slug, e.g. "swift-wire")
	Name               string          `json:"name"`            // Unique; resolved to a rail at execution
	Type               string          `json:"type"`            // wire, regional or crypto
	MinAmount          decimal.Decimal `json:"minAmount"`
	MaxAmount          decimal.Decimal `json:"maxAmount"`
	AvgSettlementHours decimal.Decimal `json:"avgSettlementHours"`
	FeePercentage      decimal.Decimal `json:"feePercentage"`
	SourceCurrencies   []string        `json:"sourceCurrencies"` // text[]
	TargetCurrencies   []string        `json:"targetCurrencies"` // text[]
	IsActive           bool            `json:"isActive"`
	AuditFields
}
