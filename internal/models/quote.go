package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a row of the quotes table.
type Quote struct {
	QuoteID        string          `json:"quoteID"` // Primary Key (UUID)
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	Status         string          `json:"status"` // active or used
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
}

// QuoteRoute is a row of the quote_routes table. Method name and type are
// joined in from payment_methods when read.
type QuoteRoute struct {
	QuoteRouteID       string          `json:"quoteRouteID"` // Primary Key (UUID)
	QuoteID            string          `json:"quoteID"`      // FK -> quotes, cascade delete
	PaymentMethodID    string          `json:"paymentMethodID"`
	MethodName         string          `json:"methodName"`
	MethodType         string          `json:"methodType"`
	EstimatedCost      decimal.Decimal `json:"estimatedCost"`
	TotalCost          decimal.Decimal `json:"totalCost"`
	EstimatedTimeHours decimal.Decimal `json:"estimatedTimeHours"`
	Score              decimal.Decimal `json:"score"`
	Rank               int             `json:"rank"`
}
