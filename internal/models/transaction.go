package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID     string          `json:"transactionID"` // Primary Key (UUID)
	QuoteID           string          `json:"quoteID"`       // FK -> quotes (reference only)
	SourceCurrency    string          `json:"sourceCurrency"`
	TargetCurrency    string          `json:"targetCurrency"`
	SourceAmount      decimal.Decimal `json:"sourceAmount"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	Status            string          `json:"status"`
	ProviderReference *string         `json:"providerReference"` // Nullable
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// Route is a row of the routes audit table.
type Route struct {
	RouteID            string          `json:"routeID"`       // Primary Key (UUID)
	TransactionID      string          `json:"transactionID"` // FK -> transactions, cascade delete
	PaymentMethodID    string          `json:"paymentMethodID"`
	EstimatedCost      decimal.Decimal `json:"estimatedCost"`
	EstimatedTimeHours decimal.Decimal `json:"estimatedTimeHours"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Score              decimal.Decimal `json:"score"`
	IsSelected         bool            `json:"isSelected"`
	CreatedAt          time.Time       `json:"createdAt"`
}
