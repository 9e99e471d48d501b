package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the persisted state of an execution attempt.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionFailed     TransactionStatus = "failed"
)

// Transaction records one execution of a quote.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	QuoteID           string            `json:"quoteID"`
	SourceCurrency    string            `json:"sourceCurrency"`
	TargetCurrency    string            `json:"targetCurrency"`
	SourceAmount      decimal.Decimal   `json:"sourceAmount"`
	TargetAmount      decimal.Decimal   `json:"targetAmount"`
	Status            TransactionStatus `json:"status"`
	ProviderReference *string           `json:"providerReference,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
	Route             *Route            `json:"route,omitempty"`
}

// Route is the audit record of the path a transaction took.
type Route struct {
	RouteID            string          `json:"routeID"`
	TransactionID      string          `json:"transactionID"`
	PaymentMethodID    string          `json:"paymentMethodID"`
	EstimatedCost      decimal.Decimal `json:"estimatedCost"`
	EstimatedTimeHours decimal.Decimal `json:"estimatedTimeHours"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Score              decimal.Decimal `json:"score"`
	IsSelected         bool            `json:"isSelected"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ConsumedQuote is what the storage layer hands back after atomically marking a
// quote used: the quote, the chosen route and the records created for it.
type ConsumedQuote struct {
	Quote       Quote
	QuoteRoute  QuoteRoute
	Transaction Transaction
}

// ExecutionResult is the answer to an execute request.
type ExecutionResult struct {
	TransactionID       string          `json:"transactionID"`
	QuoteID             string          `json:"quoteID"`
	PaymentMethodID     string          `json:"paymentMethodID"`
	Status              string          `json:"status"` // the rail's outcome status
	SourceCurrency      string          `json:"sourceCurrency"`
	TargetCurrency      string          `json:"targetCurrency"`
	SourceAmount        decimal.Decimal `json:"sourceAmount"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	ExchangeRate        decimal.Decimal `json:"exchangeRate"`
	RailFee             decimal.Decimal `json:"railFee"`
	RailFeeCurrency     string          `json:"railFeeCurrency"`
	ProviderReference   *string         `json:"providerReference,omitempty"`
	Message             string          `json:"message"`
	ValidationErrors    []string        `json:"validationErrors,omitempty"`
	EstimatedCompletion *time.Time      `json:"estimatedCompletion,omitempty"`
}
