package dto

import (
	"time"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExecutePaymentRequest selects one route of a quote for execution.
type ExecutePaymentRequest struct {
	QuoteID         string `json:"quote_id" binding:"required,uuid"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

// ExecutionResponse defines the data returned after executing a quote.
type ExecutionResponse struct {
	TransactionID       string          `json:"transaction_id"`
	Status              string          `json:"status"`
	QuoteID             string          `json:"quote_id"`
	PaymentMethodID     string          `json:"payment_method_id"`
	SourceCurrency      string          `json:"source_currency"`
	TargetCurrency      string          `json:"target_currency"`
	SourceAmount        decimal.Decimal `json:"source_amount"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	ExchangeRate        decimal.Decimal `json:"exchange_rate"`
	RailFee             decimal.Decimal `json:"rail_fee"`
	RailFeeCurrency     string          `json:"rail_fee_currency"`
	ProviderReference   *string         `json:"provider_reference"`
	Message             string          `json:"message"`
	ValidationErrors    []string        `json:"validation_errors,omitempty"`
	EstimatedCompletion *time.Time      `json:"estimated_completion,omitempty"`
}

// ToExecutionResponse converts a domain.ExecutionResult to its DTO
func ToExecutionResponse(r *domain.ExecutionResult) ExecutionResponse {
	return ExecutionResponse{
		TransactionID:       r.TransactionID,
		Status:              r.Status,
		QuoteID:             r.QuoteID,
		PaymentMethodID:     r.PaymentMethodID,
		SourceCurrency:      r.SourceCurrency,
		TargetCurrency:      r.TargetCurrency,
		SourceAmount:        r.SourceAmount,
		TargetAmount:        r.TargetAmount,
		ExchangeRate:        r.ExchangeRate,
		RailFee:             r.RailFee,
		RailFeeCurrency:     r.RailFeeCurrency,
		ProviderReference:   r.ProviderReference,
		Message:             r.Message,
		ValidationErrors:    r.ValidationErrors,
		EstimatedCompletion: r.EstimatedCompletion,
	}
}

// RouteResponse is the audit record of an executed route.
type RouteResponse struct {
	PaymentMethodID    string          `json:"payment_method_id"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`
	EstimatedTimeHours decimal.Decimal `json:"estimated_time_hours"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	Score              decimal.Decimal `json:"score"`
	IsSelected         bool            `json:"is_selected"`
}

// TransactionResponse defines the data returned for a stored transaction.
type TransactionResponse struct {
	TransactionID     string          `json:"transaction_id"`
	QuoteID           string          `json:"quote_id"`
	SourceCurrency    string          `json:"source_currency"`
	TargetCurrency    string          `json:"target_currency"`
	SourceAmount      decimal.Decimal `json:"source_amount"`
	TargetAmount      decimal.Decimal `json:"target_amount"`
	Status            string          `json:"status"`
	ProviderReference *string         `json:"provider_reference"`
	Route             *RouteResponse  `json:"route,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:     t.TransactionID,
		QuoteID:           t.QuoteID,
		SourceCurrency:    t.SourceCurrency,
		TargetCurrency:    t.TargetCurrency,
		SourceAmount:      t.SourceAmount,
		TargetAmount:      t.TargetAmount,
		Status:            string(t.Status),
		ProviderReference: t.ProviderReference,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.LastUpdatedAt,
	}
	if t.Route != nil {
		res.Route = &RouteResponse{
			PaymentMethodID:    t.Route.PaymentMethodID,
			EstimatedCost:      t.Route.EstimatedCost,
			EstimatedTimeHours: t.Route.EstimatedTimeHours,
			ExchangeRate:       t.Route.ExchangeRate,
			Score:              t.Route.Score,
			IsSelected:         t.Route.IsSelected,
		}
	}
	return res
}
