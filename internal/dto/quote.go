package dto

import (
	"time"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the data needed to quote a transfer.
type CreateQuoteRequest struct {
	SourceCurrency string          `json:"source_currency" binding:"required,min=3,max=5,alphanum"`
	TargetCurrency string          `json:"target_currency" binding:"required,min=3,max=5,alphanum"`
	SourceAmount   decimal.Decimal `json:"source_amount" binding:"required,positive_decimal"`
}

// QuoteRouteResponse is one ranked route of a quote.
type QuoteRouteResponse struct {
	Rank               int             `json:"rank"`
	PaymentMethodID    string          `json:"payment_method_id"`
	MethodName         string          `json:"method_name"`
	MethodType         string          `json:"method_type"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	EstimatedTimeHours decimal.Decimal `json:"estimated_time_hours"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	Score              decimal.Decimal `json:"score"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID        string               `json:"quote_id"`
	SourceCurrency string               `json:"source_currency"`
	TargetCurrency string               `json:"target_currency"`
	SourceAmount   decimal.Decimal      `json:"source_amount"`
	ExchangeRate   decimal.Decimal      `json:"exchange_rate"`
	TargetAmount   decimal.Decimal      `json:"target_amount"`
	Status         string               `json:"status"`
	Routes         []QuoteRouteResponse `json:"routes"`
	CreatedAt      time.Time            `json:"created_at"`
	ExpiresAt      time.Time            `json:"expires_at"`
}

// ToQuoteResponse converts a domain.Quote to its DTO, reporting the status a
// reader sees at now.
func ToQuoteResponse(q *domain.Quote, now time.Time) QuoteResponse {
	routes := make([]QuoteRouteResponse, len(q.Routes))
	for i, r := range q.Routes {
		routes[i] = QuoteRouteResponse{
			Rank:               r.Rank,
			PaymentMethodID:    r.PaymentMethodID,
			MethodName:         r.MethodName,
			MethodType:         string(r.MethodType),
			EstimatedCost:      r.EstimatedCost,
			TotalCost:          r.TotalCost,
			EstimatedTimeHours: r.EstimatedTimeHours,
			ExchangeRate:       q.ExchangeRate,
			TargetAmount:       q.TargetAmount,
			Score:              r.Score,
		}
	}
	return QuoteResponse{
		QuoteID:        q.QuoteID,
		SourceCurrency: q.SourceCurrency,
		TargetCurrency: q.TargetCurrency,
		SourceAmount:   q.SourceAmount,
		ExchangeRate:   q.ExchangeRate,
		TargetAmount:   q.TargetAmount,
		Status:         string(q.EffectiveStatus(now)),
		Routes:         routes,
		CreatedAt:      q.CreatedAt,
		ExpiresAt:      q.ExpiresAt,
	}
}
