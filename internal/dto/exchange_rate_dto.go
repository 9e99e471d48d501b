package dto

import (
	"time"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for storing a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"from_currency" binding:"required,min=3,max=5,alphanum"`
	ToCurrencyCode   string          `json:"to_currency" binding:"required,min=3,max=5,alphanum"`
	Rate             decimal.Decimal `json:"rate" binding:"required,positive_decimal"`
	DateEffective    time.Time       `json:"date_effective" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"id,omitempty"`
	FromCurrencyCode string          `json:"from_currency"`
	ToCurrencyCode   string          `json:"to_currency"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"date_effective"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
	}
}
