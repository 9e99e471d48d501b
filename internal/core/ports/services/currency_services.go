package services

import (
	"context"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// GetActiveCurrency retrieves a currency that can be quoted, or fails with
	// apperrors.ErrInvalidCurrency.
	GetActiveCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves the active currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// RateProvider supplies the conversion rate between two currencies.
type RateProvider interface {
	// Rate returns how many units of to one unit of from buys. Identical codes
	// yield exactly 1.
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves an exchange rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	RateProvider
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
