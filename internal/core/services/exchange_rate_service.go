package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ratePrecision is the number of decimal places kept on derived rates.
const ratePrecision = 8

// pivotCurrency bridges pairs the reference table does not list directly.
const pivotCurrency = "USD"

var currencyCodePattern = regexp.MustCompile(`^[A-Z0-9]{3,5}$`)

// DefaultReferenceRates is the fallback table used when no rate is stored for a pair.
func DefaultReferenceRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD-EUR":  decimal.RequireFromString("0.85"),
		"EUR-USD":  decimal.RequireFromString("1.18"),
		"USD-GBP":  decimal.RequireFromString("0.73"),
		"GBP-USD":  decimal.RequireFromString("1.37"),
		"EUR-GBP":  decimal.RequireFromString("0.86"),
		"GBP-EUR":  decimal.RequireFromString("1.16"),
		"USD-USDC": decimal.RequireFromString("1.0"),
		"USD-JPY":  decimal.RequireFromString("149.50"),
		"USD-CHF":  decimal.RequireFromString("0.88"),
		"USD-CAD":  decimal.RequireFromString("1.36"),
		"USD-AUD":  decimal.RequireFromString("1.52"),
		"USD-BTC":  decimal.RequireFromString("0.00001"),
		"USD-ETH":  decimal.RequireFromString("0.00033333"),
	}
}

type exchangeRateService struct {
	BaseService
	rateRepo       portsrepo.ExchangeRateRepositoryFacade
	currencyRepo   portsrepo.CurrencyReader
	referenceRates map[string]decimal.Decimal
	clock          func() time.Time
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithReferenceRates replaces the fallback table.
func WithReferenceRates(rates map[string]decimal.Decimal) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.referenceRates = rates
	}
}

// WithExchangeRateClock sets the time source used for audit fields.
func WithExchangeRateClock(clock func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.clock = clock
	}
}

// NewExchangeRateService creates a rate provider backed by stored rates with a
// reference table fallback.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:       rateRepo,
		currencyRepo:   currencyRepo,
		referenceRates: DefaultReferenceRates(),
		clock:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rate, err := s.GetExchangeRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Rate, nil
}

// GetExchangeRate resolves a pair from stored rates first, then the reference table.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(strings.TrimSpace(fromCode))
	toCode = strings.ToUpper(strings.TrimSpace(toCode))
	if !currencyCodePattern.MatchString(fromCode) || !currencyCodePattern.MatchString(toCode) {
		return nil, fmt.Errorf("%w: currency codes must be 3 to 5 letters or digits", apperrors.ErrValidation)
	}

	now := s.clock()
	if fromCode == toCode {
		return s.derivedRate(fromCode, toCode, decimal.NewFromInt(1), now), nil
	}

	stored, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load stored exchange rate",
			slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	rate, ok := s.referenceRate(fromCode, toCode)
	if !ok {
		s.LogWarn(ctx, "No exchange rate for pair", slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrRateUnavailable, fromCode, toCode)
	}
	s.LogDebug(ctx, "Using reference exchange rate",
		slog.String("from", fromCode), slog.String("to", toCode), slog.String("rate", rate.String()))
	return s.derivedRate(fromCode, toCode, rate, now), nil
}

// referenceRate looks for the pair directly, as an inverse, then through the pivot currency.
func (s *exchangeRateService) referenceRate(from, to string) (decimal.Decimal, bool) {
	if rate, ok := s.lookup(from, to); ok {
		return rate, true
	}
	if from == pivotCurrency || to == pivotCurrency {
		return decimal.Zero, false
	}
	toPivot, ok := s.lookup(from, pivotCurrency)
	if !ok {
		return decimal.Zero, false
	}
	fromPivot, ok := s.lookup(pivotCurrency, to)
	if !ok {
		return decimal.Zero, false
	}
	return toPivot.Mul(fromPivot).Round(ratePrecision), true
}

func (s *exchangeRateService) lookup(from, to string) (decimal.Decimal, bool) {
	if rate, ok := s.referenceRates[from+"-"+to]; ok {
		return rate, true
	}
	if inverse, ok := s.referenceRates[to+"-"+from]; ok && inverse.IsPositive() {
		return decimal.NewFromInt(1).DivRound(inverse, ratePrecision), true
	}
	return decimal.Zero, false
}

func (s *exchangeRateService) derivedRate(from, to string, rate decimal.Decimal, now time.Time) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rate,
		DateEffective:    now.UTC().Truncate(24 * time.Hour),
	}
}

// CreateExchangeRate stores a rate that takes precedence over the reference table.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(strings.TrimSpace(req.FromCurrencyCode))
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrencyCode))

	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	for _, code := range []string{from, to} {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
			}
			return nil, fmt.Errorf("failed to validate currency '%s': %w", code, err)
		}
	}

	now := s.clock()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate stored",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("from", from), slog.String("to", to))
	return &rate, nil
}
