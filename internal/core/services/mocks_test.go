package services_test

import (
	"context"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/ARLocke322/Payment-Router/internal/rails"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock PaymentMethodRepository ---
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) FindEligiblePaymentMethods(ctx context.Context, source, target string, amount decimal.Decimal) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, source, target, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

// --- Mock ExecutionRepository ---
type MockExecutionRepository struct {
	mock.Mock
}

func (m *MockExecutionRepository) ConsumeQuote(ctx context.Context, params portsrepo.ConsumeQuoteParams) (*domain.ConsumedQuote, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsumedQuote), args.Error(1)
}

func (m *MockExecutionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockExecutionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, providerReference *string, now time.Time) error {
	args := m.Called(ctx, transactionID, status, providerReference, now)
	return args.Error(0)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetActiveCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock PaymentEventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPaymentExecuted(ctx context.Context, result domain.ExecutionResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

// --- Mock RailResolver ---
type MockRailResolver struct {
	mock.Mock
}

func (m *MockRailResolver) Resolve(methodName string) (rails.PaymentRail, error) {
	args := m.Called(methodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rails.PaymentRail), args.Error(1)
}

// --- Mock RailExecutor ---
type MockRailExecutor struct {
	mock.Mock
}

func (m *MockRailExecutor) Execute(ctx context.Context, rail rails.PaymentRail, instr rails.Instruction, rnd rails.RandomSource) (*rails.Outcome, error) {
	args := m.Called(ctx, rail, instr, rnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rails.Outcome), args.Error(1)
}

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// stubRail answers with a fixed outcome and a fixed fee.
type stubRail struct {
	outcome *rails.Outcome
	fee     rails.Fee
}

func (r stubRail) Name() string { return "StubRail" }

func (r stubRail) Validate(rails.Instruction) rails.ValidationResult {
	return rails.ValidationResult{Valid: true}
}

func (r stubRail) Execute(context.Context, rails.Instruction, rails.RandomSource) (*rails.Outcome, error) {
	return r.outcome, nil
}

func (r stubRail) EstimateSettlement(rails.Instruction, rails.RandomSource) float64 { return 1 }

func (r stubRail) CalculateFees(rails.Instruction, rails.RandomSource) rails.Fee { return r.fee }

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// quoteTime is a Wednesday morning, inside every rail's business hours.
var quoteTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
