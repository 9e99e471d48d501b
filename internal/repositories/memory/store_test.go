package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/ARLocke322/Payment-Router/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var created = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func seedQuote(t *testing.T, s *memory.Store, id string) domain.Quote {
	t.Helper()
	amount := decimal.NewFromInt(1000)
	methods, err := s.FindEligiblePaymentMethods(context.Background(), "USD", "EUR", amount)
	require.NoError(t, err)
	require.NotEmpty(t, methods)

	routes := make([]domain.QuoteRoute, 0, len(methods))
	for i, m := range methods {
		routes = append(routes, domain.NewQuoteRoute(id, fmt.Sprintf("%s-r%d", id, i), amount, m))
	}
	domain.RankRoutes(routes)

	q := domain.Quote{
		QuoteID:        id,
		SourceCurrency: "USD",
		TargetCurrency: "EUR",
		SourceAmount:   amount,
		ExchangeRate:   decimal.RequireFromString("0.85"),
		TargetAmount:   decimal.NewFromInt(850),
		Status:         domain.QuoteActive,
		CreatedAt:      created,
		ExpiresAt:      created.Add(domain.DefaultQuoteTTL),
		Routes:         routes,
	}
	require.NoError(t, s.SaveQuote(context.Background(), q))
	return q
}

func consumeParams(quoteID, methodID, txnID string, now time.Time) portsrepo.ConsumeQuoteParams {
	return portsrepo.ConsumeQuoteParams{
		QuoteID:         quoteID,
		PaymentMethodID: methodID,
		TransactionID:   txnID,
		RouteID:         txnID + "-route",
		Now:             now,
	}
}

func TestStore_FindEligiblePaymentMethods(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()

	methods, err := s.FindEligiblePaymentMethods(ctx, "USD", "EUR", decimal.NewFromInt(1000))
	require.NoError(t, err)
	ids := make([]string, len(methods))
	for i, m := range methods {
		ids[i] = m.PaymentMethodID
	}
	assert.Equal(t, []string{"correspondent-banking", "international-ach", "overnight-express", "same-day-wire", "swift-wire"}, ids)

	methods, err = s.FindEligiblePaymentMethods(ctx, "BTC", "BTC", decimal.RequireFromString("0.0005"))
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "bitcoin-network", methods[0].PaymentMethodID)
	assert.Equal(t, "lightning-network", methods[1].PaymentMethodID)

	methods, err = s.FindEligiblePaymentMethods(ctx, "USDC", "EUR", decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Empty(t, methods)
}

func TestStore_ConsumeQuote_Success(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()
	q := seedQuote(t, s, "q-1")

	consumed, err := s.ConsumeQuote(ctx, consumeParams(q.QuoteID, "swift-wire", "t-1", created.Add(time.Minute)))
	require.NoError(t, err)

	assert.Equal(t, domain.QuoteUsed, consumed.Quote.Status)
	assert.Equal(t, "swift-wire", consumed.QuoteRoute.PaymentMethodID)
	assert.Equal(t, "SWIFT Wire Transfer", consumed.QuoteRoute.MethodName)
	assert.Equal(t, domain.TransactionPending, consumed.Transaction.Status)
	require.NotNil(t, consumed.Transaction.Route)
	assert.True(t, consumed.Transaction.Route.IsSelected)
	assert.True(t, consumed.Transaction.Route.ExchangeRate.Equal(q.ExchangeRate))

	stored, err := s.FindQuoteByID(ctx, q.QuoteID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteUsed, stored.Status)

	_, err = s.ConsumeQuote(ctx, consumeParams(q.QuoteID, "swift-wire", "t-2", created.Add(time.Minute)))
	assert.ErrorIs(t, err, apperrors.ErrQuoteNotUsable)
}

func TestStore_ConsumeQuote_RouteNotFoundLeavesQuoteActive(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()
	q := seedQuote(t, s, "q-1")

	_, err := s.ConsumeQuote(ctx, consumeParams(q.QuoteID, "sepa-instant", "t-1", created.Add(time.Minute)))
	assert.ErrorIs(t, err, apperrors.ErrRouteNotFound)

	stored, err := s.FindQuoteByID(ctx, q.QuoteID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteActive, stored.Status)

	_, err = s.FindTransactionByID(ctx, "t-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ConsumeQuote_Expired(t *testing.T) {
	s := memory.NewSeededStore()
	q := seedQuote(t, s, "q-1")

	_, err := s.ConsumeQuote(context.Background(), consumeParams(q.QuoteID, "swift-wire", "t-1", q.ExpiresAt))
	assert.ErrorIs(t, err, apperrors.ErrQuoteNotUsable)
}

func TestStore_ConsumeQuote_Unknown(t *testing.T) {
	s := memory.NewSeededStore()

	_, err := s.ConsumeQuote(context.Background(), consumeParams("missing", "swift-wire", "t-1", created))
	assert.ErrorIs(t, err, apperrors.ErrQuoteNotUsable)
}

func TestStore_ConsumeQuote_ConcurrentSingleWinner(t *testing.T) {
	s := memory.NewSeededStore()
	q := seedQuote(t, s, "q-1")
	now := created.Add(time.Minute)

	const callers = 64
	var wins, losses atomic.Int32
	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			_, err := s.ConsumeQuote(context.Background(), consumeParams(q.QuoteID, "swift-wire", fmt.Sprintf("t-%d", i), now))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, apperrors.ErrQuoteNotUsable):
				losses.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(callers-1), losses.Load())
}

func TestStore_UpdateTransactionStatus(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()
	q := seedQuote(t, s, "q-1")
	_, err := s.ConsumeQuote(ctx, consumeParams(q.QuoteID, "swift-wire", "t-1", created))
	require.NoError(t, err)

	ref := "SWIFT_ABC"
	later := created.Add(time.Second)
	require.NoError(t, s.UpdateTransactionStatus(ctx, "t-1", domain.TransactionProcessing, &ref, later))

	txn, err := s.FindTransactionByID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionProcessing, txn.Status)
	require.NotNil(t, txn.ProviderReference)
	assert.Equal(t, "SWIFT_ABC", *txn.ProviderReference)
	assert.Equal(t, later, txn.LastUpdatedAt)

	err = s.UpdateTransactionStatus(ctx, "missing", domain.TransactionFailed, nil, later)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_FindExchangeRate(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()

	older := domain.ExchangeRate{ExchangeRateID: "r-1", FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.80"), DateEffective: created.AddDate(0, 0, -1)}
	newer := domain.ExchangeRate{ExchangeRateID: "r-2", FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.90"), DateEffective: created}
	require.NoError(t, s.SaveExchangeRate(ctx, older))
	require.NoError(t, s.SaveExchangeRate(ctx, newer))

	direct, err := s.FindExchangeRate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, direct.Rate.Equal(decimal.RequireFromString("0.90")))

	inverse, err := s.FindExchangeRate(ctx, "EUR", "USD")
	require.NoError(t, err)
	assert.Equal(t, "EUR", inverse.FromCurrencyCode)
	assert.True(t, inverse.Rate.Equal(decimal.RequireFromString("1.111111111111")), "got %s", inverse.Rate)

	_, err = s.FindExchangeRate(ctx, "GBP", "JPY")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.SaveExchangeRate(ctx, domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "USD", Rate: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStore_ListCurrencies(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()

	jpy, err := s.FindCurrencyByCode(ctx, "JPY")
	require.NoError(t, err)
	jpy.IsActive = false
	require.NoError(t, s.SaveCurrency(ctx, *jpy))

	active, err := s.ListCurrencies(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 9)
	assert.Equal(t, "AUD", active[0].CurrencyCode)

	all, err := s.ListCurrencies(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
