// Package memory is an in-process implementation of the repository ports. It
// honours the same contracts as the Postgres repositories, including the
// single-winner quote consume, and backs STORAGE_DRIVER=memory and tests.
package memory

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store keeps every table in maps guarded by one mutex.
type Store struct {
	mu           sync.RWMutex
	currencies   map[string]domain.Currency
	methods      map[string]domain.PaymentMethod
	rates        map[string][]domain.ExchangeRate
	quotes       map[string]domain.Quote
	transactions map[string]domain.Transaction
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		currencies:   make(map[string]domain.Currency),
		methods:      make(map[string]domain.PaymentMethod),
		rates:        make(map[string][]domain.ExchangeRate),
		quotes:       make(map[string]domain.Quote),
		transactions: make(map[string]domain.Transaction),
	}
}

// NewSeededStore returns a store holding the default currencies and payment methods.
func NewSeededStore() *Store {
	s := NewStore()
	for _, c := range DefaultCurrencies() {
		s.currencies[c.CurrencyCode] = c
	}
	for _, m := range DefaultPaymentMethods() {
		s.methods[m.PaymentMethodID] = m
	}
	return s
}

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:      s,
		PaymentMethodRepo: s,
		ExchangeRateRepo:  s,
		QuoteRepo:         s,
		ExecutionRepo:     s,
		Health:            s,
	}
}

var (
	_ portsrepo.CurrencyRepositoryFacade      = (*Store)(nil)
	_ portsrepo.PaymentMethodRepositoryFacade = (*Store)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade  = (*Store)(nil)
	_ portsrepo.QuoteRepositoryFacade         = (*Store)(nil)
	_ portsrepo.ExecutionRepositoryFacade     = (*Store)(nil)
	_ portsrepo.HealthChecker                 = (*Store)(nil)
)

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// --- currencies ---

func (s *Store) FindCurrencyByCode(_ context.Context, currencyCode string) (*domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.currencies[currencyCode]
	if !ok {
		return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
	}
	return &c, nil
}

func (s *Store) ListCurrencies(_ context.Context, activeOnly bool) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Currency) int { return strings.Compare(a.CurrencyCode, b.CurrencyCode) })
	return out, nil
}

func (s *Store) SaveCurrency(_ context.Context, currency domain.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currencies[currency.CurrencyCode] = currency
	return nil
}

// --- payment methods ---

func (s *Store) FindPaymentMethodByID(_ context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.methods[paymentMethodID]
	if !ok {
		return nil, apperrors.NewNotFoundError("payment method " + paymentMethodID + " not found")
	}
	m = clonePaymentMethod(m)
	return &m, nil
}

func (s *Store) ListPaymentMethods(_ context.Context, activeOnly bool) ([]domain.PaymentMethod, error) {
	return s.filterMethods(func(m domain.PaymentMethod) bool { return !activeOnly || m.IsActive }), nil
}

func (s *Store) FindEligiblePaymentMethods(_ context.Context, source, target string, amount decimal.Decimal) ([]domain.PaymentMethod, error) {
	return s.filterMethods(func(m domain.PaymentMethod) bool { return m.IsEligible(source, target, amount) }), nil
}

func (s *Store) filterMethods(keep func(domain.PaymentMethod) bool) []domain.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PaymentMethod, 0, len(s.methods))
	for _, m := range s.methods {
		if keep(m) {
			out = append(out, clonePaymentMethod(m))
		}
	}
	slices.SortFunc(out, func(a, b domain.PaymentMethod) int { return strings.Compare(a.PaymentMethodID, b.PaymentMethodID) })
	return out
}

func (s *Store) SavePaymentMethod(_ context.Context, method domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods[method.PaymentMethodID] = clonePaymentMethod(method)
	return nil
}

func clonePaymentMethod(m domain.PaymentMethod) domain.PaymentMethod {
	m.SourceCurrencies = slices.Clone(m.SourceCurrencies)
	m.TargetCurrencies = slices.Clone(m.TargetCurrencies)
	return m
}

// --- exchange rates ---

func ratePair(from, to string) string {
	return from + "-" + to
}

func (s *Store) FindExchangeRate(_ context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rate, ok := s.latestRate(fromCurrencyCode, toCurrencyCode); ok {
		return &rate, nil
	}
	if inverse, ok := s.latestRate(toCurrencyCode, fromCurrencyCode); ok && inverse.Rate.IsPositive() {
		inverse.FromCurrencyCode = fromCurrencyCode
		inverse.ToCurrencyCode = toCurrencyCode
		inverse.Rate = decimal.NewFromInt(1).DivRound(inverse.Rate, 12)
		return &inverse, nil
	}
	return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + fromCurrencyCode + " to " + toCurrencyCode)
}

func (s *Store) latestRate(from, to string) (domain.ExchangeRate, bool) {
	var latest domain.ExchangeRate
	found := false
	for _, r := range s.rates[ratePair(from, to)] {
		if !found || r.DateEffective.After(latest.DateEffective) {
			latest, found = r, true
		}
	}
	return latest, found
}

func (s *Store) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	if rate.FromCurrencyCode == rate.ToCurrencyCode {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ratePair(rate.FromCurrencyCode, rate.ToCurrencyCode)
	for i, existing := range s.rates[key] {
		if existing.DateEffective.Equal(rate.DateEffective) {
			s.rates[key][i].Rate = rate.Rate
			s.rates[key][i].LastUpdatedAt = rate.LastUpdatedAt
			s.rates[key][i].LastUpdatedBy = rate.LastUpdatedBy
			return nil
		}
	}
	s.rates[key] = append(s.rates[key], rate)
	return nil
}

// --- quotes ---

func (s *Store) SaveQuote(_ context.Context, quote domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.quotes[quote.QuoteID]; exists {
		return fmt.Errorf("%w: quote %s", apperrors.ErrDuplicate, quote.QuoteID)
	}
	for _, r := range quote.Routes {
		if _, ok := s.methods[r.PaymentMethodID]; !ok {
			return apperrors.NewAppError(http.StatusInternalServerError, "quote route references unknown payment method "+r.PaymentMethodID, apperrors.ErrIntegrity)
		}
	}
	s.quotes[quote.QuoteID] = cloneQuote(quote)
	return nil
}

func (s *Store) FindQuoteByID(_ context.Context, quoteID string) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[quoteID]
	if !ok {
		return nil, apperrors.NewNotFoundError("quote " + quoteID + " not found")
	}
	q = s.withMethodDetails(cloneQuote(q))
	slices.SortFunc(q.Routes, func(a, b domain.QuoteRoute) int { return a.Rank - b.Rank })
	return &q, nil
}

// withMethodDetails refreshes route names and types from the catalog, as the
// Postgres repository does through its join.
func (s *Store) withMethodDetails(q domain.Quote) domain.Quote {
	for i, r := range q.Routes {
		if m, ok := s.methods[r.PaymentMethodID]; ok {
			q.Routes[i].MethodName = m.Name
			q.Routes[i].MethodType = m.Type
		}
	}
	return q
}

func cloneQuote(q domain.Quote) domain.Quote {
	q.Routes = slices.Clone(q.Routes)
	return q
}

// --- execution ---

// ConsumeQuote checks and flips the quote status under the write lock, so
// exactly one concurrent caller wins.
func (s *Store) ConsumeQuote(_ context.Context, params portsrepo.ConsumeQuoteParams) (*domain.ConsumedQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.quotes[params.QuoteID]
	if !ok || !stored.IsExecutable(params.Now) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrQuoteNotUsable, params.QuoteID)
	}

	quote := s.withMethodDetails(cloneQuote(stored))
	route, ok := quote.FindRoute(params.PaymentMethodID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRouteNotFound, params.PaymentMethodID)
	}

	stored.Status = domain.QuoteUsed
	s.quotes[params.QuoteID] = stored
	quote.Status = domain.QuoteUsed

	txn := domain.Transaction{
		TransactionID:  params.TransactionID,
		QuoteID:        quote.QuoteID,
		SourceCurrency: quote.SourceCurrency,
		TargetCurrency: quote.TargetCurrency,
		SourceAmount:   quote.SourceAmount,
		TargetAmount:   quote.TargetAmount,
		Status:         domain.TransactionPending,
		CreatedAt:      params.Now,
		LastUpdatedAt:  params.Now,
		Route: &domain.Route{
			RouteID:            params.RouteID,
			TransactionID:      params.TransactionID,
			PaymentMethodID:    route.PaymentMethodID,
			EstimatedCost:      route.EstimatedCost,
			EstimatedTimeHours: route.EstimatedTimeHours,
			ExchangeRate:       quote.ExchangeRate,
			Score:              route.Score,
			IsSelected:         true,
			CreatedAt:          params.Now,
		},
	}
	s.transactions[txn.TransactionID] = cloneTransaction(txn)

	return &domain.ConsumedQuote{Quote: quote, QuoteRoute: route, Transaction: txn}, nil
}

func (s *Store) UpdateTransactionStatus(_ context.Context, transactionID string, status domain.TransactionStatus, providerReference *string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.transactions[transactionID]
	if !ok {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	txn.Status = status
	if providerReference != nil {
		ref := *providerReference
		txn.ProviderReference = &ref
	}
	txn.LastUpdatedAt = now
	s.transactions[transactionID] = txn
	return nil
}

func (s *Store) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	txn = cloneTransaction(txn)
	return &txn, nil
}

func cloneTransaction(t domain.Transaction) domain.Transaction {
	if t.Route != nil {
		r := *t.Route
		t.Route = &r
	}
	if t.ProviderReference != nil {
		ref := *t.ProviderReference
		t.ProviderReference = &ref
	}
	return t
}
