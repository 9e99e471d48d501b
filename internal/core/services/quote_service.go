package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/rails"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type quoteService struct {
	BaseService
	quoteRepo  portsrepo.QuoteRepositoryFacade
	methodRepo portsrepo.PaymentMethodReader
	currencies portssvc.CurrencyReaderSvc
	rates      portssvc.RateProvider
	clock      func() time.Time
	ttl        time.Duration
	screen     RouteScreen
}

// RouteScreen reports whether the rail behind a payment method would take an instruction.
// Catalog limits are in source units; rails may apply their own, e.g. a USD equivalent floor.
type RouteScreen interface {
	Accepts(instr rails.Instruction) bool
}

// QuoteOption is a functional option for configuring the quote service
type QuoteOption func(*quoteService)

// WithQuoteClock sets the time source used to stamp and expire quotes.
func WithQuoteClock(clock func() time.Time) QuoteOption {
	return func(s *quoteService) {
		s.clock = clock
	}
}

// WithQuoteTTL sets how long a quote remains executable.
func WithQuoteTTL(ttl time.Duration) QuoteOption {
	return func(s *quoteService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithRouteScreen drops routes whose rail would reject the transfer at execution.
func WithRouteScreen(screen RouteScreen) QuoteOption {
	return func(s *quoteService) {
		s.screen = screen
	}
}

// NewQuoteService creates the quote engine.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	methodRepo portsrepo.PaymentMethodReader,
	currencies portssvc.CurrencyReaderSvc,
	rates portssvc.RateProvider,
	options ...QuoteOption,
) portssvc.QuoteSvcFacade {
	svc := &quoteService{
		quoteRepo:  quoteRepo,
		methodRepo: methodRepo,
		currencies: currencies,
		rates:      rates,
		clock:      time.Now,
		ttl:        domain.DefaultQuoteTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) GenerateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.Quote, error) {
	source := strings.ToUpper(strings.TrimSpace(req.SourceCurrency))
	target := strings.ToUpper(strings.TrimSpace(req.TargetCurrency))
	amount := req.SourceAmount

	precisionCurrency, err := s.currencies.GetActiveCurrency(ctx, source)
	if err != nil {
		return nil, err
	}
	if target != source {
		if precisionCurrency, err = s.currencies.GetActiveCurrency(ctx, target); err != nil {
			return nil, err
		}
	}

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: Amount must be greater than zero", apperrors.ErrValidation)
	}

	rate, err := s.rates.Rate(ctx, source, target)
	if err != nil {
		return nil, err
	}

	methods, err := s.methodRepo.FindEligiblePaymentMethods(ctx, source, target, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to load eligible payment methods",
			slog.String("source_currency", source), slog.String("target_currency", target))
		return nil, fmt.Errorf("failed to load payment methods: %w", err)
	}
	methods = s.screenMethods(ctx, methods, source, target, amount, rate)
	if len(methods) == 0 {
		s.LogInfo(ctx, "No payment method can carry the transfer",
			slog.String("source_currency", source),
			slog.String("target_currency", target),
			slog.String("amount", amount.String()))
		return nil, fmt.Errorf("%w: no payment methods for %s %s to %s", apperrors.ErrNoRouteAvailable, amount, source, target)
	}

	now := s.clock()
	quoteID := uuid.NewString()
	routes := make([]domain.QuoteRoute, 0, len(methods))
	for _, method := range methods {
		routes = append(routes, domain.NewQuoteRoute(quoteID, uuid.NewString(), amount, method))
	}
	domain.RankRoutes(routes)

	quote := domain.Quote{
		QuoteID:        quoteID,
		SourceCurrency: source,
		TargetCurrency: target,
		SourceAmount:   amount,
		ExchangeRate:   rate,
		TargetAmount:   amount.Mul(rate).Round(int32(precisionCurrency.Precision)),
		Status:         domain.QuoteActive,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.ttl),
		Routes:         routes,
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		s.LogError(ctx, err, "Failed to save quote", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	s.LogInfo(ctx, "Quote generated",
		slog.String("quote_id", quoteID),
		slog.String("source_currency", source),
		slog.String("target_currency", target),
		slog.Int("routes", len(routes)),
		slog.String("best_route", routes[0].PaymentMethodID))
	return &quote, nil
}

func (s *quoteService) screenMethods(ctx context.Context, methods []domain.PaymentMethod, source, target string, amount, rate decimal.Decimal) []domain.PaymentMethod {
	if s.screen == nil {
		return methods
	}
	kept := methods[:0:0]
	for _, method := range methods {
		instr := rails.Instruction{
			PaymentMethodName: method.Name,
			SourceCurrency:    source,
			TargetCurrency:    target,
			SourceAmount:      amount,
			ExchangeRate:      rate,
		}
		if !s.screen.Accepts(instr) {
			s.LogDebug(ctx, "Rail would reject route, dropping it",
				slog.String("payment_method_id", method.PaymentMethodID),
				slog.String("amount", amount.String()))
			continue
		}
		kept = append(kept, method)
	}
	return kept
}

// GetQuote returns the stored quote with its status as seen now.
func (s *quoteService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote %s: %w", quoteID, err)
	}
	quote.Status = quote.EffectiveStatus(s.clock())
	return quote, nil
}
