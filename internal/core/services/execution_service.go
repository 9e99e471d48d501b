package services

import (
	"context"
	"errors"
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
)

// RailResolver maps a payment method name to the rail that carries it.
type RailResolver interface {
	Resolve(methodName string) (rails.PaymentRail, error)
}

// RailExecutor submits an instruction to a rail.
type RailExecutor interface {
	Execute(ctx context.Context, rail rails.PaymentRail, instr rails.Instruction, rnd rails.RandomSource) (*rails.Outcome, error)
}

type executionService struct {
	BaseService
	execRepo  portsrepo.ExecutionRepositoryFacade
	resolver  RailResolver
	executor  RailExecutor
	publisher portssvc.PaymentEventPublisher
	clock     func() time.Time
	random    func() rails.RandomSource
}

// ExecutionOption is a functional option for configuring the execution service
type ExecutionOption func(*executionService)

// WithExecutionClock sets the time source used to judge quote expiry.
func WithExecutionClock(clock func() time.Time) ExecutionOption {
	return func(s *executionService) {
		s.clock = clock
	}
}

// WithRandomSource sets the factory called once per execution for rail draws.
func WithRandomSource(factory func() rails.RandomSource) ExecutionOption {
	return func(s *executionService) {
		s.random = factory
	}
}

// WithRailExecutor replaces the guard rails are called through.
func WithRailExecutor(executor RailExecutor) ExecutionOption {
	return func(s *executionService) {
		s.executor = executor
	}
}

// WithEventPublisher sets where execution events are sent.
func WithEventPublisher(publisher portssvc.PaymentEventPublisher) ExecutionOption {
	return func(s *executionService) {
		s.publisher = publisher
	}
}

// NewExecutionService creates the execution engine. Without options rails are
// called through a guard with default settings and no events are published.
func NewExecutionService(execRepo portsrepo.ExecutionRepositoryFacade, resolver RailResolver, options ...ExecutionOption) portssvc.ExecutionSvcFacade {
	svc := &executionService{
		execRepo: execRepo,
		resolver: resolver,
		clock:    time.Now,
		random:   rails.NewRandomSource,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.executor == nil {
		svc.executor = rails.NewGuard(rails.DefaultGuardConfig(), slog.Default())
	}
	return svc
}

var _ portssvc.ExecutionSvcFacade = (*executionService)(nil)

func (s *executionService) ExecutePayment(ctx context.Context, req dto.ExecutePaymentRequest) (*domain.ExecutionResult, error) {
	params := portsrepo.ConsumeQuoteParams{
		QuoteID:         strings.TrimSpace(req.QuoteID),
		PaymentMethodID: strings.TrimSpace(req.PaymentMethodID),
		TransactionID:   uuid.NewString(),
		RouteID:         uuid.NewString(),
		Now:             s.clock(),
	}
	logger := s.GetLogger(ctx).With(
		slog.String("quote_id", params.QuoteID),
		slog.String("payment_method_id", params.PaymentMethodID),
	)

	consumed, err := s.execRepo.ConsumeQuote(ctx, params)
	if err != nil {
		if apperrors.IsClientError(err) {
			logger.Info("Quote could not be consumed", slog.String("reason", err.Error()))
		} else {
			logger.Error("Failed to consume quote", slog.String("error", err.Error()))
		}
		return nil, err
	}

	quote, route, txn := consumed.Quote, consumed.QuoteRoute, consumed.Transaction
	// The quote is burned; its transaction must be settled even if the caller goes away.
	persistCtx := context.WithoutCancel(ctx)
	logger = logger.With(slog.String("transaction_id", txn.TransactionID), slog.String("method", route.MethodName))

	rail, err := s.resolver.Resolve(route.MethodName)
	if err != nil {
		logger.Error("Quoted payment method has no rail", slog.String("error", err.Error()))
		s.recordStatus(persistCtx, logger, txn.TransactionID, domain.TransactionFailed, nil)
		return nil, fmt.Errorf("%w: payment method %q cannot be executed: %v", apperrors.ErrIntegrity, route.MethodName, err)
	}

	instr := rails.Instruction{
		PaymentMethodName: route.MethodName,
		SourceCurrency:    quote.SourceCurrency,
		TargetCurrency:    quote.TargetCurrency,
		SourceAmount:      quote.SourceAmount,
		ExchangeRate:      quote.ExchangeRate,
	}
	rnd := s.random()

	outcome, err := s.executor.Execute(ctx, rail, instr, rnd)
	if err != nil {
		if errors.Is(err, apperrors.ErrRailTimeout) {
			// The rail may still accept the payment, so the transaction stays pending.
			logger.Warn("Rail did not answer in time", slog.String("rail", rail.Name()))
			return nil, err
		}
		logger.Error("Rail execution failed", slog.String("rail", rail.Name()), slog.String("error", err.Error()))
		s.recordStatus(persistCtx, logger, txn.TransactionID, domain.TransactionFailed, nil)
		return nil, fmt.Errorf("failed to execute payment on %s: %w", rail.Name(), err)
	}

	fee := rail.CalculateFees(instr, rnd)

	status := domain.TransactionProcessing
	var reference *string
	if outcome.Failed() {
		status = domain.TransactionFailed
	} else if outcome.Reference != "" {
		ref := outcome.Reference
		reference = &ref
	}
	if err := s.execRepo.UpdateTransactionStatus(persistCtx, txn.TransactionID, status, reference, s.clock()); err != nil {
		logger.Error("Failed to record rail outcome", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record outcome of transaction %s: %w", txn.TransactionID, err)
	}

	result := &domain.ExecutionResult{
		TransactionID:       txn.TransactionID,
		QuoteID:             quote.QuoteID,
		PaymentMethodID:     route.PaymentMethodID,
		Status:              string(outcome.Status),
		SourceCurrency:      quote.SourceCurrency,
		TargetCurrency:      quote.TargetCurrency,
		SourceAmount:        quote.SourceAmount,
		TargetAmount:        quote.TargetAmount,
		ExchangeRate:        quote.ExchangeRate,
		RailFee:             fee.Amount,
		RailFeeCurrency:     fee.Currency,
		ProviderReference:   reference,
		Message:             outcome.Message,
		ValidationErrors:    outcome.ValidationErrors,
		EstimatedCompletion: outcome.EstimatedCompletion,
	}

	logger.Info("Payment executed",
		slog.String("status", result.Status),
		slog.String("rail", rail.Name()),
		slog.String("message", result.Message))

	if s.publisher != nil {
		if err := s.publisher.PublishPaymentExecuted(persistCtx, *result); err != nil {
			logger.Error("Failed to publish payment event", slog.String("error", err.Error()))
		}
	}
	return result, nil
}

// recordStatus updates a transaction after the request has already failed; a
// second failure is only logged.
func (s *executionService) recordStatus(ctx context.Context, logger *slog.Logger, transactionID string, status domain.TransactionStatus, reference *string) {
	if err := s.execRepo.UpdateTransactionStatus(ctx, transactionID, status, reference, s.clock()); err != nil {
		logger.Error("Failed to update transaction status",
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
	}
}

func (s *executionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.execRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}
