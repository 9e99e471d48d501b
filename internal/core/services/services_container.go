package services

import (
	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
)

// ContainerConfig carries the engine collaborators and options that are not repositories.
type ContainerConfig struct {
	Version          string
	Resolver         RailResolver
	QuoteOptions     []QuoteOption
	ExecutionOptions []ExecutionOption
	RateOptions      []ExchangeRateOption
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg ContainerConfig, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo, cfg.RateOptions...)

	// The quote engine depends on the currency and rate services above.
	container.Quote = NewQuoteService(
		repos.QuoteRepo,
		repos.PaymentMethodRepo,
		container.Currency,
		container.ExchangeRate,
		cfg.QuoteOptions...,
	)
	container.Execution = NewExecutionService(repos.ExecutionRepo, cfg.Resolver, cfg.ExecutionOptions...)
	container.Health = NewHealthService(repos.Health, cfg.Version)

	return container
}
