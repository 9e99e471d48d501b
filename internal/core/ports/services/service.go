package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency      CurrencySvcFacade
	PaymentMethod PaymentMethodSvcFacade
	ExchangeRate  ExchangeRateSvcFacade
	Quote         QuoteSvcFacade
	Execution     ExecutionSvcFacade
	Health        HealthSvc
}

// HealthStatus is the readiness report of the service.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// HealthSvc reports whether the service and its storage are usable.
type HealthSvc interface {
	Check(ctx context.Context) HealthStatus
}
