package services

import (
	"context"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/ARLocke322/Payment-Router/internal/dto"
)

// ExecutionReaderSvc defines read operations for executed transactions
type ExecutionReaderSvc interface {
	// GetTransaction retrieves a transaction with its route.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// ExecutionWriterSvc defines payment execution
type ExecutionWriterSvc interface {
	// ExecutePayment consumes the quote and hands the transfer to the rail
	// behind the selected payment method.
	ExecutePayment(ctx context.Context, req dto.ExecutePaymentRequest) (*domain.ExecutionResult, error)
}

// ExecutionSvcFacade combines all execution-related service interfaces
type ExecutionSvcFacade interface {
	ExecutionReaderSvc
	ExecutionWriterSvc
}

// PaymentEventPublisher announces executions to downstream consumers.
type PaymentEventPublisher interface {
	// PublishPaymentExecuted emits one event for an execution result.
	PublishPaymentExecuted(ctx context.Context, result domain.ExecutionResult) error
}
