// Package events publishes execution results to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// PaymentExecutedType is the event type carried in every message.
const PaymentExecutedType = "payment.executed"

// PaymentExecuted is the message published after a rail has answered.
type PaymentExecuted struct {
	Type                string          `json:"type"`
	TransactionID       string          `json:"transaction_id"`
	QuoteID             string          `json:"quote_id"`
	PaymentMethodID     string          `json:"payment_method_id"`
	Status              string          `json:"status"`
	SourceCurrency      string          `json:"source_currency"`
	TargetCurrency      string          `json:"target_currency"`
	SourceAmount        decimal.Decimal `json:"source_amount"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	ExchangeRate        decimal.Decimal `json:"exchange_rate"`
	RailFee             decimal.Decimal `json:"rail_fee"`
	RailFeeCurrency     string          `json:"rail_fee_currency"`
	ProviderReference   *string         `json:"provider_reference,omitempty"`
	Message             string          `json:"message"`
	EstimatedCompletion *time.Time      `json:"estimated_completion,omitempty"`
	Timestamp           time.Time       `json:"timestamp"`
}

// NewPaymentExecuted builds the event for a result.
func NewPaymentExecuted(result domain.ExecutionResult, now time.Time) PaymentExecuted {
	return PaymentExecuted{
		Type:                PaymentExecutedType,
		TransactionID:       result.TransactionID,
		QuoteID:             result.QuoteID,
		PaymentMethodID:     result.PaymentMethodID,
		Status:              result.Status,
		SourceCurrency:      result.SourceCurrency,
		TargetCurrency:      result.TargetCurrency,
		SourceAmount:        result.SourceAmount,
		TargetAmount:        result.TargetAmount,
		ExchangeRate:        result.ExchangeRate,
		RailFee:             result.RailFee,
		RailFeeCurrency:     result.RailFeeCurrency,
		ProviderReference:   result.ProviderReference,
		Message:             result.Message,
		EstimatedCompletion: result.EstimatedCompletion,
		Timestamp:           now.UTC(),
	}
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher sends PaymentExecuted events keyed by transaction id, so every
// event for a transaction lands on one partition.
type KafkaPublisher struct {
	writer MessageWriter
	logger *slog.Logger
	clock  func() time.Time
}

var _ portssvc.PaymentEventPublisher = (*KafkaPublisher)(nil)

// NewKafkaWriter returns an asynchronous writer for topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Compression:  kafka.Snappy,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// NewKafkaPublisher wraps writer. A nil logger uses slog.Default().
func NewKafkaPublisher(writer MessageWriter, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaPublisher{writer: writer, logger: logger, clock: time.Now}
}

func (p *KafkaPublisher) PublishPaymentExecuted(ctx context.Context, result domain.ExecutionResult) error {
	event := NewPaymentExecuted(result, p.clock())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(result.TransactionID),
		Value: payload,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(PaymentExecutedType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send payment event: %w", err)
	}

	p.logger.DebugContext(ctx, "Payment event published",
		slog.String("transaction_id", result.TransactionID),
		slog.String("status", result.Status))
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	p.logger.Info("Closing Kafka publisher")
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

var _ portssvc.PaymentEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishPaymentExecuted(context.Context, domain.ExecutionResult) error {
	return nil
}
