package rails

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRail is a settlement mechanism with its own fee, timing and reliability model.
// Implementations hold static configuration only; every call is independent.
type PaymentRail interface {
	// Name identifies the rail variant, e.g. "CorrespondentRail".
	Name() string

	// Validate checks whether the instruction can be carried by this rail.
	Validate(instr Instruction) ValidationResult

	// Execute simulates submission of the instruction. A rejected payment is reported
	// through the returned Outcome, not through the error.
	Execute(ctx context.Context, instr Instruction, rnd RandomSource) (*Outcome, error)

	// EstimateSettlement returns the expected hours until settlement. Never negative.
	EstimateSettlement(instr Instruction, rnd RandomSource) float64

	// CalculateFees returns the rail fee for the instruction.
	CalculateFees(instr Instruction, rnd RandomSource) Fee
}

// Instruction is what a rail needs to know about a payment.
type Instruction struct {
	PaymentMethodName string
	SourceCurrency    string
	TargetCurrency    string
	SourceAmount      decimal.Decimal
	ExchangeRate      decimal.Decimal
}

// CrossCurrency reports whether the instruction converts between two currencies.
func (i Instruction) CrossCurrency() bool {
	return i.SourceCurrency != i.TargetCurrency
}

// OutcomeStatus is the status a rail reports back after submission.
type OutcomeStatus string

const (
	OutcomeProcessing OutcomeStatus = "processing"
	OutcomeFailed     OutcomeStatus = "failed"
)

// Outcome is the rail's answer to an Execute call.
type Outcome struct {
	Status              OutcomeStatus
	Reference           string // empty unless the rail accepted the payment
	Message             string
	EstimatedCompletion *time.Time
	ValidationErrors    []string
}

// Failed reports whether the rail rejected the payment.
func (o *Outcome) Failed() bool {
	return o.Status == OutcomeFailed
}

// Fee is an amount together with the currency it is denominated in.
type Fee struct {
	Amount   decimal.Decimal
	Currency string
}

// ValidationResult lists every reason an instruction was rejected.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func newValidationResult(errs []string) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// RandomSource yields uniform draws in [0,1).
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns an independent source seeded from the runtime's entropy.
// Sources are not safe for concurrent use; create one per execution.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// FixedSource replays a fixed sequence of draws, cycling when exhausted.
type FixedSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewFixedSource returns a deterministic RandomSource.
func NewFixedSource(values ...float64) *FixedSource {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &FixedSource{values: values}
}

func (s *FixedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// baseRail carries the configuration every variant shares.
type baseRail struct {
	name       string
	currencies []string
	hours      OperatingHours
	clock      func() time.Time
}

func (b baseRail) Name() string {
	return b.name
}

func (b baseRail) now() time.Time {
	if b.clock == nil {
		return time.Now()
	}
	return b.clock()
}

func (b baseRail) supports(currency string) bool {
	return slices.Contains(b.currencies, currency)
}

// validateBasics applies the checks every rail performs before its own limits.
func (b baseRail) validateBasics(instr Instruction) []string {
	var errs []string
	if strings.TrimSpace(instr.SourceCurrency) == "" {
		errs = append(errs, "Source currency is required")
	}
	if strings.TrimSpace(instr.TargetCurrency) == "" {
		errs = append(errs, "Target currency is required")
	}
	if !instr.SourceAmount.IsPositive() {
		errs = append(errs, "Source amount must be greater than 0")
	}
	if instr.SourceCurrency != "" && !b.supports(instr.SourceCurrency) {
		errs = append(errs, fmt.Sprintf("Source currency %s not supported by %s", instr.SourceCurrency, b.name))
	}
	if instr.TargetCurrency != "" && !b.supports(instr.TargetCurrency) {
		errs = append(errs, fmt.Sprintf("Target currency %s not supported by %s", instr.TargetCurrency, b.name))
	}
	return errs
}

// rejected builds the outcome returned when an instruction fails validation.
func rejected(methodName string, errs []string) *Outcome {
	return &Outcome{
		Status:           OutcomeFailed,
		Message:          fmt.Sprintf("%s rejected the payment: %s", methodName, strings.Join(errs, "; ")),
		ValidationErrors: errs,
	}
}

// accepted builds a processing outcome settling the given number of hours from now.
func accepted(reference, message string, now time.Time, hours float64) *Outcome {
	completion := now.Add(time.Duration(hours * float64(time.Hour)))
	return &Outcome{
		Status:              OutcomeProcessing,
		Reference:           reference,
		Message:             message,
		EstimatedCompletion: &completion,
	}
}

func newReference(prefix string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
