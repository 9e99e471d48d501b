package rails

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RegionalInstantConfig parameterises the single-currency regional rail. Amounts
// and fees are in the rail's own currency.
type RegionalInstantConfig struct {
	SupportedCurrencies []string
	// InstantMethods names the payment methods settled by the instant scheme.
	InstantMethods []string

	InstantSuccessRate float64
	RegularSuccessRate float64

	InstantMaxAmount decimal.Decimal
	RegularMaxAmount decimal.Decimal

	InstantBaseFee       decimal.Decimal
	RegularBaseFee       decimal.Decimal
	LargeAmountThreshold decimal.Decimal
	LargeAmountSurcharge decimal.Decimal
	CrossCurrencyFee     decimal.Decimal

	RegularBaseHours float64

	Hours OperatingHours
	Clock func() time.Time
}

// DefaultRegionalInstantConfig returns the SEPA schedule.
func DefaultRegionalInstantConfig() RegionalInstantConfig {
	return RegionalInstantConfig{
		SupportedCurrencies:  []string{"EUR"},
		InstantMethods:       []string{"SEPA Instant", "Faster Payments (UK)", "FedWire (Domestic)"},
		InstantSuccessRate:   0.95,
		RegularSuccessRate:   0.995,
		InstantMaxAmount:     decimal.NewFromInt(100_000),
		RegularMaxAmount:     decimal.NewFromInt(999_999),
		InstantBaseFee:       decimal.RequireFromString("1.50"),
		RegularBaseFee:       decimal.RequireFromString("0.50"),
		LargeAmountThreshold: decimal.NewFromInt(50_000),
		LargeAmountSurcharge: decimal.RequireFromString("2.00"),
		CrossCurrencyFee:     decimal.RequireFromString("1.00"),
		RegularBaseHours:     4,
		Hours:                BusinessHours(time.UTC),
		Clock:                time.Now,
	}
}

// RegionalInstantRail models SEPA-style transfers in a single currency, with a
// regular (business hours) and an instant variant.
type RegionalInstantRail struct {
	baseRail
	cfg RegionalInstantConfig
}

// NewRegionalInstantRail creates a regional rail.
func NewRegionalInstantRail(cfg RegionalInstantConfig) *RegionalInstantRail {
	return &RegionalInstantRail{
		baseRail: baseRail{
			name:       "RegionalInstantRail",
			currencies: cfg.SupportedCurrencies,
			hours:      cfg.Hours,
			clock:      cfg.Clock,
		},
		cfg: cfg,
	}
}

var _ PaymentRail = (*RegionalInstantRail)(nil)

// IsInstant reports whether the payment method uses the instant scheme.
func (r *RegionalInstantRail) IsInstant(methodName string) bool {
	return slices.Contains(r.cfg.InstantMethods, methodName)
}

func (r *RegionalInstantRail) schemeLabel(instant bool) string {
	if instant {
		return "SEPA Instant"
	}
	return "SEPA"
}

func (r *RegionalInstantRail) Validate(instr Instruction) ValidationResult {
	if errs := r.validateBasics(instr); len(errs) > 0 {
		return newValidationResult(errs)
	}

	var errs []string
	instant := r.IsInstant(instr.PaymentMethodName)
	limit := r.cfg.RegularMaxAmount
	if instant {
		limit = r.cfg.InstantMaxAmount
	}
	if instr.SourceAmount.GreaterThan(limit) {
		errs = append(errs, fmt.Sprintf("%s maximum is %s %s", r.schemeLabel(instant), limit, instr.SourceCurrency))
	}
	return newValidationResult(errs)
}

func (r *RegionalInstantRail) Execute(ctx context.Context, instr Instruction, rnd RandomSource) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v := r.Validate(instr); !v.Valid {
		return rejected(methodLabel(instr, r.Name()), v.Errors), nil
	}

	instant := r.IsInstant(instr.PaymentMethodName)
	successRate := r.cfg.RegularSuccessRate
	prefix, kind := "SEPA", "Regular"
	if instant {
		successRate = r.cfg.InstantSuccessRate
		prefix, kind = "SEPA_INST", "Instant"
	}

	if rnd.Float64() < successRate {
		return accepted(newReference(prefix), kind+" SEPA transfer initiated", r.now(), r.EstimateSettlement(instr, rnd)), nil
	}
	return &Outcome{
		Status:  OutcomeFailed,
		Message: r.schemeLabel(instant) + " network temporarily unavailable",
	}, nil
}

func (r *RegionalInstantRail) EstimateSettlement(instr Instruction, _ RandomSource) float64 {
	if r.IsInstant(instr.PaymentMethodName) {
		return 0
	}
	return r.cfg.RegularBaseHours + r.hours.HoursUntilOperating(r.now())
}

func (r *RegionalInstantRail) CalculateFees(instr Instruction, _ RandomSource) Fee {
	fee := r.cfg.RegularBaseFee
	if r.IsInstant(instr.PaymentMethodName) {
		fee = r.cfg.InstantBaseFee
	}
	if instr.SourceAmount.GreaterThan(r.cfg.LargeAmountThreshold) {
		fee = fee.Add(r.cfg.LargeAmountSurcharge)
	}
	if instr.CrossCurrency() {
		fee = fee.Add(r.cfg.CrossCurrencyFee)
	}
	return Fee{Amount: fee.Round(2), Currency: instr.SourceCurrency}
}
