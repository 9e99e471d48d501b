package rails

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// CorrespondentConfig parameterises the wire-transfer rail. Amount limits and
// thresholds are expressed in USD.
type CorrespondentConfig struct {
	SupportedCurrencies []string
	// USDReferenceRates converts a source amount to USD when neither leg is USD.
	USDReferenceRates map[string]decimal.Decimal

	BaseSuccessRate            float64
	LargeAmountUSD             decimal.Decimal
	LargeAmountSuccessRate     float64
	VeryLargeAmountUSD         decimal.Decimal
	VeryLargeAmountSuccessRate float64

	MinAmountUSD decimal.Decimal
	MaxAmountUSD decimal.Decimal

	BaseHours              float64
	ComplianceThresholdUSD decimal.Decimal
	ComplianceHours        float64

	BaseFee              decimal.Decimal
	LargeAmountSurcharge decimal.Decimal
	CrossCurrencyFee     decimal.Decimal
	CorrespondentFeeMin  int64
	CorrespondentFeeSpan int64

	Hours OperatingHours
	Clock func() time.Time
}

// DefaultCorrespondentConfig returns the SWIFT-style wire schedule.
func DefaultCorrespondentConfig() CorrespondentConfig {
	return CorrespondentConfig{
		SupportedCurrencies: []string{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD"},
		USDReferenceRates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("1.18"),
			"GBP": decimal.RequireFromString("1.37"),
			"JPY": decimal.RequireFromString("0.0067"),
			"CHF": decimal.RequireFromString("1.14"),
			"CAD": decimal.RequireFromString("0.74"),
			"AUD": decimal.RequireFromString("0.66"),
		},
		BaseSuccessRate:            0.98,
		LargeAmountUSD:             decimal.NewFromInt(50_000),
		LargeAmountSuccessRate:     0.95,
		VeryLargeAmountUSD:         decimal.NewFromInt(500_000),
		VeryLargeAmountSuccessRate: 0.92,
		MinAmountUSD:               decimal.NewFromInt(100),
		MaxAmountUSD:               decimal.NewFromInt(10_000_000),
		BaseHours:                  24,
		ComplianceThresholdUSD:     decimal.NewFromInt(10_000),
		ComplianceHours:            24,
		BaseFee:                    decimal.NewFromInt(15),
		LargeAmountSurcharge:       decimal.NewFromInt(25),
		CrossCurrencyFee:           decimal.NewFromInt(10),
		CorrespondentFeeMin:        5,
		CorrespondentFeeSpan:       15,
		Hours:                      BusinessHours(time.UTC),
		Clock:                      time.Now,
	}
}

// CorrespondentRail models correspondent-banking wire transfers. Fees are always
// reported in USD.
type CorrespondentRail struct {
	baseRail
	cfg CorrespondentConfig
}

// NewCorrespondentRail creates a wire-transfer rail.
func NewCorrespondentRail(cfg CorrespondentConfig) *CorrespondentRail {
	return &CorrespondentRail{
		baseRail: baseRail{
			name:       "CorrespondentRail",
			currencies: cfg.SupportedCurrencies,
			hours:      cfg.Hours,
			clock:      cfg.Clock,
		},
		cfg: cfg,
	}
}

var _ PaymentRail = (*CorrespondentRail)(nil)

// USDValue converts the instruction's source amount into USD.
func (r *CorrespondentRail) USDValue(instr Instruction) decimal.Decimal {
	switch {
	case instr.SourceCurrency == "USD":
		return instr.SourceAmount
	case instr.TargetCurrency == "USD" && instr.ExchangeRate.IsPositive():
		return instr.SourceAmount.Mul(instr.ExchangeRate)
	}
	rate, ok := r.cfg.USDReferenceRates[instr.SourceCurrency]
	if !ok {
		rate = decimal.NewFromInt(1)
	}
	return instr.SourceAmount.Mul(rate)
}

func (r *CorrespondentRail) Validate(instr Instruction) ValidationResult {
	if errs := r.validateBasics(instr); len(errs) > 0 {
		return newValidationResult(errs)
	}

	var errs []string
	usd := r.USDValue(instr)
	if usd.LessThan(r.cfg.MinAmountUSD) {
		errs = append(errs, fmt.Sprintf("%s minimum is %s USD equivalent", methodLabel(instr, "Wire transfer"), r.cfg.MinAmountUSD))
	} else if usd.GreaterThan(r.cfg.MaxAmountUSD) {
		errs = append(errs, fmt.Sprintf("%s maximum is %s USD equivalent", methodLabel(instr, "Wire transfer"), r.cfg.MaxAmountUSD))
	}
	return newValidationResult(errs)
}

// successRate lowers the base rate as the notional crosses the screening thresholds.
func (r *CorrespondentRail) successRate(usd decimal.Decimal) float64 {
	switch {
	case usd.GreaterThan(r.cfg.VeryLargeAmountUSD):
		return r.cfg.VeryLargeAmountSuccessRate
	case usd.GreaterThan(r.cfg.LargeAmountUSD):
		return r.cfg.LargeAmountSuccessRate
	default:
		return r.cfg.BaseSuccessRate
	}
}

func (r *CorrespondentRail) Execute(ctx context.Context, instr Instruction, rnd RandomSource) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v := r.Validate(instr); !v.Valid {
		return rejected(methodLabel(instr, r.Name()), v.Errors), nil
	}

	usd := r.USDValue(instr)
	if rnd.Float64() < r.successRate(usd) {
		return accepted(newReference("SWIFT"), "SWIFT wire transfer initiated successfully", r.now(), r.EstimateSettlement(instr, rnd)), nil
	}

	message := "Correspondent bank temporarily unavailable"
	if usd.GreaterThan(r.cfg.LargeAmountUSD) {
		message = "Transfer flagged for compliance review"
	}
	return &Outcome{Status: OutcomeFailed, Message: message}, nil
}

func (r *CorrespondentRail) EstimateSettlement(instr Instruction, _ RandomSource) float64 {
	hours := r.cfg.BaseHours
	if r.USDValue(instr).GreaterThan(r.cfg.ComplianceThresholdUSD) {
		hours += r.cfg.ComplianceHours
	}
	hours += r.hours.HoursUntilOperating(r.now())
	return math.Max(0, hours)
}

func (r *CorrespondentRail) CalculateFees(instr Instruction, rnd RandomSource) Fee {
	fee := r.cfg.BaseFee
	if r.USDValue(instr).GreaterThan(r.cfg.LargeAmountUSD) {
		fee = fee.Add(r.cfg.LargeAmountSurcharge)
	}
	if instr.CrossCurrency() {
		fee = fee.Add(r.cfg.CrossCurrencyFee)
	}
	if r.cfg.CorrespondentFeeSpan > 0 {
		correspondent := int64(math.Floor(rnd.Float64()*float64(r.cfg.CorrespondentFeeSpan))) + r.cfg.CorrespondentFeeMin
		fee = fee.Add(decimal.NewFromInt(correspondent))
	}
	return Fee{Amount: fee.Round(2), Currency: "USD"}
}

func methodLabel(instr Instruction, fallback string) string {
	if instr.PaymentMethodName != "" {
		return instr.PaymentMethodName
	}
	return fallback
}
