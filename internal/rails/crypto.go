package rails

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Congestion is the simulated network condition a crypto payment meets.
type Congestion string

const (
	CongestionLow    Congestion = "low"
	CongestionMedium Congestion = "medium"
	CongestionHigh   Congestion = "high"
)

// DrawCongestion maps one uniform draw onto a congestion level.
func DrawCongestion(rnd RandomSource) Congestion {
	v := rnd.Float64()
	switch {
	case v > 0.8:
		return CongestionHigh
	case v > 0.4:
		return CongestionMedium
	default:
		return CongestionLow
	}
}

// CryptoNetworkConfig describes one network. Amounts and fees are in the network's
// native coin (Currency).
type CryptoNetworkConfig struct {
	MethodName      string
	Currency        string
	ReferencePrefix string

	SuccessRate float64
	MinAmount   decimal.Decimal
	MaxAmount   decimal.Decimal
	// MicroPaymentCeiling rejects amounts above it when non-zero.
	MicroPaymentCeiling decimal.Decimal

	BaseHours              float64
	MediumCongestionFactor float64
	HighCongestionFactor   float64
	// ConfirmationThreshold adds ConfirmationHours above it when non-zero.
	ConfirmationThreshold decimal.Decimal
	ConfirmationHours     float64

	BaseFee    decimal.Decimal
	MinimumFee decimal.Decimal
	// LargeAmountThreshold adds LargeAmountFeeRate per coin above it when non-zero.
	LargeAmountThreshold decimal.Decimal
	LargeAmountFeeRate   decimal.Decimal
	CrossCurrencyFee     decimal.Decimal
}

// CryptoConfig parameterises the crypto rail.
type CryptoConfig struct {
	SupportedCurrencies []string
	Networks            []CryptoNetworkConfig

	HighCongestionPenalty float64
	LowCongestionBonus    float64
	FeeMultipliers        map[Congestion]decimal.Decimal

	Hours OperatingHours
	Clock func() time.Time
}

// DefaultCryptoConfig returns the Bitcoin, Ethereum and Lightning schedules.
func DefaultCryptoConfig() CryptoConfig {
	return CryptoConfig{
		SupportedCurrencies: []string{"BTC", "ETH"},
		Networks: []CryptoNetworkConfig{
			{
				MethodName:             "Bitcoin Network",
				Currency:               "BTC",
				ReferencePrefix:        "BTC",
				SuccessRate:            0.92,
				MinAmount:              decimal.RequireFromString("0.0001"),
				MaxAmount:              decimal.NewFromInt(100),
				BaseHours:              2,
				MediumCongestionFactor: 1.5,
				HighCongestionFactor:   3,
				ConfirmationThreshold:  decimal.NewFromInt(10),
				ConfirmationHours:      2,
				BaseFee:                decimal.RequireFromString("0.00015"),
				LargeAmountThreshold:   decimal.NewFromInt(1),
				LargeAmountFeeRate:     decimal.RequireFromString("0.00005"),
				CrossCurrencyFee:       decimal.RequireFromString("0.00001"),
			},
			{
				MethodName:             "Ethereum Network",
				Currency:               "ETH",
				ReferencePrefix:        "ETH",
				SuccessRate:            0.88,
				MinAmount:              decimal.RequireFromString("0.01"),
				MaxAmount:              decimal.NewFromInt(1000),
				BaseHours:              0.5,
				MediumCongestionFactor: 1.2,
				HighCongestionFactor:   2,
				ConfirmationThreshold:  decimal.NewFromInt(100),
				ConfirmationHours:      0.5,
				BaseFee:                decimal.RequireFromString("0.0027"),
				LargeAmountThreshold:   decimal.NewFromInt(10),
				LargeAmountFeeRate:     decimal.RequireFromString("0.00067"),
				CrossCurrencyFee:       decimal.RequireFromString("0.0003"),
			},
			{
				MethodName:             "Lightning Network",
				Currency:               "BTC",
				ReferencePrefix:        "LN",
				SuccessRate:            0.96,
				MinAmount:              decimal.RequireFromString("0.00000001"),
				MaxAmount:              decimal.RequireFromString("0.01"),
				MicroPaymentCeiling:    decimal.RequireFromString("0.001"),
				BaseHours:              0,
				MediumCongestionFactor: 1,
				HighCongestionFactor:   1,
				BaseFee:                decimal.RequireFromString("0.0000005"),
				MinimumFee:             decimal.RequireFromString("0.0000001"),
				CrossCurrencyFee:       decimal.RequireFromString("0.00001"),
			},
		},
		HighCongestionPenalty: 0.05,
		LowCongestionBonus:    0.02,
		FeeMultipliers: map[Congestion]decimal.Decimal{
			CongestionLow:    decimal.RequireFromString("0.7"),
			CongestionMedium: decimal.NewFromInt(1),
			CongestionHigh:   decimal.RequireFromString("2.5"),
		},
		Hours: AlwaysOpen(),
		Clock: time.Now,
	}
}

// CryptoRail models payments over cryptocurrency networks. It is always open;
// congestion drives success rate, settlement time and fees.
type CryptoRail struct {
	baseRail
	cfg CryptoConfig
}

// NewCryptoRail creates a crypto rail.
func NewCryptoRail(cfg CryptoConfig) *CryptoRail {
	return &CryptoRail{
		baseRail: baseRail{
			name:       "CryptoRail",
			currencies: cfg.SupportedCurrencies,
			hours:      cfg.Hours,
			clock:      cfg.Clock,
		},
		cfg: cfg,
	}
}

var _ PaymentRail = (*CryptoRail)(nil)

// Network returns the configuration of the network behind a payment method.
func (r *CryptoRail) Network(methodName string) (CryptoNetworkConfig, bool) {
	for _, n := range r.cfg.Networks {
		if n.MethodName == methodName {
			return n, true
		}
	}
	return CryptoNetworkConfig{}, false
}

func (r *CryptoRail) Validate(instr Instruction) ValidationResult {
	if errs := r.validateBasics(instr); len(errs) > 0 {
		return newValidationResult(errs)
	}

	network, ok := r.Network(instr.PaymentMethodName)
	if !ok {
		return newValidationResult([]string{fmt.Sprintf("Unknown crypto method: %s", instr.PaymentMethodName)})
	}

	var errs []string
	if instr.SourceCurrency != network.Currency {
		errs = append(errs, fmt.Sprintf("%s requires %s currency", network.MethodName, network.Currency))
	}
	if instr.SourceAmount.LessThan(network.MinAmount) {
		errs = append(errs, fmt.Sprintf("%s minimum is %s %s", network.MethodName, network.MinAmount, instr.SourceCurrency))
	}
	if instr.SourceAmount.GreaterThan(network.MaxAmount) {
		errs = append(errs, fmt.Sprintf("%s maximum is %s %s", network.MethodName, network.MaxAmount, instr.SourceCurrency))
	}
	if network.MicroPaymentCeiling.IsPositive() && instr.SourceAmount.GreaterThan(network.MicroPaymentCeiling) {
		errs = append(errs, fmt.Sprintf("%s is for micro-payments only (max %s %s)", network.MethodName, network.MicroPaymentCeiling, network.Currency))
	}
	return newValidationResult(errs)
}

// SuccessRate returns the network's success probability under a congestion level.
func (r *CryptoRail) SuccessRate(network CryptoNetworkConfig, congestion Congestion) float64 {
	rate := network.SuccessRate
	switch congestion {
	case CongestionHigh:
		rate -= r.cfg.HighCongestionPenalty
	case CongestionLow:
		rate += r.cfg.LowCongestionBonus
	}
	return math.Min(1, math.Max(0, rate))
}

func (r *CryptoRail) Execute(ctx context.Context, instr Instruction, rnd RandomSource) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v := r.Validate(instr); !v.Valid {
		return rejected(methodLabel(instr, r.Name()), v.Errors), nil
	}

	network, _ := r.Network(instr.PaymentMethodName)
	congestion := DrawCongestion(rnd)

	if rnd.Float64() < r.SuccessRate(network, congestion) {
		return accepted(
			newReference(network.ReferencePrefix),
			network.MethodName+" transaction initiated successfully",
			r.now(),
			r.settlementHours(network, instr, congestion),
		), nil
	}

	message := network.MethodName + " temporarily unavailable"
	if congestion == CongestionHigh {
		message = network.MethodName + " network congested - transaction failed"
	}
	return &Outcome{Status: OutcomeFailed, Message: message}, nil
}

func (r *CryptoRail) EstimateSettlement(instr Instruction, rnd RandomSource) float64 {
	network, ok := r.Network(instr.PaymentMethodName)
	if !ok {
		return 0
	}
	return r.settlementHours(network, instr, DrawCongestion(rnd))
}

func (r *CryptoRail) settlementHours(network CryptoNetworkConfig, instr Instruction, congestion Congestion) float64 {
	hours := network.BaseHours
	switch congestion {
	case CongestionHigh:
		hours *= network.HighCongestionFactor
	case CongestionMedium:
		hours *= network.MediumCongestionFactor
	}
	if network.ConfirmationThreshold.IsPositive() && instr.SourceAmount.GreaterThan(network.ConfirmationThreshold) {
		hours += network.ConfirmationHours
	}
	hours += r.hours.HoursUntilOperating(r.now())
	return math.Max(0, hours)
}

func (r *CryptoRail) CalculateFees(instr Instruction, rnd RandomSource) Fee {
	network, ok := r.Network(instr.PaymentMethodName)
	if !ok {
		return Fee{Amount: decimal.Zero, Currency: instr.SourceCurrency}
	}
	return r.fees(network, instr, DrawCongestion(rnd))
}

func (r *CryptoRail) fees(network CryptoNetworkConfig, instr Instruction, congestion Congestion) Fee {
	multiplier, ok := r.cfg.FeeMultipliers[congestion]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}
	fee := network.BaseFee.Mul(multiplier)
	if network.LargeAmountThreshold.IsPositive() && instr.SourceAmount.GreaterThan(network.LargeAmountThreshold) {
		fee = fee.Add(instr.SourceAmount.Mul(network.LargeAmountFeeRate))
	}
	if instr.CrossCurrency() {
		fee = fee.Add(network.CrossCurrencyFee)
	}
	fee = decimal.Max(fee, network.MinimumFee)
	return Fee{Amount: fee.Round(8), Currency: instr.SourceCurrency}
}
