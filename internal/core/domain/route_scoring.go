package domain

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// scoreWeight caps the contribution of each factor.
	scoreWeight = decimal.NewFromInt(50)
	// settlementWindowHours is the reference window; slower methods score zero on speed.
	settlementWindowHours = decimal.NewFromInt(48)
)

// Decimal places used for quoted fees and route scores.
const (
	CostPrecision  = 8
	ScorePrecision = 2
)

// RouteScore is the cost/speed evaluation of one payment method for an amount.
type RouteScore struct {
	Fee        decimal.Decimal
	TotalCost  decimal.Decimal
	CostScore  decimal.Decimal
	SpeedScore decimal.Decimal
	Score      decimal.Decimal
}

// ScoreRoute blends cost and speed into a score in [0, 100]. Each factor is
// clamped to [0, 50].
func ScoreRoute(amount decimal.Decimal, method PaymentMethod) RouteScore {
	one := decimal.NewFromInt(1)

	fee := amount.Mul(method.FeePercentage)
	costScore := clamp(one.Sub(method.FeePercentage).Mul(scoreWeight))
	speedScore := clamp(settlementWindowHours.Sub(method.AvgSettlementHours).Div(settlementWindowHours).Mul(scoreWeight))

	return RouteScore{
		Fee:        fee.Round(CostPrecision),
		TotalCost:  amount.Add(fee).Round(CostPrecision),
		CostScore:  costScore,
		SpeedScore: speedScore,
		Score:      costScore.Add(speedScore).Round(ScorePrecision),
	}
}

func clamp(v decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, decimal.Zero), scoreWeight)
}

// NewQuoteRoute builds the unranked route for a method.
func NewQuoteRoute(quoteID, quoteRouteID string, amount decimal.Decimal, method PaymentMethod) QuoteRoute {
	score := ScoreRoute(amount, method)
	return QuoteRoute{
		QuoteRouteID:       quoteRouteID,
		QuoteID:            quoteID,
		PaymentMethodID:    method.PaymentMethodID,
		MethodName:         method.Name,
		MethodType:         method.Type,
		EstimatedCost:      score.Fee,
		TotalCost:          score.TotalCost,
		EstimatedTimeHours: method.AvgSettlementHours,
		Score:              score.Score,
	}
}

// CompareRoutes orders routes by score descending, then faster settlement, then
// payment method id.
func CompareRoutes(a, b QuoteRoute) int {
	if c := b.Score.Cmp(a.Score); c != 0 {
		return c
	}
	if c := a.EstimatedTimeHours.Cmp(b.EstimatedTimeHours); c != 0 {
		return c
	}
	return cmp.Compare(a.PaymentMethodID, b.PaymentMethodID)
}

// RankRoutes sorts routes in place and numbers them from 1.
func RankRoutes(routes []QuoteRoute) {
	slices.SortStableFunc(routes, CompareRoutes)
	for i := range routes {
		routes[i].Rank = i + 1
	}
}
