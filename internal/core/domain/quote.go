package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteActive QuoteStatus = "active"
	QuoteUsed   QuoteStatus = "used"
	// QuoteExpired is derived at read time and never stored.
	QuoteExpired QuoteStatus = "expired"
)

// DefaultQuoteTTL is how long a quote stays executable.
const DefaultQuoteTTL = 15 * time.Minute

// Quote is a time-boxed, ranked set of routes for a currency conversion.
// Status moves from active to used at most once.
type Quote struct {
	QuoteID        string          `json:"quoteID"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	Status         QuoteStatus     `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
	Routes         []QuoteRoute    `json:"routes"`
}

// IsExpired reports whether the quote's window has closed at now.
func (q Quote) IsExpired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

// EffectiveStatus returns the status a reader should see at now.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q.Status == QuoteActive && q.IsExpired(now) {
		return QuoteExpired
	}
	return q.Status
}

// IsExecutable reports whether the quote may still be consumed at now.
func (q Quote) IsExecutable(now time.Time) bool {
	return q.EffectiveStatus(now) == QuoteActive
}

// FindRoute returns the route quoted for a payment method.
func (q Quote) FindRoute(paymentMethodID string) (QuoteRoute, bool) {
	for _, r := range q.Routes {
		if r.PaymentMethodID == paymentMethodID {
			return r, true
		}
	}
	return QuoteRoute{}, false
}

// QuoteRoute is one candidate payment method for a quote. Immutable once created.
type QuoteRoute struct {
	QuoteRouteID       string            `json:"quoteRouteID"`
	QuoteID            string            `json:"quoteID"`
	PaymentMethodID    string            `json:"paymentMethodID"`
	MethodName         string            `json:"methodName"`
	MethodType         PaymentMethodType `json:"methodType"`
	EstimatedCost      decimal.Decimal   `json:"estimatedCost"` // fee in source currency
	TotalCost          decimal.Decimal   `json:"totalCost"`
	EstimatedTimeHours decimal.Decimal   `json:"estimatedTimeHours"`
	Score              decimal.Decimal   `json:"score"`
	Rank               int               `json:"rank"`
}
