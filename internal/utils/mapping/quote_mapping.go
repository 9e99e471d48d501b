package mapping

import (
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/ARLocke322/Payment-Router/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote. Routes are mapped separately.
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:        d.QuoteID,
		SourceCurrency: d.SourceCurrency,
		TargetCurrency: d.TargetCurrency,
		SourceAmount:   d.SourceAmount,
		ExchangeRate:   d.ExchangeRate,
		TargetAmount:   d.TargetAmount,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		ExpiresAt:      d.ExpiresAt,
	}
}

// ToDomainQuote converts a model Quote and its routes to a domain Quote
func ToDomainQuote(m models.Quote, routes []models.QuoteRoute) domain.Quote {
	return domain.Quote{
		QuoteID:        m.QuoteID,
		SourceCurrency: m.SourceCurrency,
		TargetCurrency: m.TargetCurrency,
		SourceAmount:   m.SourceAmount,
		ExchangeRate:   m.ExchangeRate,
		TargetAmount:   m.TargetAmount,
		Status:         domain.QuoteStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		ExpiresAt:      m.ExpiresAt,
		Routes:         ToDomainQuoteRouteSlice(routes),
	}
}

// ToModelQuoteRoute converts a domain QuoteRoute to a model QuoteRoute
func ToModelQuoteRoute(d domain.QuoteRoute) models.QuoteRoute {
	return models.QuoteRoute{
		QuoteRouteID:       d.QuoteRouteID,
		QuoteID:            d.QuoteID,
		PaymentMethodID:    d.PaymentMethodID,
		MethodName:         d.MethodName,
		MethodType:         string(d.MethodType),
		EstimatedCost:      d.EstimatedCost,
		TotalCost:          d.TotalCost,
		EstimatedTimeHours: d.EstimatedTimeHours,
		Score:              d.Score,
		Rank:               d.Rank,
	}
}

// ToDomainQuoteRoute converts a model QuoteRoute to a domain QuoteRoute
func ToDomainQuoteRoute(m models.QuoteRoute) domain.QuoteRoute {
	return domain.QuoteRoute{
		QuoteRouteID:       m.QuoteRouteID,
		QuoteID:            m.QuoteID,
		PaymentMethodID:    m.PaymentMethodID,
		MethodName:         m.MethodName,
		MethodType:         domain.PaymentMethodType(m.MethodType),
		EstimatedCost:      m.EstimatedCost,
		TotalCost:          m.TotalCost,
		EstimatedTimeHours: m.EstimatedTimeHours,
		Score:              m.Score,
		Rank:               m.Rank,
	}
}

// ToDomainQuoteRouteSlice converts model QuoteRoutes to domain QuoteRoutes
func ToDomainQuoteRouteSlice(ms []models.QuoteRoute) []domain.QuoteRoute {
	ds := make([]domain.QuoteRoute, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuoteRoute(m)
	}
	return ds
}
