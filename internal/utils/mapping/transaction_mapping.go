package mapping

import (
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/ARLocke322/Payment-Router/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		QuoteID:           d.QuoteID,
		SourceCurrency:    d.SourceCurrency,
		TargetCurrency:    d.TargetCurrency,
		SourceAmount:      d.SourceAmount,
		TargetAmount:      d.TargetAmount,
		Status:            string(d.Status),
		ProviderReference: d.ProviderReference,
		CreatedAt:         d.CreatedAt,
		LastUpdatedAt:     d.LastUpdatedAt,
	}
}

// ToDomainTransaction converts a model Transaction and optional Route to a domain Transaction
func ToDomainTransaction(m models.Transaction, route *models.Route) domain.Transaction {
	d := domain.Transaction{
		TransactionID:     m.TransactionID,
		QuoteID:           m.QuoteID,
		SourceCurrency:    m.SourceCurrency,
		TargetCurrency:    m.TargetCurrency,
		SourceAmount:      m.SourceAmount,
		TargetAmount:      m.TargetAmount,
		Status:            domain.TransactionStatus(m.Status),
		ProviderReference: m.ProviderReference,
		CreatedAt:         m.CreatedAt,
		LastUpdatedAt:     m.LastUpdatedAt,
	}
	if route != nil {
		r := ToDomainRoute(*route)
		d.Route = &r
	}
	return d
}

// ToModelRoute converts a domain Route to a model Route
func ToModelRoute(d domain.Route) models.Route {
	return models.Route{
		RouteID:            d.RouteID,
		TransactionID:      d.TransactionID,
		PaymentMethodID:    d.PaymentMethodID,
		EstimatedCost:      d.EstimatedCost,
		EstimatedTimeHours: d.EstimatedTimeHours,
		ExchangeRate:       d.ExchangeRate,
		Score:              d.Score,
		IsSelected:         d.IsSelected,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainRoute converts a model Route to a domain Route
func ToDomainRoute(m models.Route) domain.Route {
	return domain.Route{
		RouteID:            m.RouteID,
		TransactionID:      m.TransactionID,
		PaymentMethodID:    m.PaymentMethodID,
		EstimatedCost:      m.EstimatedCost,
		EstimatedTimeHours: m.EstimatedTimeHours,
		ExchangeRate:       m.ExchangeRate,
		Score:              m.Score,
		IsSelected:         m.IsSelected,
		CreatedAt:          m.CreatedAt,
	}
}
