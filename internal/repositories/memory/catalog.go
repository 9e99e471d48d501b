package memory

import (
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	wireCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD"}
	achCurrencies  = []string{"USD", "CAD", "EUR", "GBP"}
	fastCurrencies = []string{"USD", "EUR", "GBP"}
)

// DefaultCurrencies is the seed currency list, matching migrations/000002.
func DefaultCurrencies() []domain.Currency {
	currency := func(code, symbol, name string, precision int) domain.Currency {
		return domain.Currency{
			CurrencyCode: code,
			Symbol:       symbol,
			Name:         name,
			Precision:    precision,
			IsActive:     true,
			AuditFields:  domain.AuditFields{CreatedBy: "system", LastUpdatedBy: "system"},
		}
	}
	return []domain.Currency{
		currency("USD", "$", "US Dollar", 2),
		currency("EUR", "€", "Euro", 2),
		currency("GBP", "£", "British Pound", 2),
		currency("JPY", "¥", "Japanese Yen", 0),
		currency("CHF", "CHF", "Swiss Franc", 2),
		currency("CAD", "C$", "Canadian Dollar", 2),
		currency("AUD", "A$", "Australian Dollar", 2),
		currency("USDC", "USDC", "USD Coin", 6),
		currency("BTC", "₿", "Bitcoin", 8),
		currency("ETH", "Ξ", "Ether", 8),
	}
}

// DefaultPaymentMethods is the seed payment method catalog, matching migrations/000002.
func DefaultPaymentMethods() []domain.PaymentMethod {
	method := func(id, name string, kind domain.PaymentMethodType, lo, hi, hours, fee string, source, target []string) domain.PaymentMethod {
		return domain.PaymentMethod{
			PaymentMethodID:    id,
			Name:               name,
			Type:               kind,
			MinAmount:          decimal.RequireFromString(lo),
			MaxAmount:          decimal.RequireFromString(hi),
			AvgSettlementHours: decimal.RequireFromString(hours),
			FeePercentage:      decimal.RequireFromString(fee),
			SourceCurrencies:   source,
			TargetCurrencies:   target,
			IsActive:           true,
			AuditFields:        domain.AuditFields{CreatedBy: "system", LastUpdatedBy: "system"},
		}
	}
	eur := []string{"EUR"}
	btc := []string{"BTC"}
	eth := []string{"ETH"}
	return []domain.PaymentMethod{
		method("swift-wire", "SWIFT Wire Transfer", domain.PaymentMethodWire, "100", "10000000", "24", "0.01", wireCurrencies, wireCurrencies),
		method("correspondent-banking", "Correspondent Banking", domain.PaymentMethodWire, "1000", "50000000", "48", "0.015", wireCurrencies, wireCurrencies),
		method("international-ach", "International ACH", domain.PaymentMethodWire, "100", "100000", "72", "0.005", achCurrencies, achCurrencies),
		method("same-day-wire", "Same-Day Wire", domain.PaymentMethodWire, "100", "5000000", "8", "0.02", fastCurrencies, fastCurrencies),
		method("overnight-express", "Overnight Express", domain.PaymentMethodWire, "100", "1000000", "16", "0.0125",
			[]string{"USD", "EUR", "GBP", "CHF"}, []string{"USD", "EUR", "GBP", "CHF"}),
		method("sepa-credit-transfer", "SEPA Credit Transfer", domain.PaymentMethodRegional, "1", "999999", "24", "0.002", eur, eur),
		method("sepa-instant", "SEPA Instant", domain.PaymentMethodRegional, "1", "100000", "0", "0.005", eur, eur),
		method("bitcoin-network", "Bitcoin Network", domain.PaymentMethodCrypto, "0.0001", "100", "1", "0.001", btc, btc),
		method("ethereum-network", "Ethereum Network", domain.PaymentMethodCrypto, "0.01", "1000", "0.25", "0.0015", eth, eth),
		method("lightning-network", "Lightning Network", domain.PaymentMethodCrypto, "0.00000001", "0.001", "0.01", "0.0001", btc, btc),
	}
}
