// Package finance holds the money rules of the business: platform commissions,
// the backfill of legacy orders, date filters and the report aggregations.
// Everything here is pure; storage is the caller's concern.
package finance

import (
	"github.com/shopspring/decimal"

	"orderdesk/m/domain"
)

// Policy carries the commission rates charged by each channel.
type Policy struct {
	// MarketplaceRate applies to every Uber and PedidosYa order.
	MarketplaceRate decimal.Decimal
	// CardRate applies to WhatsApp orders paid by card.
	CardRate decimal.Decimal
}

// DefaultPolicy is 36% on marketplace orders and 2% on WhatsApp card payments.
var DefaultPolicy = Policy{
	MarketplaceRate: decimal.RequireFromString("0.36"),
	CardRate:        decimal.RequireFromString("0.02"),
}

// Commission returns the platform's cut of amount. The result is not rounded.
func (p Policy) Commission(platform domain.Platform, method domain.PaymentMethod, amount decimal.Decimal) decimal.Decimal {
	switch platform {
	case domain.PlatformUber, domain.PlatformPedidosYa:
		return amount.Mul(p.MarketplaceRate)
	case domain.PlatformWhatsApp:
		if method == domain.PaymentCard {
			return amount.Mul(p.CardRate)
		}
	}
	return decimal.Zero
}
