package finance

import (
	"orderdesk/m/domain"
)

// MigrateOrder backfills Commission and NetAmount on an order stored before
// they existed. Present values are never overwritten. When the computed
// commission is zero the order is left as it is, so legacy cash and transfer
// WhatsApp orders keep both fields absent. The bool reports whether a field
// was filled.
func MigrateOrder(p Policy, o domain.Order) (domain.Order, bool) {
	if o.Commission == nil {
		commission := p.Commission(o.Platform, o.PaymentMethod, o.Amount)
		if !commission.IsPositive() {
			return o, false
		}
		net := o.Amount.Sub(commission)
		o.Commission = &commission
		o.NetAmount = &net
		return o, true
	}

	if o.NetAmount == nil {
		net := o.Amount.Sub(*o.Commission)
		o.NetAmount = &net
		return o, true
	}

	return o, false
}

// MigrateOrders applies MigrateOrder to every order and returns a new slice.
// Running it on its own output changes nothing.
func MigrateOrders(p Policy, orders []domain.Order) ([]domain.Order, bool) {
	migrated := make([]domain.Order, len(orders))
	changed := false
	for i, o := range orders {
		var filled bool
		migrated[i], filled = MigrateOrder(p, o)
		changed = changed || filled
	}
	return migrated, changed
}
