package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Platform is the sales channel an order came through.
type Platform string

const (
	PlatformUber      Platform = "uber"
	PlatformPedidosYa Platform = "pedidosya"
	PlatformWhatsApp  Platform = "whatsapp"
)

// Platforms lists every sales channel in display order.
var Platforms = []Platform{PlatformUber, PlatformPedidosYa, PlatformWhatsApp}

func (p Platform) Valid() bool {
	switch p {
	case PlatformUber, PlatformPedidosYa, PlatformWhatsApp:
		return true
	}
	return false
}

func (p Platform) Label() string {
	switch p {
	case PlatformUber:
		return "Uber"
	case PlatformPedidosYa:
		return "PedidosYa"
	case PlatformWhatsApp:
		return "WhatsApp"
	}
	return string(p)
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Efectivo"
	case PaymentTransfer:
		return "Transferencia"
	case PaymentCard:
		return "Tarjeta"
	}
	return string(m)
}

type DeliveryPerson string

const (
	DeliveryNone  DeliveryPerson = "none"
	DeliveryRosi  DeliveryPerson = "rosi"
	DeliveryJosue DeliveryPerson = "josue"
)

func (d DeliveryPerson) Valid() bool {
	switch d {
	case DeliveryNone, DeliveryRosi, DeliveryJosue:
		return true
	}
	return false
}

func (d DeliveryPerson) Label() string {
	switch d {
	case DeliveryNone:
		return "Sin entrega"
	case DeliveryRosi:
		return "Rosi"
	case DeliveryJosue:
		return "Josue"
	}
	return string(d)
}

// Order is a single sale. Commission and NetAmount are nil on records written
// before commissions were tracked.
type Order struct {
	ID             string           `json:"id"`
	Platform       Platform         `json:"platform"`
	Reference      string           `json:"reference,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	PaymentMethod  PaymentMethod    `json:"paymentMethod,omitempty"`
	DeliveryPerson DeliveryPerson   `json:"deliveryPerson,omitempty"`
	Commission     *decimal.Decimal `json:"commission,omitempty"`
	NetAmount      *decimal.Decimal `json:"netAmount,omitempty"`
	Date           time.Time        `json:"date"`
}

func (o Order) OccurredAt() time.Time {
	return o.Date
}

// CommissionOrZero returns the stored commission, treating an absent value as zero.
func (o Order) CommissionOrZero() decimal.Decimal {
	if o.Commission == nil {
		return decimal.Zero
	}
	return *o.Commission
}
