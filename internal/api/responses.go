package api

import (
	"time"

	"github.com/shopspring/decimal"

	"orderdesk/m/domain"
)

// money renders an amount for display. Values are only rounded here.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type orderResponse struct {
	ID             string                `json:"id"`
	Platform       domain.Platform       `json:"platform"`
	PlatformLabel  string                `json:"platform_label"`
	Reference      string                `json:"reference,omitempty"`
	Amount         string                `json:"amount"`
	PaymentMethod  domain.PaymentMethod  `json:"payment_method,omitempty"`
	DeliveryPerson domain.DeliveryPerson `json:"delivery_person,omitempty"`
	Commission     string                `json:"commission"`
	NetAmount      string                `json:"net_amount"`
	Date           time.Time             `json:"date"`
}

// newOrderResponse shows an absent commission as zero and an absent net
// amount as the full amount.
func newOrderResponse(o domain.Order) orderResponse {
	net := o.Amount
	if o.NetAmount != nil {
		net = *o.NetAmount
	}
	return orderResponse{
		ID:             o.ID,
		Platform:       o.Platform,
		PlatformLabel:  o.Platform.Label(),
		Reference:      o.Reference,
		Amount:         money(o.Amount),
		PaymentMethod:  o.PaymentMethod,
		DeliveryPerson: o.DeliveryPerson,
		Commission:     money(o.CommissionOrZero()),
		NetAmount:      money(net),
		Date:           o.Date,
	}
}

func newOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = newOrderResponse(o)
	}
	return out
}

type expenseResponse struct {
	ID        string             `json:"id"`
	Type      domain.ExpenseType `json:"type"`
	TypeLabel string             `json:"type_label"`
	Concept   string             `json:"concept"`
	Amount    string             `json:"amount"`
	Date      time.Time          `json:"date"`
}

func newExpenseResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:        e.ID,
		Type:      e.Type,
		TypeLabel: e.Type.Label(),
		Concept:   e.Concept,
		Amount:    money(e.Amount),
		Date:      e.Date,
	}
}
