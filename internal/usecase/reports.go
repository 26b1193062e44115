package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"orderdesk/m/domain"
	"orderdesk/m/internal/finance"
)

// History is the order list for one day, or for all time when Day is nil.
type History struct {
	Day             *finance.Day
	Orders          []domain.Order
	Count           int
	DailyTotal      decimal.Decimal
	TotalCommission decimal.Decimal
}

// Dashboard is the monthly financial view.
type Dashboard struct {
	Month         finance.Month
	Summary       finance.Summary
	Platforms     map[domain.Platform]finance.PlatformStats
	TotalExpenses decimal.Decimal
	FinalProfit   decimal.Decimal
	Series        []finance.DayPoint
	Orders        []domain.Order
}

// MonthExpenses lists a month's expenses.
type MonthExpenses struct {
	Month    finance.Month
	Expenses []domain.Expense
	Total    decimal.Decimal
}

// History loads the orders and keeps the ones registered on day.
func (uc *LedgerUseCase) History(ctx context.Context, day *finance.Day) (*History, error) {
	orders, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := finance.FilterByDay(orders, day, uc.loc)
	return &History{
		Day:             day,
		Orders:          nonNil(filtered),
		Count:           finance.Count(filtered),
		DailyTotal:      finance.DailyTotal(filtered),
		TotalCommission: finance.TotalCommissions(filtered),
	}, nil
}

// Dashboard aggregates a month of orders and expenses. The daily series ends
// today when month is the current month and on the month's last day otherwise.
func (uc *LedgerUseCase) Dashboard(ctx context.Context, month finance.Month) (*Dashboard, error) {
	orders, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.store.ReadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load expenses: %w", err)
	}

	monthOrders := finance.FilterByMonth(orders, month, uc.loc)
	monthExpenses := finance.FilterByMonth(expenses, month, uc.loc)

	reference := month.LastDay()
	if today := uc.Today(); month.Contains(today) {
		reference = today
	}

	summary := finance.Summarize(monthOrders)
	totalExpenses := finance.TotalExpenses(monthExpenses)
	return &Dashboard{
		Month:         month,
		Summary:       summary,
		Platforms:     finance.PlatformBreakdown(monthOrders),
		TotalExpenses: totalExpenses,
		FinalProfit:   summary.NetRevenue.Sub(totalExpenses),
		Series:        finance.DailySeries(orders, reference, finance.DefaultWindowDays, uc.loc),
		Orders:        nonNil(monthOrders),
	}, nil
}

// Expenses lists the expenses registered during month.
func (uc *LedgerUseCase) Expenses(ctx context.Context, month finance.Month) (*MonthExpenses, error) {
	expenses, err := uc.store.ReadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load expenses: %w", err)
	}

	filtered := finance.FilterByMonth(expenses, month, uc.loc)
	return &MonthExpenses{
		Month:    month,
		Expenses: nonNil(filtered),
		Total:    finance.TotalExpenses(filtered),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
