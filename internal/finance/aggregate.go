package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"orderdesk/m/domain"
)

// DefaultWindowDays is the length of the dashboard's daily series.
const DefaultWindowDays = 7

// Summary is the headline block of the monthly dashboard.
type Summary struct {
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	TotalCommissions  decimal.Decimal
	NetRevenue        decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// PlatformStats accumulates the orders of one sales channel.
type PlatformStats struct {
	Orders      int
	Revenue     decimal.Decimal
	Commissions decimal.Decimal
	NetRevenue  decimal.Decimal
}

// DayPoint is one entry of a daily series.
type DayPoint struct {
	Day        Day
	NetRevenue decimal.Decimal
}

func Count(orders []domain.Order) int {
	return len(orders)
}

// GrossRevenue sums the order amounts.
func GrossRevenue(orders []domain.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Amount)
	}
	return total
}

// TotalCommissions sums the stored commissions; absent ones count as zero.
func TotalCommissions(orders []domain.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.CommissionOrZero())
	}
	return total
}

func NetRevenue(orders []domain.Order) decimal.Decimal {
	return GrossRevenue(orders).Sub(TotalCommissions(orders))
}

// DailyTotal is the figure shown under the order history: every order
// contributes its amount minus its commission.
func DailyTotal(orders []domain.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Amount.Sub(o.CommissionOrZero()))
	}
	return total
}

func TotalExpenses(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// FinalProfit is what is left of the net revenue once expenses are paid.
func FinalProfit(orders []domain.Order, expenses []domain.Expense) decimal.Decimal {
	return NetRevenue(orders).Sub(TotalExpenses(expenses))
}

func AverageOrderValue(orders []domain.Order) decimal.Decimal {
	if len(orders) == 0 {
		return decimal.Zero
	}
	return GrossRevenue(orders).Div(decimal.NewFromInt(int64(len(orders))))
}

// Summarize computes the dashboard headline figures in one call.
func Summarize(orders []domain.Order) Summary {
	gross := GrossRevenue(orders)
	commissions := TotalCommissions(orders)
	return Summary{
		TotalOrders:       Count(orders),
		TotalRevenue:      gross,
		TotalCommissions:  commissions,
		NetRevenue:        gross.Sub(commissions),
		AverageOrderValue: AverageOrderValue(orders),
	}
}

// PlatformBreakdown buckets orders by platform in a single pass. Every known
// platform is present in the result; orders with an unknown platform tag are
// skipped.
func PlatformBreakdown(orders []domain.Order) map[domain.Platform]PlatformStats {
	stats := make(map[domain.Platform]PlatformStats, len(domain.Platforms))
	for _, p := range domain.Platforms {
		stats[p] = PlatformStats{
			Revenue:     decimal.Zero,
			Commissions: decimal.Zero,
			NetRevenue:  decimal.Zero,
		}
	}

	for _, o := range orders {
		s, ok := stats[o.Platform]
		if !ok {
			continue
		}
		commission := o.CommissionOrZero()
		s.Orders++
		s.Revenue = s.Revenue.Add(o.Amount)
		s.Commissions = s.Commissions.Add(commission)
		s.NetRevenue = s.NetRevenue.Add(o.Amount.Sub(commission))
		stats[o.Platform] = s
	}
	return stats
}

// DailySeries returns the net revenue of each of the windowDays calendar days
// ending at reference (inclusive), oldest first. Days without orders are
// reported as zero. A non-positive window falls back to DefaultWindowDays.
func DailySeries(orders []domain.Order, reference Day, windowDays int, loc *time.Location) []DayPoint {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	first := reference.AddDays(-(windowDays - 1))
	index := make(map[Day]int, windowDays)
	series := make([]DayPoint, windowDays)
	for i := range series {
		d := first.AddDays(i)
		series[i] = DayPoint{Day: d, NetRevenue: decimal.Zero}
		index[d] = i
	}

	for _, o := range orders {
		i, ok := index[DayOf(o.Date, loc)]
		if !ok {
			continue
		}
		series[i].NetRevenue = series[i].NetRevenue.Add(o.Amount.Sub(o.CommissionOrZero()))
	}
	return series
}
