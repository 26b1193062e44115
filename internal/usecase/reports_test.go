package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/m/domain"
	"orderdesk/m/internal/finance"
)

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, local)
}

func TestLedgerUseCase_History(t *testing.T) {
	stored := []domain.Order{
		{ID: "late", Platform: domain.PlatformUber, Amount: dec("100"), Commission: decPtr("36"), NetAmount: decPtr("64"), Date: at(time.March, 1, 23, 50)},
		{ID: "cash", Platform: domain.PlatformWhatsApp, PaymentMethod: domain.PaymentCash, Amount: dec("50"), Date: at(time.March, 1, 12, 0)},
		{ID: "early", Platform: domain.PlatformUber, Amount: dec("10"), Commission: decPtr("3.6"), NetAmount: decPtr("6.4"), Date: at(time.March, 2, 0, 10)},
	}

	day := finance.Day{Year: 2024, Month: time.March, Day: 1}
	tests := []struct {
		name           string
		day            *finance.Day
		wantIDs        []string
		wantTotal      string
		wantCommission string
	}{
		{name: "single day", day: &day, wantIDs: []string{"late", "cash"}, wantTotal: "114", wantCommission: "36"},
		{name: "no filter", day: nil, wantIDs: []string{"late", "cash", "early"}, wantTotal: "120.4", wantCommission: "39.6"},
		{name: "day without orders", day: &finance.Day{Year: 2024, Month: time.April, Day: 1}, wantIDs: []string{}, wantTotal: "0", wantCommission: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newLedger(t)
			repo.EXPECT().ReadOrders(gomock.Any()).Return(stored, nil)

			got, err := uc.History(context.Background(), tt.day)
			require.NoError(t, err)

			ids := []string{}
			for _, o := range got.Orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), got.Count)
			assertDecimal(t, tt.wantTotal, got.DailyTotal)
			assertDecimal(t, tt.wantCommission, got.TotalCommission)
		})
	}
}

func TestLedgerUseCase_Dashboard(t *testing.T) {
	uc, repo := newLedger(t)
	repo.EXPECT().ReadOrders(gomock.Any()).Return([]domain.Order{
		{ID: "1", Platform: domain.PlatformUber, Amount: dec("100"), Date: at(time.March, 2, 10, 0)},
		{ID: "2", Platform: domain.PlatformPedidosYa, Reference: "PY", Amount: dec("200"), Date: at(time.March, 7, 11, 0)},
		{ID: "feb", Platform: domain.PlatformUber, Amount: dec("1000"), Date: at(time.February, 29, 20, 0)},
	}, nil)
	repo.EXPECT().WriteOrders(gomock.Any(), gomock.Len(3)).Return(nil)
	repo.EXPECT().ReadExpenses(gomock.Any()).Return([]domain.Expense{
		{ID: "e1", Type: domain.ExpenseSupplies, Concept: "queso", Amount: dec("20"), Date: at(time.March, 3, 9, 0)},
		{ID: "e2", Type: domain.ExpenseSalary, Concept: "febrero", Amount: dec("500"), Date: at(time.February, 28, 9, 0)},
	}, nil)

	got, err := uc.Dashboard(context.Background(), finance.Month{Year: 2024, Month: time.March})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Summary.TotalOrders)
	assertDecimal(t, "300", got.Summary.TotalRevenue)
	assertDecimal(t, "108", got.Summary.TotalCommissions)
	assertDecimal(t, "192", got.Summary.NetRevenue)
	assertDecimal(t, "150", got.Summary.AverageOrderValue)
	assertDecimal(t, "20", got.TotalExpenses)
	assertDecimal(t, "172", got.FinalProfit)
	assert.Len(t, got.Orders, 2)

	assert.Equal(t, 1, got.Platforms[domain.PlatformUber].Orders)
	assert.Equal(t, 1, got.Platforms[domain.PlatformPedidosYa].Orders)
	assert.Equal(t, 0, got.Platforms[domain.PlatformWhatsApp].Orders)

	// Current month: the series ends today (03-07) and reaches back into February.
	require.Len(t, got.Series, 7)
	assert.Equal(t, "2024-03-01", got.Series[0].Day.String())
	assert.Equal(t, "2024-03-07", got.Series[6].Day.String())
	assertDecimal(t, "64", got.Series[1].NetRevenue)
	assertDecimal(t, "128", got.Series[6].NetRevenue)
}

func TestLedgerUseCase_DashboardPastMonth(t *testing.T) {
	uc, repo := newLedger(t)
	repo.EXPECT().ReadOrders(gomock.Any()).Return([]domain.Order{
		{ID: "1", Platform: domain.PlatformUber, Amount: dec("100"), Commission: decPtr("36"), NetAmount: decPtr("64"), Date: at(time.February, 29, 20, 0)},
	}, nil)
	repo.EXPECT().ReadExpenses(gomock.Any()).Return([]domain.Expense{
		{ID: "e1", Type: domain.ExpenseSupplies, Concept: "queso", Amount: dec("20"), Date: at(time.February, 10, 9, 0)},
	}, nil)

	got, err := uc.Dashboard(context.Background(), finance.Month{Year: 2024, Month: time.February})
	require.NoError(t, err)

	assertDecimal(t, "64", got.Summary.NetRevenue)
	assertDecimal(t, "44", got.FinalProfit)
	require.Len(t, got.Series, 7)
	assert.Equal(t, "2024-02-29", got.Series[6].Day.String())
	assertDecimal(t, "64", got.Series[6].NetRevenue)
}

func TestLedgerUseCase_DashboardEmpty(t *testing.T) {
	uc, repo := newLedger(t)
	repo.EXPECT().ReadOrders(gomock.Any()).Return([]domain.Order{}, nil)
	repo.EXPECT().ReadExpenses(gomock.Any()).Return([]domain.Expense{}, nil)

	got, err := uc.Dashboard(context.Background(), finance.Month{Year: 2023, Month: time.June})
	require.NoError(t, err)

	assert.Equal(t, 0, got.Summary.TotalOrders)
	assertDecimal(t, "0", got.FinalProfit)
	assert.Len(t, got.Platforms, 3)
	assert.NotNil(t, got.Orders)
	assert.Empty(t, got.Orders)
}

func TestLedgerUseCase_DashboardExpenseReadFailure(t *testing.T) {
	uc, repo := newLedger(t)
	repo.EXPECT().ReadOrders(gomock.Any()).Return([]domain.Order{}, nil)
	repo.EXPECT().ReadExpenses(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := uc.Dashboard(context.Background(), finance.Month{Year: 2024, Month: time.March})
	assert.Error(t, err)
}

func TestLedgerUseCase_Expenses(t *testing.T) {
	uc, repo := newLedger(t)
	repo.EXPECT().ReadExpenses(gomock.Any()).Return([]domain.Expense{
		{ID: "e1", Type: domain.ExpenseSupplies, Concept: "queso", Amount: dec("20"), Date: at(time.March, 3, 9, 0)},
		{ID: "e2", Type: domain.ExpenseOther, Concept: "gas", Amount: dec("12.75"), Date: at(time.March, 31, 23, 30)},
		{ID: "e3", Type: domain.ExpenseSalary, Concept: "abril", Amount: dec("500"), Date: at(time.April, 1, 0, 5)},
	}, nil)

	got, err := uc.Expenses(context.Background(), finance.Month{Year: 2024, Month: time.March})
	require.NoError(t, err)

	assert.Len(t, got.Expenses, 2)
	assertDecimal(t, "32.75", got.Total)
}

func TestLedgerUseCase_TodayUsesLedgerZone(t *testing.T) {
	uc, _ := newLedger(t)

	assert.Equal(t, finance.Day{Year: 2024, Month: time.March, Day: 7}, uc.Today())
	assert.Equal(t, finance.Month{Year: 2024, Month: time.March}, uc.CurrentMonth())
}
