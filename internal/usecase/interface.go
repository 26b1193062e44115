package usecase

import (
	"context"

	"orderdesk/m/domain"
)

// RecordStore is the persistence the ledger depends on. Collections are read
// and written whole.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go RecordStore
type RecordStore interface {
	ReadOrders(ctx context.Context) ([]domain.Order, error)
	WriteOrders(ctx context.Context, orders []domain.Order) error
	ReadExpenses(ctx context.Context) ([]domain.Expense, error)
	WriteExpenses(ctx context.Context, expenses []domain.Expense) error
}
