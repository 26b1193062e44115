// Package store persists the order and expense collections. Each collection
// is read and written whole, as one JSON document, on top of a byte-level
// Backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"orderdesk/m/domain"
)

// Collection names a stored collection.
type Collection string

const (
	Orders   Collection = "orders"
	Expenses Collection = "expenses"
)

// Backend reads and replaces a whole named collection. ReadCollection returns
// nil when nothing has been stored under name.
type Backend interface {
	ReadCollection(ctx context.Context, name Collection) ([]byte, error)
	WriteCollection(ctx context.Context, name Collection, payload []byte) error
}

// Store is the typed view over a Backend.
type Store struct {
	backend Backend
}

// New constructs a Store.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) ReadOrders(ctx context.Context) ([]domain.Order, error) {
	return read[domain.Order](ctx, s.backend, Orders)
}

func (s *Store) WriteOrders(ctx context.Context, orders []domain.Order) error {
	return write(ctx, s.backend, Orders, orders)
}

func (s *Store) ReadExpenses(ctx context.Context) ([]domain.Expense, error) {
	return read[domain.Expense](ctx, s.backend, Expenses)
}

func (s *Store) WriteExpenses(ctx context.Context, expenses []domain.Expense) error {
	return write(ctx, s.backend, Expenses, expenses)
}

// read fails closed: a missing, empty or unparseable payload yields an empty
// collection. Only backend failures are returned.
func read[T any](ctx context.Context, backend Backend, name Collection) ([]T, error) {
	payload, err := backend.ReadCollection(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", name, err)
	}
	if len(payload) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		log.Printf("discarding unparseable %s collection: %v", name, err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func write[T any](ctx context.Context, backend Backend, name Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	if err := backend.WriteCollection(ctx, name, payload); err != nil {
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	return nil
}
