package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderdesk/m/domain"
	"orderdesk/m/internal/finance"
)

// ErrInvalidInput marks registration data the ledger refuses to store.
var ErrInvalidInput = errors.New("invalid input")

// LedgerUseCase registers orders and expenses and builds the history and
// dashboard views over them.
type LedgerUseCase struct {
	store  RecordStore
	policy finance.Policy
	loc    *time.Location
	now    func() time.Time
}

// NewLedgerUseCase creates a new instance of the usecase. A nil loc means the
// process's local zone and a nil clock means time.Now.
func NewLedgerUseCase(store RecordStore, policy finance.Policy, loc *time.Location, now func() time.Time) *LedgerUseCase {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &LedgerUseCase{store: store, policy: policy, loc: loc, now: now}
}

// Today is the current calendar date in the ledger's zone.
func (uc *LedgerUseCase) Today() finance.Day {
	return finance.DayOf(uc.now(), uc.loc)
}

// CurrentMonth is the current calendar month in the ledger's zone.
func (uc *LedgerUseCase) CurrentMonth() finance.Month {
	return finance.MonthOf(uc.now(), uc.loc)
}

// Load reads the orders and backfills commissions on legacy records. When the
// backfill fills anything the migrated collection is written back before it
// is returned.
func (uc *LedgerUseCase) Load(ctx context.Context) ([]domain.Order, error) {
	orders, err := uc.store.ReadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load orders: %w", err)
	}

	migrated, changed := finance.MigrateOrders(uc.policy, orders)
	if !changed {
		return migrated, nil
	}
	if err := uc.store.WriteOrders(ctx, migrated); err != nil {
		return nil, fmt.Errorf("could not save migrated orders: %w", err)
	}
	log.Printf("backfilled commission on stored orders (%d records)", len(migrated))
	return migrated, nil
}

type OrderInput struct {
	Platform       domain.Platform
	Reference      string
	Amount         decimal.Decimal
	PaymentMethod  domain.PaymentMethod
	DeliveryPerson domain.DeliveryPerson
}

// RegisterOrder validates the input, computes commission and net amount and
// appends the order to the stored collection.
func (uc *LedgerUseCase) RegisterOrder(ctx context.Context, in OrderInput) (domain.Order, error) {
	order, err := uc.newOrder(in)
	if err != nil {
		return domain.Order{}, err
	}

	orders, err := uc.store.ReadOrders(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("could not load orders: %w", err)
	}
	orders = append(orders, order)
	if err := uc.store.WriteOrders(ctx, orders); err != nil {
		return domain.Order{}, fmt.Errorf("could not save order: %w", err)
	}
	return order, nil
}

func (uc *LedgerUseCase) newOrder(in OrderInput) (domain.Order, error) {
	if !in.Platform.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, in.Platform)
	}
	if in.Amount.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		Platform:  in.Platform,
		Reference: strings.TrimSpace(in.Reference),
		Amount:    in.Amount,
		Date:      uc.now(),
	}

	if in.Platform == domain.PlatformWhatsApp {
		order.PaymentMethod = in.PaymentMethod
		if order.PaymentMethod == "" {
			order.PaymentMethod = domain.PaymentCash
		}
		if !order.PaymentMethod.Valid() {
			return domain.Order{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, in.PaymentMethod)
		}
		order.DeliveryPerson = in.DeliveryPerson
		if order.DeliveryPerson == "" {
			order.DeliveryPerson = domain.DeliveryNone
		}
		if !order.DeliveryPerson.Valid() {
			return domain.Order{}, fmt.Errorf("%w: unknown delivery person %q", ErrInvalidInput, in.DeliveryPerson)
		}
	}

	needsReference := in.Platform == domain.PlatformPedidosYa ||
		(in.Platform == domain.PlatformWhatsApp && order.PaymentMethod == domain.PaymentCard)
	if needsReference && order.Reference == "" {
		return domain.Order{}, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	commission := uc.policy.Commission(order.Platform, order.PaymentMethod, order.Amount)
	net := order.Amount.Sub(commission)
	order.Commission = &commission
	order.NetAmount = &net
	return order, nil
}

type ExpenseInput struct {
	Type    domain.ExpenseType
	Concept string
	Amount  decimal.Decimal
}

// RegisterExpense appends an expense to the stored collection.
func (uc *LedgerUseCase) RegisterExpense(ctx context.Context, in ExpenseInput) (domain.Expense, error) {
	if !in.Type.Valid() {
		return domain.Expense{}, fmt.Errorf("%w: unknown expense type %q", ErrInvalidInput, in.Type)
	}
	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return domain.Expense{}, fmt.Errorf("%w: concept is required", ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return domain.Expense{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	expense := domain.Expense{
		ID:      uuid.NewString(),
		Type:    in.Type,
		Concept: concept,
		Amount:  in.Amount,
		Date:    uc.now(),
	}

	expenses, err := uc.store.ReadExpenses(ctx)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("could not load expenses: %w", err)
	}
	expenses = append(expenses, expense)
	if err := uc.store.WriteExpenses(ctx, expenses); err != nil {
		return domain.Expense{}, fmt.Errorf("could not save expense: %w", err)
	}
	return expense, nil
}
