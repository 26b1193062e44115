package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseType string

const (
	ExpenseSalary   ExpenseType = "salario"
	ExpenseSupplies ExpenseType = "insumos"
	ExpenseOther    ExpenseType = "otros"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseSalary, ExpenseSupplies, ExpenseOther:
		return true
	}
	return false
}

func (t ExpenseType) Label() string {
	switch t {
	case ExpenseSalary:
		return "Salario"
	case ExpenseSupplies:
		return "Insumos"
	case ExpenseOther:
		return "Otros"
	}
	return string(t)
}

type Expense struct {
	ID      string          `json:"id"`
	Type    ExpenseType     `json:"type"`
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
}

func (e Expense) OccurredAt() time.Time {
	return e.Date
}
