package seed

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"orderdesk/m/domain"
	"orderdesk/m/internal/usecase"
)

// legacyDump is the browser storage export: one key per collection.
type legacyDump struct {
	Orders   []domain.Order   `json:"orders"`
	Expenses []domain.Expense `json:"expenses"`
}

// LoadLegacy imports a browser storage export into the record store. A
// collection is only imported while it is still empty, so running it again is
// harmless. Commission backfill happens later, on the first load.
func LoadLegacy(ctx context.Context, repo usecase.RecordStore, path string) (orders, expenses int) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("unable to load legacy export %s: %v", path, err)
		return 0, 0
	}

	var dump legacyDump
	if err := json.Unmarshal(data, &dump); err != nil {
		log.Printf("unable to parse legacy export %s: %v", path, err)
		return 0, 0
	}

	if len(dump.Orders) > 0 {
		existing, err := repo.ReadOrders(ctx)
		switch {
		case err != nil:
			log.Printf("unable to read orders before import: %v", err)
		case len(existing) > 0:
			log.Printf("orders already present, skipping legacy import")
		default:
			if err := repo.WriteOrders(ctx, dump.Orders); err != nil {
				log.Printf("unable to import legacy orders: %v", err)
			} else {
				orders = len(dump.Orders)
			}
		}
	}

	if len(dump.Expenses) > 0 {
		existing, err := repo.ReadExpenses(ctx)
		switch {
		case err != nil:
			log.Printf("unable to read expenses before import: %v", err)
		case len(existing) > 0:
			log.Printf("expenses already present, skipping legacy import")
		default:
			if err := repo.WriteExpenses(ctx, dump.Expenses); err != nil {
				log.Printf("unable to import legacy expenses: %v", err)
			} else {
				expenses = len(dump.Expenses)
			}
		}
	}

	log.Printf("imported %d legacy orders and %d legacy expenses", orders, expenses)
	return orders, expenses
}
