package main

import (
	"context"
	"log"
	"net/http"

	"orderdesk/m/internal/api"
	"orderdesk/m/internal/config"
	"orderdesk/m/internal/database"
	"orderdesk/m/internal/migrations"
	"orderdesk/m/internal/seed"
	"orderdesk/m/internal/store"
	"orderdesk/m/internal/usecase"
)

func main() {
	cfg := config.Load()

	var backend store.Backend
	if cfg.StoreDriver == "memory" {
		log.Printf("using in-memory record store, data is lost on exit")
		backend = store.NewMemoryBackend()
	} else {
		db, err := database.Connect(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		defer db.Close()

		if err := migrations.Run(db); err != nil {
			log.Fatalf("database error: %v", err)
		}
		backend = store.NewSQLBackend(db)
	}

	repo := store.New(backend)
	if cfg.LegacyImport != "" {
		orders, expenses := seed.LoadLegacy(context.Background(), repo, cfg.LegacyImport)
		log.Printf("legacy import: %d orders, %d expenses", orders, expenses)
	}

	ledger := usecase.NewLedgerUseCase(repo, cfg.Commission, cfg.Location, nil)
	if _, err := ledger.Load(context.Background()); err != nil {
		log.Fatalf("unable to load orders: %v", err)
	}

	handler := api.New(ledger)

	log.Printf("orderdesk server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
