package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQLBackend keeps each collection as one row of the collections table.
type SQLBackend struct {
	db *sqlx.DB
}

// NewSQLBackend constructs a backend over a migrated database.
func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) ReadCollection(ctx context.Context, name Collection) ([]byte, error) {
	var payload string
	err := b.db.GetContext(ctx, &payload, b.db.Rebind(`SELECT payload FROM collections WHERE name = ?`), string(name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

// WriteCollection replaces the stored payload in a single statement.
func (b *SQLBackend) WriteCollection(ctx context.Context, name Collection, payload []byte) error {
	query := b.db.Rebind(`INSERT INTO collections (name, payload) VALUES (?, ?)
        ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`)
	_, err := b.db.ExecContext(ctx, query, string(name), string(payload))
	return err
}
