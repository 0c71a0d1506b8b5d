// backend-go/internal/repository/postgres/ledger_repository.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

type ledgerRepository struct {
	db *DB
}

func NewLedgerRepository(db *DB) *ledgerRepository {
	return &ledgerRepository{db: db}
}

const ledgerColumns = `
	id, item_id, workspace_id, previous_units, new_units,
	actor_name, source, reason, created_at`

func (r *ledgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return appendLedgerTx(ctx, tx, entry)
	})
}

func (r *ledgerRepository) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT` + ledgerColumns + ` FROM ledger_entries WHERE item_id = $1 ORDER BY created_at DESC LIMIT $2`

	var entries []domain.LedgerEntry
	if err := r.db.SelectContext(ctx, &entries, query, itemID, limit); err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return entries, nil
}

func appendLedgerTx(ctx context.Context, tx *sqlx.Tx, entry *domain.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := tx.ExecContext(
		ctx, query,
		entry.ID, entry.ItemID, entry.WorkspaceID, entry.PreviousUnits, entry.NewUnits,
		entry.ActorName, entry.Source, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return nil
}
