// backend-go/internal/repository/postgres/item_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository"
)

type itemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) *itemRepository {
	return &itemRepository{db: db}
}

// itemRow mirrors the items table; the sample window is a float8[] column.
type itemRow struct {
	domain.InventoryItem
	Samples pq.Float64Array `db:"daily_demand_samples"`
}

func (r itemRow) toDomain() *domain.InventoryItem {
	item := r.InventoryItem
	item.DailyDemandSamples = []float64(r.Samples)
	return &item
}

const itemColumns = `
	id, workspace_id, name,
	quantity, units_per_case, loose_units, eaches_per_unit, loose_eaches,
	is_liquid, gallon_fraction,
	average_daily_usage, daily_demand_samples,
	lead_time_days, lead_time_variance_days, safety_stock_units,
	minimum_order_quantity, reorder_case_pack, preferred_supplier, supplier_sku,
	created_at, updated_at`

func (r *itemRepository) GetByID(ctx context.Context, workspaceID string, id uuid.UUID) (*domain.InventoryItem, error) {
	query := `SELECT` + itemColumns + ` FROM items WHERE workspace_id = $1 AND id = $2`

	var row itemRow
	if err := r.db.GetContext(ctx, &row, query, workspaceID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return row.toDomain(), nil
}

func (r *itemRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.InventoryItem, error) {
	query := `SELECT` + itemColumns + ` FROM items WHERE workspace_id = $1 ORDER BY name`

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}

	return items, nil
}

func (r *itemRepository) Save(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return saveItemTx(ctx, tx, item)
	})
}

// saveItemTx upserts one item inside an existing transaction so receipt
// application can reuse it.
func saveItemTx(ctx context.Context, tx *sqlx.Tx, item *domain.InventoryItem) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			quantity = EXCLUDED.quantity,
			units_per_case = EXCLUDED.units_per_case,
			loose_units = EXCLUDED.loose_units,
			eaches_per_unit = EXCLUDED.eaches_per_unit,
			loose_eaches = EXCLUDED.loose_eaches,
			is_liquid = EXCLUDED.is_liquid,
			gallon_fraction = EXCLUDED.gallon_fraction,
			average_daily_usage = EXCLUDED.average_daily_usage,
			daily_demand_samples = EXCLUDED.daily_demand_samples,
			lead_time_days = EXCLUDED.lead_time_days,
			lead_time_variance_days = EXCLUDED.lead_time_variance_days,
			safety_stock_units = EXCLUDED.safety_stock_units,
			minimum_order_quantity = EXCLUDED.minimum_order_quantity,
			reorder_case_pack = EXCLUDED.reorder_case_pack,
			preferred_supplier = EXCLUDED.preferred_supplier,
			supplier_sku = EXCLUDED.supplier_sku,
			updated_at = EXCLUDED.updated_at
	`

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := tx.ExecContext(
		ctx, query,
		item.ID, item.WorkspaceID, item.Name,
		item.Quantity, item.UnitsPerCase, item.LooseUnits, item.EachesPerUnit, item.LooseEaches,
		item.IsLiquid, item.GallonFraction,
		item.AverageDailyUsage, pq.Float64Array(item.DailyDemandSamples),
		item.LeadTimeDays, item.LeadTimeVarianceDays, item.SafetyStockUnits,
		item.MinimumOrderQuantity, item.ReorderCasePack, item.PreferredSupplier, item.SupplierSKU,
		createdAt, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}
