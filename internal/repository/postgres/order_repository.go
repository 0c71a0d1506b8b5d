// backend-go/internal/repository/postgres/order_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository"
)

type orderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *orderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `
	id, reference, workspace_id, status, source, notes,
	created_at, updated_at, sent_at, received_at, last_received_at`

const lineColumns = `
	id, order_id, item_id, item_name,
	suggested_units, reorder_point, on_hand_units, lead_time_days,
	forecast_daily_demand, supplier, supplier_sku,
	minimum_order_quantity, reorder_case_pack, lead_time_variance_days,
	confidence, received_units`

func (r *orderRepository) CreateDrafts(ctx context.Context, drafts []*domain.PurchaseOrderDraft) error {
	if len(drafts) == 0 {
		return nil
	}

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		orderQuery := `
			INSERT INTO purchase_orders (` + orderColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		lineQuery := `
			INSERT INTO purchase_order_lines (` + lineColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`

		for _, draft := range drafts {
			_, err := tx.ExecContext(
				ctx, orderQuery,
				draft.ID, draft.Reference, draft.WorkspaceID, draft.Status, draft.Source, draft.Notes,
				draft.CreatedAt, draft.UpdatedAt, draft.SentAt, draft.ReceivedAt, draft.LastReceivedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert draft %s: %w", draft.Reference, err)
			}

			for i := range draft.Lines {
				line := &draft.Lines[i]
				_, err := tx.ExecContext(
					ctx, lineQuery,
					line.ID, line.OrderID, line.ItemID, line.ItemName,
					line.SuggestedUnits, line.ReorderPoint, line.OnHandUnits, line.LeadTimeDays,
					line.ForecastDailyDemand, line.Supplier, line.SupplierSKU,
					line.MinimumOrderQuantity, line.ReorderCasePack, line.LeadTimeVarianceDays,
					line.Confidence, line.ReceivedUnits,
				)
				if err != nil {
					return fmt.Errorf("failed to insert line for item %s: %w", line.ItemName, err)
				}
			}
		}

		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, workspaceID string, id uuid.UUID) (*domain.PurchaseOrderDraft, error) {
	query := `SELECT` + orderColumns + ` FROM purchase_orders WHERE workspace_id = $1 AND id = $2`

	var order domain.PurchaseOrderDraft
	if err := r.db.GetContext(ctx, &order, query, workspaceID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := r.loadLines(ctx, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) ListByWorkspace(ctx context.Context, workspaceID string, status *domain.OrderStatus) ([]*domain.PurchaseOrderDraft, error) {
	query := `SELECT` + orderColumns + ` FROM purchase_orders WHERE workspace_id = $1`
	args := []interface{}{workspaceID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	var orders []domain.PurchaseOrderDraft
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]*domain.PurchaseOrderDraft, 0, len(orders))
	for i := range orders {
		if err := r.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
		result = append(result, &orders[i])
	}

	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.PurchaseOrderDraft) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return updateOrderTx(ctx, tx, order)
	})
}

func (r *orderRepository) ApplyReceiptOutcome(ctx context.Context, order *domain.PurchaseOrderDraft, items []*domain.InventoryItem, entries []domain.LedgerEntry) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := updateOrderTx(ctx, tx, order); err != nil {
			return err
		}

		for _, item := range items {
			if err := saveItemTx(ctx, tx, item); err != nil {
				return err
			}
		}

		for i := range entries {
			if err := appendLedgerTx(ctx, tx, &entries[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *orderRepository) loadLines(ctx context.Context, order *domain.PurchaseOrderDraft) error {
	query := `SELECT` + lineColumns + ` FROM purchase_order_lines WHERE order_id = $1 ORDER BY suggested_units DESC, lower(item_name)`

	if err := r.db.SelectContext(ctx, &order.Lines, query, order.ID); err != nil {
		return fmt.Errorf("failed to load order lines: %w", err)
	}

	return nil
}

func updateOrderTx(ctx context.Context, tx *sqlx.Tx, order *domain.PurchaseOrderDraft) error {
	query := `
		UPDATE purchase_orders
		SET status = $1, notes = $2, updated_at = $3,
			sent_at = $4, received_at = $5, last_received_at = $6
		WHERE id = $7
	`

	result, err := tx.ExecContext(
		ctx, query,
		order.Status, order.Notes, order.UpdatedAt,
		order.SentAt, order.ReceivedAt, order.LastReceivedAt,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return repository.ErrNotFound
	}

	lineQuery := `UPDATE purchase_order_lines SET received_units = $1 WHERE id = $2`
	for i := range order.Lines {
		line := &order.Lines[i]
		if _, err := tx.ExecContext(ctx, lineQuery, line.ReceivedUnits, line.ID); err != nil {
			return fmt.Errorf("failed to update order line: %w", err)
		}
	}

	return nil
}
