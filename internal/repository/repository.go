// backend-go/internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist in the
// workspace the caller asked about.
var ErrNotFound = errors.New("not found")

// ItemRepository reads and writes catalog items. Save is the commit boundary
// after any mutation of quantities or planning fields.
type ItemRepository interface {
	GetByID(ctx context.Context, workspaceID string, id uuid.UUID) (*domain.InventoryItem, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.InventoryItem, error)
	Save(ctx context.Context, item *domain.InventoryItem) error
}

// OrderRepository persists purchase order drafts and their lines.
type OrderRepository interface {
	CreateDrafts(ctx context.Context, drafts []*domain.PurchaseOrderDraft) error
	GetByID(ctx context.Context, workspaceID string, id uuid.UUID) (*domain.PurchaseOrderDraft, error)
	ListByWorkspace(ctx context.Context, workspaceID string, status *domain.OrderStatus) ([]*domain.PurchaseOrderDraft, error)
	Update(ctx context.Context, order *domain.PurchaseOrderDraft) error

	// ApplyReceiptOutcome persists the full outcome of a receipt batch in
	// one transaction: updated line/order state, the touched items'
	// quantity fields, and the ledger entries. Either everything lands or
	// nothing does.
	ApplyReceiptOutcome(ctx context.Context, order *domain.PurchaseOrderDraft, items []*domain.InventoryItem, entries []domain.LedgerEntry) error
}

// LedgerRepository appends to and reads the audit trail. Entries are
// append-only; there is no update or delete.
type LedgerRepository interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}
