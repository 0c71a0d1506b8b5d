package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository"
)

// In-memory repositories backing the service tests. GetByID hands out copies
// so mutations only stick through Save or ApplyReceiptOutcome, matching how
// the real store behaves.

type fakeItemRepo struct {
	items map[uuid.UUID]*domain.InventoryItem
}

func newFakeItemRepo(items ...*domain.InventoryItem) *fakeItemRepo {
	repo := &fakeItemRepo{items: make(map[uuid.UUID]*domain.InventoryItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeItemRepo) GetByID(_ context.Context, workspaceID string, id uuid.UUID) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok || item.WorkspaceID != workspaceID {
		return nil, repository.ErrNotFound
	}
	clone := *item
	clone.DailyDemandSamples = append([]float64(nil), item.DailyDemandSamples...)
	return &clone, nil
}

func (r *fakeItemRepo) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for id, item := range r.items {
		if item.WorkspaceID != workspaceID {
			continue
		}
		clone, _ := r.GetByID(ctx, workspaceID, id)
		out = append(out, clone)
	}
	return out, nil
}

func (r *fakeItemRepo) Save(_ context.Context, item *domain.InventoryItem) error {
	clone := *item
	clone.DailyDemandSamples = append([]float64(nil), item.DailyDemandSamples...)
	r.items[item.ID] = &clone
	return nil
}

type receiptOutcome struct {
	order   *domain.PurchaseOrderDraft
	items   []*domain.InventoryItem
	entries []domain.LedgerEntry
}

type fakeOrderRepo struct {
	orders   map[uuid.UUID]*domain.PurchaseOrderDraft
	itemRepo *fakeItemRepo
	ledger   *fakeLedgerRepo

	outcomes []receiptOutcome
}

func newFakeOrderRepo(itemRepo *fakeItemRepo, ledger *fakeLedgerRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*domain.PurchaseOrderDraft),
		itemRepo: itemRepo,
		ledger:   ledger,
	}
}

func (r *fakeOrderRepo) CreateDrafts(_ context.Context, drafts []*domain.PurchaseOrderDraft) error {
	for _, d := range drafts {
		r.orders[d.ID] = d
	}
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, workspaceID string, id uuid.UUID) (*domain.PurchaseOrderDraft, error) {
	order, ok := r.orders[id]
	if !ok || order.WorkspaceID != workspaceID {
		return nil, repository.ErrNotFound
	}
	clone := *order
	clone.Lines = append([]domain.PurchaseOrderLine(nil), order.Lines...)
	return &clone, nil
}

func (r *fakeOrderRepo) ListByWorkspace(_ context.Context, workspaceID string, status *domain.OrderStatus) ([]*domain.PurchaseOrderDraft, error) {
	var out []*domain.PurchaseOrderDraft
	for _, order := range r.orders {
		if order.WorkspaceID != workspaceID {
			continue
		}
		if status != nil && order.Status != *status {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *domain.PurchaseOrderDraft) error {
	if _, ok := r.orders[order.ID]; !ok {
		return repository.ErrNotFound
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) ApplyReceiptOutcome(ctx context.Context, order *domain.PurchaseOrderDraft, items []*domain.InventoryItem, entries []domain.LedgerEntry) error {
	if _, ok := r.orders[order.ID]; !ok {
		return repository.ErrNotFound
	}

	r.outcomes = append(r.outcomes, receiptOutcome{order: order, items: items, entries: entries})
	r.orders[order.ID] = order
	for _, item := range items {
		if err := r.itemRepo.Save(ctx, item); err != nil {
			return err
		}
	}
	for i := range entries {
		if err := r.ledger.Append(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeLedgerRepo struct {
	entries []domain.LedgerEntry
}

func (r *fakeLedgerRepo) Append(_ context.Context, entry *domain.LedgerEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeLedgerRepo) ListByItem(_ context.Context, itemID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].ItemID != itemID {
			continue
		}
		out = append(out, r.entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
