// backend-go/internal/service/order_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/cache"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/planning"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/purchase"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository"
)

// SourceAutoReplenish tags drafts created by the automated velocity flow.
const SourceAutoReplenish = "auto_replenish"

// ReceivingSource tags ledger entries written during purchase receiving.
const ReceivingSource = "purchase_receiving"

// OrderService owns the purchase order lifecycle: building supplier drafts
// from the blended velocity forecast and applying receipts against sent
// orders, cascading received units into on-hand stock and the audit ledger.
type OrderService struct {
	items  repository.ItemRepository
	orders repository.OrderRepository
	ledger repository.LedgerRepository
	cache  cache.PlannerCache
}

func NewOrderService(items repository.ItemRepository, orders repository.OrderRepository, ledger repository.LedgerRepository, cacheImpl cache.PlannerCache) *OrderService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlannerCache()
	}
	return &OrderService{items: items, orders: orders, ledger: ledger, cache: cacheImpl}
}

// AutoDraft re-evaluates the workspace with the blended velocity forecast,
// applies supplier constraints, and persists one draft order per supplier
// for everything the automation policy flags. An empty result means nothing
// qualified, which is the common case.
func (s *OrderService) AutoDraft(ctx context.Context, workspaceID, source, notes string) ([]*domain.PurchaseOrderDraft, error) {
	if source == "" {
		source = SourceAutoReplenish
	}

	items, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	var candidates []purchase.Candidate
	for _, item := range items {
		velocity := planning.BlendedVelocity(item.AverageDailyUsage, item.DailyDemandSamples)
		onHand := planning.TotalUnits(item)
		metrics := planning.Calculate(velocity, item.LeadTimeDays, item.SafetyStockUnits, onHand)
		if !planning.AutoDraftCandidate(metrics) {
			continue
		}

		adjusted := planning.AdjustOrderQuantity(metrics.SuggestedUnits, item.MinimumOrderQuantity, item.ReorderCasePack)
		if adjusted <= 0 {
			continue
		}

		moving, _ := planning.MovingAverage(item.DailyDemandSamples)
		candidates = append(candidates, purchase.Candidate{
			ItemID:               item.ID,
			ItemName:             item.Name,
			Supplier:             item.PreferredSupplier,
			SupplierSKU:          item.SupplierSKU,
			SuggestedUnits:       adjusted,
			ReorderPoint:         metrics.ReorderPoint,
			OnHandUnits:          onHand,
			LeadTimeDays:         item.LeadTimeDays,
			ForecastDailyDemand:  velocity,
			MinimumOrderQuantity: item.MinimumOrderQuantity,
			ReorderCasePack:      item.ReorderCasePack,
			LeadTimeVarianceDays: item.LeadTimeVarianceDays,
			Confidence:           planning.ScoreConfidence(len(item.DailyDemandSamples), moving, item.AverageDailyUsage),
		})
	}

	purchase.SortCandidates(candidates)
	drafts := purchase.BuildDrafts(workspaceID, source, notes, candidates, time.Now())
	if len(drafts) == 0 {
		return drafts, nil
	}

	if err := s.orders.CreateDrafts(ctx, drafts); err != nil {
		return nil, fmt.Errorf("failed to persist drafts: %w", err)
	}

	s.invalidateSummary(ctx, workspaceID)

	log.Info().
		Str("workspace", workspaceID).
		Int("drafts", len(drafts)).
		Int("candidates", len(candidates)).
		Msg("auto-draft cycle complete")

	return drafts, nil
}

// Get returns one order with its lines.
func (s *OrderService) Get(ctx context.Context, workspaceID string, orderID uuid.UUID) (*domain.PurchaseOrderDraft, error) {
	order, err := s.orders.GetByID(ctx, workspaceID, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, purchase.ErrOrderNotFound
	}
	return order, err
}

// List returns the workspace's orders, optionally filtered by status.
func (s *OrderService) List(ctx context.Context, workspaceID string, status *domain.OrderStatus) ([]*domain.PurchaseOrderDraft, error) {
	return s.orders.ListByWorkspace(ctx, workspaceID, status)
}

// MarkSent advances a draft to Sent, making it receivable.
func (s *OrderService) MarkSent(ctx context.Context, workspaceID string, orderID uuid.UUID) (*domain.PurchaseOrderDraft, error) {
	order, err := s.Get(ctx, workspaceID, orderID)
	if err != nil {
		return nil, err
	}

	if err := purchase.MarkSent(order, time.Now()); err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// ApplyReceipts applies a receipt batch to an order and cascades the
// received units into on-hand stock plus one ledger entry per touched item.
// The order update, item updates, and ledger appends persist in one
// transaction: either all land or none do.
func (s *OrderService) ApplyReceipts(ctx context.Context, workspaceID string, orderID uuid.UUID, receivedByLine map[uuid.UUID]int, actor string, receivedAt time.Time) (*domain.PurchaseOrderDraft, error) {
	order, err := s.Get(ctx, workspaceID, orderID)
	if err != nil {
		return nil, err
	}

	result, err := purchase.ApplyReceipts(order, receivedByLine, receivedAt)
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return order, nil
	}

	touched := make([]*domain.InventoryItem, 0, len(result.AppliedByItem))
	entries := make([]domain.LedgerEntry, 0, len(result.AppliedByItem))
	for itemID, units := range result.AppliedByItem {
		item, err := s.items.GetByID(ctx, workspaceID, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// The line outlived its item; the order still advances.
				log.Warn().Str("item_id", itemID.String()).Msg("received against missing item")
				continue
			}
			return nil, fmt.Errorf("failed to load received item: %w", err)
		}

		previous := planning.TotalUnits(item)
		planning.AddUnits(item, units)
		item.UpdatedAt = receivedAt

		touched = append(touched, item)
		entries = append(entries, domain.LedgerEntry{
			ID:            uuid.New(),
			ItemID:        item.ID,
			WorkspaceID:   workspaceID,
			PreviousUnits: previous,
			NewUnits:      planning.TotalUnits(item),
			ActorName:     actor,
			Source:        ReceivingSource,
			Reason:        order.Reference,
			CreatedAt:     receivedAt,
		})
	}

	if err := s.orders.ApplyReceiptOutcome(ctx, order, touched, entries); err != nil {
		return nil, fmt.Errorf("failed to persist receipt outcome: %w", err)
	}

	s.invalidateSummary(ctx, workspaceID)

	return order, nil
}

// ItemLedger returns the most recent audit entries for an item.
func (s *OrderService) ItemLedger(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	return s.ledger.ListByItem(ctx, itemID, limit)
}

func (s *OrderService) invalidateSummary(ctx context.Context, workspaceID string) {
	if err := s.cache.Invalidate(ctx, workspaceID); err != nil {
		log.Warn().Err(err).Str("workspace", workspaceID).Msg("orders: cache invalidate failed")
	}
}
