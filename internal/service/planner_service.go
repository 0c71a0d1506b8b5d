// backend-go/internal/service/planner_service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/cache"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/planning"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository"
)

// PlannerService computes the human-facing replenishment picture: per-item
// suggestions with urgency tiers, and the workspace summary dashboard.
type PlannerService struct {
	items repository.ItemRepository
	cache cache.PlannerCache
}

func NewPlannerService(items repository.ItemRepository, cacheImpl cache.PlannerCache) *PlannerService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlannerCache()
	}
	return &PlannerService{items: items, cache: cacheImpl}
}

// Suggestions computes the planner list for a workspace using the planning
// forecast (max of baseline and moving average). Largest suggested orders
// come first; ties break on item name.
func (s *PlannerService) Suggestions(ctx context.Context, workspaceID string) ([]domain.Suggestion, error) {
	items, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	suggestions := make([]domain.Suggestion, 0, len(items))
	for _, item := range items {
		suggestions = append(suggestions, plannerSuggestion(item))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].SuggestedUnits != suggestions[j].SuggestedUnits {
			return suggestions[i].SuggestedUnits > suggestions[j].SuggestedUnits
		}
		return strings.ToLower(suggestions[i].ItemName) < strings.ToLower(suggestions[j].ItemName)
	})

	return suggestions, nil
}

// Summary counts items per urgency tier, served from cache when fresh.
func (s *PlannerService) Summary(ctx context.Context, workspaceID string) (*domain.PlannerSummary, error) {
	if summary, ok, err := s.cache.GetSummary(ctx, workspaceID); err == nil && ok {
		return summary, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("planner: cache get summary failed")
	}

	suggestions, err := s.Suggestions(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	summary := &domain.PlannerSummary{
		WorkspaceID: workspaceID,
		TotalItems:  len(suggestions),
		GeneratedAt: time.Now(),
	}
	for _, sg := range suggestions {
		switch sg.Status {
		case domain.ItemStatusUrgent:
			summary.Urgent++
		case domain.ItemStatusDueSoon:
			summary.DueSoon++
		case domain.ItemStatusHealthy:
			summary.Healthy++
		default:
			summary.NeedsData++
		}
	}

	if err := s.cache.SetSummary(ctx, summary); err != nil {
		log.Warn().Err(err).Msg("planner: cache set summary failed")
	}

	return summary, nil
}

// RecordUsage appends one day's usage sample to an item's rolling window and
// persists it. The workspace summary cache is invalidated since the item may
// have changed tier.
func (s *PlannerService) RecordUsage(ctx context.Context, workspaceID string, itemID uuid.UUID, usage float64) (*domain.InventoryItem, error) {
	item, err := s.items.GetByID(ctx, workspaceID, itemID)
	if err != nil {
		return nil, err
	}

	planning.AppendSample(item, usage)
	item.UpdatedAt = time.Now()

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	if err := s.cache.Invalidate(ctx, workspaceID); err != nil {
		log.Warn().Err(err).Str("workspace", workspaceID).Msg("planner: cache invalidate failed")
	}

	return item, nil
}

// ListItems returns the workspace catalog.
func (s *PlannerService) ListItems(ctx context.Context, workspaceID string) ([]*domain.InventoryItem, error) {
	return s.items.ListByWorkspace(ctx, workspaceID)
}

// plannerSuggestion builds one item's suggestion from the planning forecast.
func plannerSuggestion(item *domain.InventoryItem) domain.Suggestion {
	forecast := planning.PlanningForecast(item.AverageDailyUsage, item.DailyDemandSamples)
	onHand := planning.TotalUnits(item)
	metrics := planning.Calculate(forecast, item.LeadTimeDays, item.SafetyStockUnits, onHand)
	moving, _ := planning.MovingAverage(item.DailyDemandSamples)

	return domain.Suggestion{
		ItemID:              item.ID,
		ItemName:            item.Name,
		Supplier:            item.PreferredSupplier,
		SupplierSKU:         item.SupplierSKU,
		OnHandUnits:         onHand,
		ForecastDailyDemand: forecast,
		ReorderPoint:        metrics.ReorderPoint,
		SuggestedUnits:      metrics.SuggestedUnits,
		AdjustedUnits:       planning.AdjustOrderQuantity(metrics.SuggestedUnits, item.MinimumOrderQuantity, item.ReorderCasePack),
		DaysOfSupply:        metrics.DaysOfSupply,
		LeadTimeDays:        item.LeadTimeDays,
		Status:              planning.ClassifyPlanner(metrics),
		Confidence:          planning.ScoreConfidence(len(item.DailyDemandSamples), moving, item.AverageDailyUsage),
		SampleCount:         len(item.DailyDemandSamples),
	}
}
