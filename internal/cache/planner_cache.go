package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/config"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

const (
	plannerSummaryKeyPrefix = "planner:summary"
	plannerScanBatchSize    = 100
)

// PlannerCache caches the per-workspace planner summary. Any mutation that
// can move an item between urgency tiers must invalidate the workspace.
type PlannerCache interface {
	GetSummary(ctx context.Context, workspaceID string) (*domain.PlannerSummary, bool, error)
	SetSummary(ctx context.Context, summary *domain.PlannerSummary) error
	Invalidate(ctx context.Context, workspaceID string) error
	InvalidateAll(ctx context.Context) error
}

type redisPlannerCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopPlannerCache struct{}

func NewPlannerCache(cfg config.CacheConfig) (PlannerCache, error) {
	if !cfg.Enabled {
		return &noopPlannerCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisPlannerCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopPlannerCache() PlannerCache {
	return &noopPlannerCache{}
}

func (c *redisPlannerCache) GetSummary(ctx context.Context, workspaceID string) (*domain.PlannerSummary, bool, error) {
	key := buildPlannerSummaryKey(workspaceID)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summary domain.PlannerSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, false, fmt.Errorf("decode planner summary cache: %w", err)
	}

	return &summary, true, nil
}

func (c *redisPlannerCache) SetSummary(ctx context.Context, summary *domain.PlannerSummary) error {
	key := buildPlannerSummaryKey(summary.WorkspaceID)
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode planner summary cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisPlannerCache) Invalidate(ctx context.Context, workspaceID string) error {
	return c.client.Del(ctx, buildPlannerSummaryKey(workspaceID)).Err()
}

func (c *redisPlannerCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, plannerSummaryKeyPrefix, plannerScanBatchSize)
}

func (n *noopPlannerCache) GetSummary(ctx context.Context, workspaceID string) (*domain.PlannerSummary, bool, error) {
	return nil, false, nil
}

func (n *noopPlannerCache) SetSummary(ctx context.Context, summary *domain.PlannerSummary) error {
	return nil
}

func (n *noopPlannerCache) Invalidate(ctx context.Context, workspaceID string) error {
	return nil
}

func (n *noopPlannerCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildPlannerSummaryKey(workspaceID string) string {
	return fmt.Sprintf("%s:%s", plannerSummaryKeyPrefix, workspaceID)
}
