// Package automation drives the periodic re-evaluation cycle. The engine
// itself exposes no timers; this runner is invoked by the CLI or an external
// scheduler and fans out across workspaces with bounded concurrency.
package automation

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

// Drafter is the slice of the order service the runner needs.
type Drafter interface {
	AutoDraft(ctx context.Context, workspaceID, source, notes string) ([]*domain.PurchaseOrderDraft, error)
}

// CycleResult summarizes one workspace's pass.
type CycleResult struct {
	WorkspaceID string
	Drafts      int
	Duration    time.Duration
	Err         error
}

// Runner re-evaluates a fixed set of workspaces.
type Runner struct {
	drafter        Drafter
	workspaces     []string
	maxConcurrency int
}

func NewRunner(drafter Drafter, workspaces []string, maxConcurrency int) *Runner {
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}
	return &Runner{
		drafter:        drafter,
		workspaces:     workspaces,
		maxConcurrency: maxConcurrency,
	}
}

// RunOnce runs one automation cycle over every configured workspace. A
// workspace failure is recorded in its result and does not abort the others.
func (r *Runner) RunOnce(ctx context.Context) []CycleResult {
	results := make([]CycleResult, len(r.workspaces))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrency)

	for i, workspaceID := range r.workspaces {
		g.Go(func() error {
			start := time.Now()
			drafts, err := r.drafter.AutoDraft(ctx, workspaceID, "", "")

			results[i] = CycleResult{
				WorkspaceID: workspaceID,
				Drafts:      len(drafts),
				Duration:    time.Since(start),
				Err:         err,
			}

			if err != nil {
				log.Error().Err(err).Str("workspace", workspaceID).Msg("automation cycle failed")
			} else {
				log.Info().
					Str("workspace", workspaceID).
					Int("drafts", len(drafts)).
					Dur("took", time.Since(start)).
					Msg("automation cycle done")
			}

			return nil
		})
	}

	_ = g.Wait()
	return results
}
