package automation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

type stubDrafter struct {
	mu     sync.Mutex
	calls  []string
	drafts map[string]int
	fail   map[string]error
}

func (d *stubDrafter) AutoDraft(_ context.Context, workspaceID, _, _ string) ([]*domain.PurchaseOrderDraft, error) {
	d.mu.Lock()
	d.calls = append(d.calls, workspaceID)
	d.mu.Unlock()

	if err := d.fail[workspaceID]; err != nil {
		return nil, err
	}

	drafts := make([]*domain.PurchaseOrderDraft, d.drafts[workspaceID])
	return drafts, nil
}

func TestRunOnce(t *testing.T) {
	t.Run("covers every workspace", func(t *testing.T) {
		drafter := &stubDrafter{drafts: map[string]int{"ws-1": 2, "ws-2": 0, "ws-3": 1}}
		runner := NewRunner(drafter, []string{"ws-1", "ws-2", "ws-3"}, 2)

		results := runner.RunOnce(context.Background())
		require.Len(t, results, 3)

		assert.Equal(t, "ws-1", results[0].WorkspaceID)
		assert.Equal(t, 2, results[0].Drafts)
		assert.Zero(t, results[1].Drafts)
		assert.Equal(t, 1, results[2].Drafts)
		assert.Len(t, drafter.calls, 3)
	})

	t.Run("one failure does not abort the rest", func(t *testing.T) {
		boom := errors.New("db down")
		drafter := &stubDrafter{
			drafts: map[string]int{"ws-2": 3},
			fail:   map[string]error{"ws-1": boom},
		}
		runner := NewRunner(drafter, []string{"ws-1", "ws-2"}, 1)

		results := runner.RunOnce(context.Background())
		require.Len(t, results, 2)

		assert.ErrorIs(t, results[0].Err, boom)
		assert.NoError(t, results[1].Err)
		assert.Equal(t, 3, results[1].Drafts)
	})

	t.Run("no workspaces is a no-op", func(t *testing.T) {
		runner := NewRunner(&stubDrafter{}, nil, 0)
		assert.Empty(t, runner.RunOnce(context.Background()))
	})
}
