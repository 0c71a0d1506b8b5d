package purchase

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

func TestNormalizeSupplier(t *testing.T) {
	assert.Equal(t, "acme", NormalizeSupplier("Acme"))
	assert.Equal(t, "acme", NormalizeSupplier("  acme  "))
	assert.Equal(t, "unassigned", NormalizeSupplier(""))
	assert.Equal(t, "unassigned", NormalizeSupplier("   "))
}

func TestSortCandidates(t *testing.T) {
	candidates := []Candidate{
		{ItemName: "banana", SuggestedUnits: 5},
		{ItemName: "Apple", SuggestedUnits: 10},
		{ItemName: "cherry", SuggestedUnits: 10},
	}

	SortCandidates(candidates)

	assert.Equal(t, "Apple", candidates[0].ItemName)
	assert.Equal(t, "cherry", candidates[1].ItemName)
	assert.Equal(t, "banana", candidates[2].ItemName)
}

func TestBuildDrafts(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("groups case-insensitively and preserves line order", func(t *testing.T) {
		candidates := []Candidate{
			{ItemID: uuid.New(), ItemName: "Flour", Supplier: "Acme ", SuggestedUnits: 12},
			{ItemID: uuid.New(), ItemName: "Sugar", Supplier: "Baker Bros", SuggestedUnits: 6},
			{ItemID: uuid.New(), ItemName: "Salt", Supplier: "acme", SuggestedUnits: 3},
		}

		drafts := BuildDrafts("ws-1", "auto_replenish", "", candidates, now)
		require.Len(t, drafts, 2)

		acme := drafts[0]
		require.Len(t, acme.Lines, 2)
		assert.Equal(t, "Acme", acme.Lines[0].Supplier)
		assert.Equal(t, "Flour", acme.Lines[0].ItemName)
		assert.Equal(t, "Salt", acme.Lines[1].ItemName)

		assert.Equal(t, "Baker Bros", drafts[1].Lines[0].Supplier)
	})

	t.Run("blank supplier falls into the unassigned bucket", func(t *testing.T) {
		candidates := []Candidate{
			{ItemID: uuid.New(), ItemName: "Napkins", Supplier: "  ", SuggestedUnits: 4},
		}

		drafts := BuildDrafts("ws-1", "manual", "", candidates, now)
		require.Len(t, drafts, 1)
		assert.Equal(t, UnassignedSupplier, drafts[0].Lines[0].Supplier)
	})

	t.Run("drops non-positive quantities", func(t *testing.T) {
		candidates := []Candidate{
			{ItemID: uuid.New(), ItemName: "Void", Supplier: "Acme", SuggestedUnits: 0},
			{ItemID: uuid.New(), ItemName: "Gone", Supplier: "Acme", SuggestedUnits: -3},
		}

		assert.Empty(t, BuildDrafts("ws-1", "manual", "", candidates, now))
	})

	t.Run("every positive candidate lands in exactly one draft", func(t *testing.T) {
		candidates := []Candidate{
			{ItemID: uuid.New(), ItemName: "a", Supplier: "S1", SuggestedUnits: 1},
			{ItemID: uuid.New(), ItemName: "b", Supplier: "S2", SuggestedUnits: 2},
			{ItemID: uuid.New(), ItemName: "c", Supplier: "s1", SuggestedUnits: 3},
			{ItemID: uuid.New(), ItemName: "d", Supplier: "", SuggestedUnits: 0},
		}

		drafts := BuildDrafts("ws-1", "manual", "", candidates, now)

		seen := make(map[uuid.UUID]int)
		for _, d := range drafts {
			for _, line := range d.Lines {
				seen[line.ItemID]++
			}
		}

		require.Len(t, seen, 3)
		for _, c := range candidates[:3] {
			assert.Equal(t, 1, seen[c.ItemID])
		}
	})

	t.Run("draft metadata", func(t *testing.T) {
		candidates := []Candidate{
			{ItemID: uuid.New(), ItemName: "Flour", Supplier: "Acme", SuggestedUnits: 12},
		}

		drafts := BuildDrafts("ws-7", "auto_replenish", "nightly cycle", candidates, now)
		require.Len(t, drafts, 1)

		d := drafts[0]
		assert.Equal(t, domain.OrderStatusDraft, d.Status)
		assert.Equal(t, "ws-7", d.WorkspaceID)
		assert.Equal(t, "auto_replenish", d.Source)
		assert.Equal(t, "nightly cycle", d.Notes)
		assert.Equal(t, now, d.CreatedAt)
		assert.Equal(t, d.ID, d.Lines[0].OrderID)
	})
}

func TestNewReference(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	ref := NewReference(now)
	require.True(t, strings.HasPrefix(ref, "PO-20260829-"), ref)

	suffix := strings.TrimPrefix(ref, "PO-20260829-")
	assert.Len(t, suffix, 8)
	assert.Equal(t, strings.ToUpper(suffix), suffix)

	assert.NotEqual(t, ref, NewReference(now))
}
