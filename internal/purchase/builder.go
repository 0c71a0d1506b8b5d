// Package purchase owns purchase order construction and the receipt
// lifecycle: grouping suggestions into supplier drafts, and advancing orders
// through Draft -> Sent -> Partial -> Received as quantities arrive.
package purchase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

// UnassignedSupplier is the bucket for candidates with no supplier set.
const UnassignedSupplier = "Unassigned"

// Candidate is one item's quantity-adjusted suggestion offered to the draft
// builder. SuggestedUnits must already include MOQ/case-pack adjustment.
type Candidate struct {
	ItemID               uuid.UUID
	ItemName             string
	Supplier             string
	SupplierSKU          string
	SuggestedUnits       int
	ReorderPoint         int
	OnHandUnits          int
	LeadTimeDays         int
	ForecastDailyDemand  float64
	MinimumOrderQuantity int
	ReorderCasePack      int
	LeadTimeVarianceDays int
	Confidence           domain.Confidence
}

// NormalizeSupplier collapses a raw supplier name to its grouping key:
// trimmed, lowercased, blank mapped to the reserved unassigned bucket.
func NormalizeSupplier(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return strings.ToLower(UnassignedSupplier)
	}
	return strings.ToLower(trimmed)
}

// SortCandidates orders candidates the way callers preview them: largest
// suggested quantity first, ties broken by item name, case-insensitive.
func SortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].SuggestedUnits != candidates[j].SuggestedUnits {
			return candidates[i].SuggestedUnits > candidates[j].SuggestedUnits
		}
		return strings.ToLower(candidates[i].ItemName) < strings.ToLower(candidates[j].ItemName)
	})
}

// BuildDrafts groups qualifying candidates by normalized supplier and
// materializes one draft order per supplier. Candidates without a positive
// suggested quantity are dropped; an empty result is a normal outcome.
// Line order within each draft preserves the input candidate order.
func BuildDrafts(workspaceID, source, notes string, candidates []Candidate, now time.Time) []*domain.PurchaseOrderDraft {
	groups := make(map[string][]Candidate)
	var keys []string // group keys in first-seen order
	display := make(map[string]string)

	for _, c := range candidates {
		if c.SuggestedUnits <= 0 {
			continue
		}

		key := NormalizeSupplier(c.Supplier)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
			name := strings.TrimSpace(c.Supplier)
			if name == "" {
				name = UnassignedSupplier
			}
			display[key] = name
		}
		groups[key] = append(groups[key], c)
	}

	drafts := make([]*domain.PurchaseOrderDraft, 0, len(keys))
	for _, key := range keys {
		draft := &domain.PurchaseOrderDraft{
			ID:          uuid.New(),
			Reference:   NewReference(now),
			WorkspaceID: workspaceID,
			Status:      domain.OrderStatusDraft,
			Source:      source,
			Notes:       notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		for _, c := range groups[key] {
			draft.Lines = append(draft.Lines, domain.PurchaseOrderLine{
				ID:                   uuid.New(),
				OrderID:              draft.ID,
				ItemID:               c.ItemID,
				ItemName:             c.ItemName,
				SuggestedUnits:       c.SuggestedUnits,
				ReorderPoint:         c.ReorderPoint,
				OnHandUnits:          c.OnHandUnits,
				LeadTimeDays:         c.LeadTimeDays,
				ForecastDailyDemand:  c.ForecastDailyDemand,
				Supplier:             display[key],
				SupplierSKU:          c.SupplierSKU,
				MinimumOrderQuantity: c.MinimumOrderQuantity,
				ReorderCasePack:      c.ReorderCasePack,
				LeadTimeVarianceDays: c.LeadTimeVarianceDays,
				Confidence:           c.Confidence,
			})
		}

		drafts = append(drafts, draft)
	}

	return drafts
}

// NewReference generates a draft order reference unique within a workspace,
// e.g. "PO-20260829-4F1A2B3C". The random suffix makes collisions
// effectively impossible.
func NewReference(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix)
}
