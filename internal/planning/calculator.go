package planning

import (
	"math"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

// Metrics is the reorder signal computed for one item from a single forecast
// mode. NeedsData flags that the inputs were insufficient to compute a
// reorder point; that is a normal outcome, not an error.
type Metrics struct {
	Forecast         float64
	LeadTimeDays     int
	SafetyStockUnits int
	OnHandUnits      int

	NeedsData      bool
	ReorderPoint   int
	SuggestedUnits int // raw, before MOQ/case-pack adjustment
	DaysOfSupply   float64
}

// Calculate computes the reorder signal for one item.
func Calculate(forecast float64, leadTimeDays, safetyStockUnits, onHandUnits int) Metrics {
	m := Metrics{
		Forecast:         forecast,
		LeadTimeDays:     leadTimeDays,
		SafetyStockUnits: safetyStockUnits,
		OnHandUnits:      onHandUnits,
	}

	// 1. Without a positive forecast and lead time there is nothing to
	// compute against.
	if forecast <= 0 || leadTimeDays <= 0 {
		m.NeedsData = true
		return m
	}

	// 2. Reorder point = demand during lead time + safety stock
	demandDuringLead := int(math.Ceil(forecast * float64(leadTimeDays)))
	m.ReorderPoint = demandDuringLead + safetyStockUnits

	// 3. Suggested order covers the gap between the reorder point and what
	// is on hand.
	m.SuggestedUnits = m.ReorderPoint - onHandUnits
	if m.SuggestedUnits < 0 {
		m.SuggestedUnits = 0
	}

	// 4. Days of supply at the current burn rate
	m.DaysOfSupply = float64(onHandUnits) / forecast

	return m
}

// ClassifyPlanner maps a signal to the urgency tier shown to humans. Urgent
// means stock runs out within half the lead time (floored at one day) or is
// already gone.
func ClassifyPlanner(m Metrics) domain.ItemStatus {
	if m.NeedsData {
		return domain.ItemStatusNeedsData
	}
	if m.SuggestedUnits <= 0 {
		return domain.ItemStatusHealthy
	}

	cutoff := math.Max(1, float64(m.LeadTimeDays)*0.5)
	if m.OnHandUnits == 0 || m.DaysOfSupply <= cutoff {
		return domain.ItemStatusUrgent
	}

	return domain.ItemStatusDueSoon
}

// AutoDraftCandidate is the automation policy: whether an item qualifies for
// an auto-drafted order. Its cutoff is the full lead time, deliberately wider
// than the planner's urgent tier - acting automatically is cheaper than
// alarming a human. Keep the two cutoffs distinct.
func AutoDraftCandidate(m Metrics) bool {
	if m.NeedsData || m.SuggestedUnits <= 0 {
		return false
	}
	if m.OnHandUnits == 0 {
		return true
	}

	cutoff := math.Max(1, float64(m.LeadTimeDays))
	return m.DaysOfSupply <= cutoff
}
