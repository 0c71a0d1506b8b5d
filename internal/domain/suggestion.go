package domain

import (
	"time"

	"github.com/google/uuid"
)

// Suggestion is one item's computed replenishment picture: the forecast, the
// reorder signal, and the constraint-adjusted order quantity. A suggestion
// with AdjustedUnits == 0 is still a valid answer ("nothing to do").
type Suggestion struct {
	ItemID              uuid.UUID  `json:"item_id"`
	ItemName            string     `json:"item_name"`
	Supplier            string     `json:"supplier"`
	SupplierSKU         string     `json:"supplier_sku"`
	OnHandUnits         int        `json:"on_hand_units"`
	ForecastDailyDemand float64    `json:"forecast_daily_demand"`
	ReorderPoint        int        `json:"reorder_point"`
	SuggestedUnits      int        `json:"suggested_units"`
	AdjustedUnits       int        `json:"adjusted_units"`
	DaysOfSupply        float64    `json:"days_of_supply"`
	LeadTimeDays        int        `json:"lead_time_days"`
	Status              ItemStatus `json:"status"`
	Confidence          Confidence `json:"confidence"`
	SampleCount         int        `json:"sample_count"`
}

// PlannerSummary counts items per urgency tier for a workspace.
type PlannerSummary struct {
	WorkspaceID string    `json:"workspace_id"`
	Urgent      int       `json:"urgent"`
	DueSoon     int       `json:"due_soon"`
	Healthy     int       `json:"healthy"`
	NeedsData   int       `json:"needs_data"`
	TotalItems  int       `json:"total_items"`
	GeneratedAt time.Time `json:"generated_at"`
}
