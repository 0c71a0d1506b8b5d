// backend-go/internal/domain/item.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SampleWindowSize caps the rolling window of daily demand samples per item.
const SampleWindowSize = 14

// InventoryItem is a catalog item together with its stock counts and
// replenishment planning fields. Stock is tracked in three parallel
// representations: whole cases plus loose units, loose eaches below the unit
// level, and whole gallons plus a fractional remainder for liquids.
type InventoryItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	WorkspaceID string    `json:"workspace_id" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`

	// Quantity fields
	Quantity       int     `json:"quantity" db:"quantity"` // whole cases
	UnitsPerCase   int     `json:"units_per_case" db:"units_per_case"`
	LooseUnits     int     `json:"loose_units" db:"loose_units"`
	EachesPerUnit  int     `json:"eaches_per_unit" db:"eaches_per_unit"`
	LooseEaches    int     `json:"loose_eaches" db:"loose_eaches"`
	IsLiquid       bool    `json:"is_liquid" db:"is_liquid"`
	GallonFraction float64 `json:"gallon_fraction" db:"gallon_fraction"` // liquids only

	// Planning fields
	AverageDailyUsage    float64   `json:"average_daily_usage" db:"average_daily_usage"`
	DailyDemandSamples   []float64 `json:"daily_demand_samples" db:"-"`
	LeadTimeDays         int       `json:"lead_time_days" db:"lead_time_days"`
	LeadTimeVarianceDays int       `json:"lead_time_variance_days" db:"lead_time_variance_days"`
	SafetyStockUnits     int       `json:"safety_stock_units" db:"safety_stock_units"`
	MinimumOrderQuantity int       `json:"minimum_order_quantity" db:"minimum_order_quantity"`
	ReorderCasePack      int       `json:"reorder_case_pack" db:"reorder_case_pack"`
	PreferredSupplier    string    `json:"preferred_supplier" db:"preferred_supplier"`
	SupplierSKU          string    `json:"supplier_sku" db:"supplier_sku"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
