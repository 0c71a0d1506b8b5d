// backend-go/internal/domain/order.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseOrderLine is one item's worth of a purchase order. Everything but
// ReceivedUnits is a snapshot of the forecast at order-creation time and
// never changes afterwards; ReceivedUnits only ever grows.
type PurchaseOrderLine struct {
	ID      uuid.UUID `json:"id" db:"id"`
	OrderID uuid.UUID `json:"order_id" db:"order_id"`
	ItemID  uuid.UUID `json:"item_id" db:"item_id"`

	ItemName             string  `json:"item_name" db:"item_name"`
	SuggestedUnits       int     `json:"suggested_units" db:"suggested_units"`
	ReorderPoint         int     `json:"reorder_point" db:"reorder_point"`
	OnHandUnits          int     `json:"on_hand_units" db:"on_hand_units"`
	LeadTimeDays         int     `json:"lead_time_days" db:"lead_time_days"`
	ForecastDailyDemand  float64 `json:"forecast_daily_demand" db:"forecast_daily_demand"`
	Supplier             string  `json:"supplier" db:"supplier"`
	SupplierSKU          string  `json:"supplier_sku" db:"supplier_sku"`
	MinimumOrderQuantity int     `json:"minimum_order_quantity" db:"minimum_order_quantity"`
	ReorderCasePack      int     `json:"reorder_case_pack" db:"reorder_case_pack"`
	LeadTimeVarianceDays int     `json:"lead_time_variance_days" db:"lead_time_variance_days"`

	Confidence    Confidence `json:"confidence" db:"confidence"`
	ReceivedUnits int        `json:"received_units" db:"received_units"`
}

// OpenUnits returns the units still outstanding on this line.
func (l *PurchaseOrderLine) OpenUnits() int {
	open := l.SuggestedUnits - l.ReceivedUnits
	if open < 0 {
		return 0
	}
	return open
}

// PurchaseOrderDraft is a supplier-specific purchase order. Draft and Sent
// are externally driven states; Partial and Received are derived from line
// receipt state and must never be set directly.
type PurchaseOrderDraft struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Reference   string      `json:"reference" db:"reference"`
	WorkspaceID string      `json:"workspace_id" db:"workspace_id"`
	Status      OrderStatus `json:"status" db:"status"`
	Source      string      `json:"source" db:"source"`
	Notes       string      `json:"notes" db:"notes"`

	Lines []PurchaseOrderLine `json:"lines" db:"-"`

	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	SentAt         *time.Time `json:"sent_at,omitempty" db:"sent_at"`
	ReceivedAt     *time.Time `json:"received_at,omitempty" db:"received_at"`
	LastReceivedAt *time.Time `json:"last_received_at,omitempty" db:"last_received_at"`
}

// TotalSuggestedUnits sums the ordered units across all lines.
func (o *PurchaseOrderDraft) TotalSuggestedUnits() int {
	total := 0
	for i := range o.Lines {
		total += o.Lines[i].SuggestedUnits
	}
	return total
}

// TotalReceivedUnits sums the received units across all lines.
func (o *PurchaseOrderDraft) TotalReceivedUnits() int {
	total := 0
	for i := range o.Lines {
		total += o.Lines[i].ReceivedUnits
	}
	return total
}

// OpenUnits returns the units still outstanding across all lines.
func (o *PurchaseOrderDraft) OpenUnits() int {
	total := 0
	for i := range o.Lines {
		total += o.Lines[i].OpenUnits()
	}
	return total
}

// FulfillmentProgress returns received/suggested in [0, 1]. Orders with no
// suggested units report 0.
func (o *PurchaseOrderDraft) FulfillmentProgress() float64 {
	suggested := o.TotalSuggestedUnits()
	if suggested <= 0 {
		return 0
	}
	progress := float64(o.TotalReceivedUnits()) / float64(suggested)
	if progress > 1 {
		return 1
	}
	return progress
}
