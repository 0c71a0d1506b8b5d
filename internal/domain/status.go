package domain

import "strings"

// OrderStatus is the purchase order lifecycle state.
type OrderStatus string

const (
	OrderStatusDraft    OrderStatus = "draft"
	OrderStatusSent     OrderStatus = "sent"
	OrderStatusPartial  OrderStatus = "partial"
	OrderStatusReceived OrderStatus = "received"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusDraft:    "Draft",
	OrderStatusSent:     "Sent",
	OrderStatusPartial:  "Partial",
	OrderStatusReceived: "Received",
}

// IsValid reports whether s is a known lifecycle state.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns a human-readable label for the status.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}

	return "Draft"
}

// Receivable reports whether quantities may be received against an order in
// this state. Drafts have not been placed yet and fully received orders are
// settled.
func (s OrderStatus) Receivable() bool {
	return s == OrderStatusSent || s == OrderStatusPartial
}

// ParseOrderStatus returns the status for a given label (case-insensitive).
func ParseOrderStatus(label string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(label)))
	if !s.IsValid() {
		return "", false
	}

	return s, true
}

// ItemStatus is the planner's urgency tier for an item.
type ItemStatus string

const (
	ItemStatusNeedsData ItemStatus = "needs_data"
	ItemStatusHealthy   ItemStatus = "healthy"
	ItemStatusDueSoon   ItemStatus = "due_soon"
	ItemStatusUrgent    ItemStatus = "urgent"
)

// Confidence rates how much to trust an auto-generated suggestion. It is
// descriptive only and never gates whether a suggestion is produced.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)
