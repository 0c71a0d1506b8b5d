package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

var (
	// ErrOrderNotFound signals a stale order reference: the id is not in
	// the receivable set any more (or never was).
	ErrOrderNotFound = errors.New("purchase order not found")

	// ErrOrderNotReceivable signals a receipt against a draft that has not
	// been sent yet.
	ErrOrderNotReceivable = errors.New("purchase order is not receivable")

	// ErrInvalidTransition signals an externally driven transition the
	// state machine does not allow.
	ErrInvalidTransition = errors.New("invalid purchase order transition")
)

// ReceiptResult reports what a receipt application changed. AppliedByItem
// sums the applied units per item so the caller can cascade them into
// on-hand stock and the ledger, once per item.
type ReceiptResult struct {
	Changed       bool
	AppliedByItem map[uuid.UUID]int
}

// MarkSent advances a draft to Sent. Only Draft orders can be sent; Partial
// and Received are derived states and Sent is idempotent only from Draft.
func MarkSent(order *domain.PurchaseOrderDraft, at time.Time) error {
	if order.Status != domain.OrderStatusDraft {
		return ErrInvalidTransition
	}

	order.Status = domain.OrderStatusSent
	order.SentAt = &at
	order.UpdatedAt = at
	return nil
}

// ApplyReceipts adds the given units to each referenced line and re-derives
// the order status. Received units are monotonic increments; entries with
// units <= 0 or unknown line ids are ignored, not errors. Receipts against a
// fully received order are a no-op; receipts against an unsent draft are
// rejected.
func ApplyReceipts(order *domain.PurchaseOrderDraft, receivedByLine map[uuid.UUID]int, receivedAt time.Time) (ReceiptResult, error) {
	result := ReceiptResult{AppliedByItem: make(map[uuid.UUID]int)}

	if order.Status == domain.OrderStatusDraft {
		return result, ErrOrderNotReceivable
	}
	if order.Status == domain.OrderStatusReceived {
		return result, nil
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		units, ok := receivedByLine[line.ID]
		if !ok || units <= 0 {
			continue
		}

		line.ReceivedUnits += units
		result.AppliedByItem[line.ItemID] += units
		result.Changed = true
	}

	if !result.Changed {
		return result, nil
	}

	order.Status = DeriveStatus(order)
	order.LastReceivedAt = &receivedAt
	order.UpdatedAt = receivedAt
	if order.Status == domain.OrderStatusReceived && order.ReceivedAt == nil {
		order.ReceivedAt = &receivedAt
	}

	return result, nil
}

// DeriveStatus computes the receipt-driven status for a sent order:
// Received once every suggested unit has arrived (and there was something to
// receive), Partial once anything has arrived, otherwise the externally set
// state stands.
func DeriveStatus(order *domain.PurchaseOrderDraft) domain.OrderStatus {
	suggested := order.TotalSuggestedUnits()
	received := order.TotalReceivedUnits()

	if suggested > 0 && received >= suggested {
		return domain.OrderStatusReceived
	}
	if received > 0 {
		return domain.OrderStatusPartial
	}
	return order.Status
}
