package purchase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

func sentOrder(lineUnits ...int) *domain.PurchaseOrderDraft {
	order := &domain.PurchaseOrderDraft{
		ID:          uuid.New(),
		Reference:   "PO-20260829-TEST0001",
		WorkspaceID: "ws-1",
		Status:      domain.OrderStatusSent,
	}
	for _, units := range lineUnits {
		order.Lines = append(order.Lines, domain.PurchaseOrderLine{
			ID:             uuid.New(),
			OrderID:        order.ID,
			ItemID:         uuid.New(),
			SuggestedUnits: units,
		})
	}
	return order
}

func TestMarkSent(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("draft advances to sent", func(t *testing.T) {
		order := sentOrder(10)
		order.Status = domain.OrderStatusDraft

		require.NoError(t, MarkSent(order, now))
		assert.Equal(t, domain.OrderStatusSent, order.Status)
		require.NotNil(t, order.SentAt)
		assert.Equal(t, now, *order.SentAt)
	})

	t.Run("only drafts can be sent", func(t *testing.T) {
		for _, status := range []domain.OrderStatus{
			domain.OrderStatusSent,
			domain.OrderStatusPartial,
			domain.OrderStatusReceived,
		} {
			order := sentOrder(10)
			order.Status = status
			assert.ErrorIs(t, MarkSent(order, now), ErrInvalidTransition)
		}
	})
}

func TestApplyReceipts(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	t.Run("partial then received", func(t *testing.T) {
		order := sentOrder(10, 5)

		result, err := ApplyReceipts(order, map[uuid.UUID]int{order.Lines[0].ID: 10}, now)
		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, 10, result.AppliedByItem[order.Lines[0].ItemID])
		assert.Equal(t, domain.OrderStatusPartial, order.Status)
		assert.Nil(t, order.ReceivedAt)
		require.NotNil(t, order.LastReceivedAt)
		assert.Equal(t, now, *order.LastReceivedAt)

		result, err = ApplyReceipts(order, map[uuid.UUID]int{order.Lines[1].ID: 5}, later)
		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, domain.OrderStatusReceived, order.Status)
		require.NotNil(t, order.ReceivedAt)
		assert.Equal(t, later, *order.ReceivedAt)
		assert.Zero(t, order.OpenUnits())
	})

	t.Run("over-receipt keeps counting", func(t *testing.T) {
		order := sentOrder(10)

		_, err := ApplyReceipts(order, map[uuid.UUID]int{order.Lines[0].ID: 15}, now)
		require.NoError(t, err)

		assert.Equal(t, 15, order.Lines[0].ReceivedUnits)
		assert.Equal(t, domain.OrderStatusReceived, order.Status)
		assert.Zero(t, order.Lines[0].OpenUnits())
		assert.InDelta(t, 1, order.FulfillmentProgress(), 1e-9)
	})

	t.Run("non-positive and unknown entries are ignored", func(t *testing.T) {
		order := sentOrder(10)

		result, err := ApplyReceipts(order, map[uuid.UUID]int{
			order.Lines[0].ID: 0,
			uuid.New():        7,
		}, now)
		require.NoError(t, err)

		assert.False(t, result.Changed)
		assert.Equal(t, domain.OrderStatusSent, order.Status)
		assert.Nil(t, order.LastReceivedAt)
	})

	t.Run("drafts are not receivable", func(t *testing.T) {
		order := sentOrder(10)
		order.Status = domain.OrderStatusDraft

		_, err := ApplyReceipts(order, map[uuid.UUID]int{order.Lines[0].ID: 5}, now)
		assert.ErrorIs(t, err, ErrOrderNotReceivable)
	})

	t.Run("received orders no-op", func(t *testing.T) {
		order := sentOrder(10)
		order.Status = domain.OrderStatusReceived
		order.Lines[0].ReceivedUnits = 10
		order.ReceivedAt = &now

		result, err := ApplyReceipts(order, map[uuid.UUID]int{order.Lines[0].ID: 5}, later)
		require.NoError(t, err)

		assert.False(t, result.Changed)
		assert.Equal(t, 10, order.Lines[0].ReceivedUnits)
		assert.Equal(t, now, *order.ReceivedAt)
	})

	t.Run("received timestamp set once", func(t *testing.T) {
		order := sentOrder(4, 4)

		_, err := ApplyReceipts(order, map[uuid.UUID]int{
			order.Lines[0].ID: 4,
			order.Lines[1].ID: 4,
		}, now)
		require.NoError(t, err)
		require.NotNil(t, order.ReceivedAt)
		assert.Equal(t, now, *order.ReceivedAt)
	})
}

func TestDeriveStatus(t *testing.T) {
	t.Run("fully received", func(t *testing.T) {
		order := sentOrder(6, 4)
		order.Lines[0].ReceivedUnits = 6
		order.Lines[1].ReceivedUnits = 4
		assert.Equal(t, domain.OrderStatusReceived, DeriveStatus(order))
	})

	t.Run("anything received is partial", func(t *testing.T) {
		order := sentOrder(6, 4)
		order.Lines[0].ReceivedUnits = 1
		assert.Equal(t, domain.OrderStatusPartial, DeriveStatus(order))
	})

	t.Run("nothing received keeps the external state", func(t *testing.T) {
		order := sentOrder(6)
		assert.Equal(t, domain.OrderStatusSent, DeriveStatus(order))
	})

	t.Run("empty order never derives received", func(t *testing.T) {
		order := sentOrder()
		assert.Equal(t, domain.OrderStatusSent, DeriveStatus(order))
	})
}
