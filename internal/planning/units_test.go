package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

func TestTotalUnits(t *testing.T) {
	t.Run("cases and loose units", func(t *testing.T) {
		item := &domain.InventoryItem{Quantity: 3, UnitsPerCase: 12, LooseUnits: 5}
		assert.Equal(t, 41, TotalUnits(item))
	})

	t.Run("no case size counts quantity directly", func(t *testing.T) {
		item := &domain.InventoryItem{Quantity: 7, LooseUnits: 2}
		assert.Equal(t, 9, TotalUnits(item))
	})

	t.Run("loose eaches contribute whole units only", func(t *testing.T) {
		item := &domain.InventoryItem{
			Quantity:      1,
			UnitsPerCase:  10,
			EachesPerUnit: 4,
			LooseEaches:   9, // 2 whole units, remainder dropped
		}
		assert.Equal(t, 12, TotalUnits(item))
	})

	t.Run("eaches ignored without a pack size", func(t *testing.T) {
		item := &domain.InventoryItem{Quantity: 5, LooseEaches: 9}
		assert.Equal(t, 5, TotalUnits(item))
	})

	t.Run("liquid scales gallons", func(t *testing.T) {
		item := &domain.InventoryItem{IsLiquid: true, LooseUnits: 2, GallonFraction: 0.5}
		assert.Equal(t, 320, TotalUnits(item))
	})

	t.Run("negative totals clamp to zero", func(t *testing.T) {
		item := &domain.InventoryItem{Quantity: -3, UnitsPerCase: 12}
		assert.Equal(t, 0, TotalUnits(item))
	})
}

func TestApplyTotalUnits(t *testing.T) {
	t.Run("splits into cases and remainder", func(t *testing.T) {
		item := &domain.InventoryItem{UnitsPerCase: 12}
		ApplyTotalUnits(item, 41)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 5, item.LooseUnits)
	})

	t.Run("resets loose eaches", func(t *testing.T) {
		item := &domain.InventoryItem{UnitsPerCase: 12, EachesPerUnit: 4, LooseEaches: 3}
		ApplyTotalUnits(item, 24)
		assert.Equal(t, 0, item.LooseEaches)
	})

	t.Run("negative total means out of stock", func(t *testing.T) {
		item := &domain.InventoryItem{UnitsPerCase: 12, Quantity: 2, LooseUnits: 4}
		ApplyTotalUnits(item, -10)
		assert.Equal(t, 0, item.Quantity)
		assert.Equal(t, 0, item.LooseUnits)
	})

	t.Run("liquid decomposes into gallons", func(t *testing.T) {
		item := &domain.InventoryItem{IsLiquid: true}
		ApplyTotalUnits(item, 320)
		assert.Equal(t, 2, item.LooseUnits)
		assert.InDelta(t, 0.5, item.GallonFraction, 1e-9)
	})

	t.Run("round-trips with TotalUnits", func(t *testing.T) {
		for _, total := range []int{0, 1, 11, 12, 13, 144, 1000} {
			item := &domain.InventoryItem{UnitsPerCase: 12}
			ApplyTotalUnits(item, total)
			require.Equal(t, total, TotalUnits(item), "total %d", total)
		}
	})

	t.Run("liquid round-trips exactly", func(t *testing.T) {
		for _, total := range []int{0, 1, 64, 128, 129, 320, 12800} {
			item := &domain.InventoryItem{IsLiquid: true}
			ApplyTotalUnits(item, total)
			require.Equal(t, total, TotalUnits(item), "total %d", total)
		}
	})
}

func TestAddUnits(t *testing.T) {
	t.Run("adds and re-splits", func(t *testing.T) {
		item := &domain.InventoryItem{UnitsPerCase: 6, Quantity: 1, LooseUnits: 2}
		AddUnits(item, 10)
		assert.Equal(t, 18, TotalUnits(item))
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 0, item.LooseUnits)
	})

	t.Run("subtraction past empty floors at zero", func(t *testing.T) {
		item := &domain.InventoryItem{UnitsPerCase: 6, Quantity: 1}
		AddUnits(item, -50)
		assert.Equal(t, 0, TotalUnits(item))
	})
}

func TestGallons(t *testing.T) {
	item := &domain.InventoryItem{IsLiquid: true}
	ApplyTotalGallons(item, 3.25)
	assert.Equal(t, 3, item.LooseUnits)
	assert.InDelta(t, 0.25, item.GallonFraction, 1e-9)
	assert.InDelta(t, 3.25, TotalGallons(item), 1e-9)

	ApplyTotalGallons(item, -1)
	assert.Equal(t, 0, item.LooseUnits)
	assert.Zero(t, item.GallonFraction)
}
