// Package planning holds the pure replenishment computations: unit
// conversion, demand forecasting, reorder signals, order quantity
// constraints, and suggestion confidence. Nothing here touches storage.
package planning

import (
	"github.com/shopspring/decimal"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
)

// UnitsPerGallon scales liquid gallons into canonical units (fluid ounces).
const UnitsPerGallon = 128

// TotalUnits collapses an item's count representations into one canonical
// total. Non-liquid items count whole cases, loose units, and whole units'
// worth of loose eaches; liquid items scale gallons by UnitsPerGallon.
func TotalUnits(item *domain.InventoryItem) int {
	if item.IsLiquid {
		total := decimal.NewFromInt(int64(item.LooseUnits)).
			Add(decimal.NewFromFloat(item.GallonFraction)).
			Mul(decimal.NewFromInt(UnitsPerGallon)).
			Round(0)
		units := int(total.IntPart())
		if units < 0 {
			return 0
		}
		return units
	}

	total := item.Quantity + item.LooseUnits
	if item.UnitsPerCase > 0 {
		total = item.Quantity*item.UnitsPerCase + item.LooseUnits
	}
	if item.EachesPerUnit > 0 {
		total += item.LooseEaches / item.EachesPerUnit
	}
	if total < 0 {
		return 0
	}
	return total
}

// ApplyTotalUnits decomposes newTotal back into the item's count fields.
// Loose eaches are reset on a full-total apply: they exist only for
// finer-grained manual adjustment and are not part of the canonical total.
// Negative totals are treated as out of stock, not as an error.
func ApplyTotalUnits(item *domain.InventoryItem, newTotal int) {
	if newTotal < 0 {
		newTotal = 0
	}

	if item.IsLiquid {
		gallons := decimal.NewFromInt(int64(newTotal)).
			Div(decimal.NewFromInt(UnitsPerGallon))
		applyGallons(item, gallons)
		return
	}

	if item.UnitsPerCase > 0 {
		item.Quantity = newTotal / item.UnitsPerCase
		item.LooseUnits = newTotal % item.UnitsPerCase
	} else {
		item.Quantity = newTotal
		item.LooseUnits = 0
	}
	item.LooseEaches = 0
}

// TotalGallons returns a liquid item's whole gallons plus the fractional
// remainder.
func TotalGallons(item *domain.InventoryItem) float64 {
	total := float64(item.LooseUnits) + item.GallonFraction
	if total < 0 {
		return 0
	}
	return total
}

// ApplyTotalGallons splits newTotal into whole gallons (stored in LooseUnits)
// and a fractional remainder, both clamped to >= 0.
func ApplyTotalGallons(item *domain.InventoryItem, newTotal float64) {
	applyGallons(item, decimal.NewFromFloat(newTotal))
}

// AddUnits shifts the canonical total by delta units and re-decomposes.
// Deltas that would go below zero floor at zero: subtraction past empty is a
// normal out-of-stock outcome.
func AddUnits(item *domain.InventoryItem, delta int) {
	ApplyTotalUnits(item, TotalUnits(item)+delta)
}

func applyGallons(item *domain.InventoryItem, gallons decimal.Decimal) {
	if gallons.IsNegative() {
		gallons = decimal.Zero
	}

	whole := gallons.IntPart()
	frac, _ := gallons.Sub(decimal.NewFromInt(whole)).Float64()

	item.LooseUnits = int(whole)
	item.GallonFraction = frac
	item.LooseEaches = 0
}
