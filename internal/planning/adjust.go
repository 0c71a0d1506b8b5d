package planning

// AdjustOrderQuantity applies supplier ordering constraints to a raw
// suggested quantity. Case-pack rounding happens first so that when the
// minimum-order floor kicks in, the floor itself lands on a whole case-pack
// multiple. Zero or missing constraints pass the quantity through.
func AdjustOrderQuantity(rawUnits, minimumOrderQuantity, reorderCasePack int) int {
	if rawUnits <= 0 {
		return 0
	}

	units := rawUnits
	if reorderCasePack > 0 {
		units = roundUpToMultiple(units, reorderCasePack)
	}

	if minimumOrderQuantity > 0 && units < minimumOrderQuantity {
		units = minimumOrderQuantity
		if reorderCasePack > 0 {
			units = roundUpToMultiple(units, reorderCasePack)
		}
	}

	return units
}

func roundUpToMultiple(units, multiple int) int {
	if remainder := units % multiple; remainder != 0 {
		return units + multiple - remainder
	}
	return units
}
