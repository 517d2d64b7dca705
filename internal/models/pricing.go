package models

// DiscountedUnitPrice applies a percentage discount to a minor-unit price,
// rounding half-up to the nearest unit.
func DiscountedUnitPrice(unitPrice int64, discountPercent int) int64 {
	if discountPercent <= 0 {
		return unitPrice
	}
	return (unitPrice*int64(100-discountPercent) + 50) / 100
}

// LineTotal computes the total for quantity units at the discounted price.
// The discount is applied to the exact line value (unitPrice * quantity) and
// rounded half-up exactly once, so no per-unit rounding error accumulates
// across the quantity.
func LineTotal(unitPrice int64, discountPercent, quantity int) int64 {
	value := unitPrice * int64(quantity)
	if discountPercent <= 0 {
		return value
	}
	return (value*int64(100-discountPercent) + 50) / 100
}
