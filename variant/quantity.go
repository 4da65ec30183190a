package variant

import (
	"errors"

	"vitrin/models"
)

// Products priced under the threshold can only be ordered in lots of five
// or more; cheap items are not worth fulfilling one at a time.
const (
	LowPriceThreshold   = 500
	MinLowPriceQuantity = 5
)

// ErrBelowMinQuantity signals an attempt to lower a quantity under the
// product's floor. Handlers answer it with a distinguished payload so the
// storefront can explain the blocked control instead of silently clamping.
var ErrBelowMinQuantity = errors.New("quantity below the minimum for this product")

// MinQuantity is the quantity floor for the product.
func MinQuantity(p *models.Product) int {
	if p.Price < LowPriceThreshold {
		return MinLowPriceQuantity
	}
	return 1
}

// ClampQuantity raises requested up to the product's floor and reports
// whether the floor intervened. The floor applies on initial selection,
// decrement, and direct entry alike; increments are never restricted.
func ClampQuantity(p *models.Product, requested int) (int, bool) {
	floor := MinQuantity(p)
	if requested < floor {
		return floor, true
	}
	return requested, false
}

// CheckDecrement validates lowering a quantity to requested. Going below
// the floor is rejected, not clamped, so the caller can surface why the
// control did not move.
func CheckDecrement(p *models.Product, requested int) error {
	if requested < MinQuantity(p) {
		return ErrBelowMinQuantity
	}
	return nil
}
