package cart

import (
	"time"

	"vitrin/models"

	"github.com/google/uuid"
)

// AddSelection merges one selected combination into the cart. An existing
// line with the same canonical id, or with an equal attribute set, absorbs
// the quantity; otherwise the line is appended. A product not yet in the
// cart gets a fresh item. Totals are recomputed as sums over all lines.
func AddSelection(c *models.Cart, productID, productName, image, currency string, line models.SelectedVariant) {
	line.VariantID = CanonicalVariantID(line.VariantID, line.Attributes)
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	item := findItem(c, productID)
	if item == nil {
		c.Items = append(c.Items, models.CartItem{
			ItemID:      uuid.NewString(),
			ProductID:   productID,
			ProductName: productName,
			Image:       image,
			Currency:    currency,
			Variants:    []models.SelectedVariant{line},
			AddedAt:     time.Now(),
		})
		Recompute(c)
		return
	}

	for i := range item.Variants {
		existing := &item.Variants[i]
		if existing.VariantID == line.VariantID || AttributesEqual(existing.Attributes, line.Attributes) {
			existing.Quantity += line.Quantity
			if line.Price > 0 {
				existing.Price = line.Price
			}
			Recompute(c)
			return
		}
	}

	item.Variants = append(item.Variants, line)
	Recompute(c)
}

// SetLineQuantity sets an existing line's quantity; quantity 0 removes the
// line (and the item when it was the last one). Returns false when no line
// matched.
func SetLineQuantity(c *models.Cart, productID, variantID string, quantity int) bool {
	item := findItem(c, productID)
	if item == nil {
		return false
	}
	for i := range item.Variants {
		if item.Variants[i].VariantID != variantID {
			continue
		}
		if quantity <= 0 {
			item.Variants = append(item.Variants[:i], item.Variants[i+1:]...)
		} else {
			item.Variants[i].Quantity = quantity
		}
		dropEmptyItems(c)
		Recompute(c)
		return true
	}
	return false
}

// RemoveLine drops one combination line. Returns false when absent.
func RemoveLine(c *models.Cart, productID, variantID string) bool {
	return SetLineQuantity(c, productID, variantID, 0)
}

// RemoveItem drops a whole product from the cart.
func RemoveItem(c *models.Cart, productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			Recompute(c)
			return true
		}
	}
	return false
}

// Recompute rebuilds every derived sum: per-item totalQuantity/totalPrice
// and the cart subtotal/totalItems.
func Recompute(c *models.Cart) {
	c.Subtotal = 0
	c.TotalItems = 0
	for i := range c.Items {
		item := &c.Items[i]
		item.TotalQuantity = 0
		item.TotalPrice = 0
		for _, sv := range item.Variants {
			item.TotalQuantity += sv.Quantity
			item.TotalPrice += sv.Price * float64(sv.Quantity)
		}
		c.Subtotal += item.TotalPrice
		c.TotalItems += item.TotalQuantity
	}
	c.UpdatedAt = time.Now()
}

func findItem(c *models.Cart, productID string) *models.CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

func dropEmptyItems(c *models.Cart) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if len(item.Variants) > 0 {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}
