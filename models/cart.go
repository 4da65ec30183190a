package models

import "time"

// SelectedVariant is one cart line: a concrete attribute combination with
// its own quantity and unit price. VariantID is the canonical combination
// id, unique within a CartItem.
type SelectedVariant struct {
	VariantID  string             `json:"variantId" bson:"variantId"`
	Attributes SelectedAttributes `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	Price      float64            `json:"price" bson:"price"`
	SKU        string             `json:"sku,omitempty" bson:"sku,omitempty"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
}

// CartItem groups every combination of one product currently in the cart.
// TotalQuantity and TotalPrice are derived sums over Variants.
type CartItem struct {
	ItemID        string            `json:"id" bson:"itemId"`
	ProductID     string            `json:"productId" bson:"productId"`
	ProductName   string            `json:"productName,omitempty" bson:"productName,omitempty"`
	Image         string            `json:"image,omitempty" bson:"image,omitempty"`
	Variants      []SelectedVariant `json:"variants" bson:"variants"`
	TotalQuantity int               `json:"totalQuantity" bson:"totalQuantity"`
	TotalPrice    float64           `json:"totalPrice" bson:"totalPrice"`
	Currency      string            `json:"currency,omitempty" bson:"currency,omitempty"`
	AddedAt       time.Time         `json:"addedAt" bson:"addedAt"`
}

// Cart is the whole cart for one owner. Guests get the same shape persisted
// under their guest id; authenticated users get the mongo-backed document.
type Cart struct {
	UserID     string     `json:"userId,omitempty" bson:"userId,omitempty"`
	Items      []CartItem `json:"items" bson:"items"`
	Subtotal   float64    `json:"subtotal" bson:"subtotal"`
	TotalItems int        `json:"totalItems" bson:"totalItems"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
