package models

import "time"

// Variant scheme types. Anything else in a stored document is legacy and is
// normalized at load time.
const (
	SchemeSimple           = "simple"
	SchemePrimaryDependent = "primary-dependent"
	SchemeMultiDependent   = "multi-dependent"
)

type Product struct {
	ProductID      string            `json:"id" bson:"productid"`
	Name           string            `json:"name" bson:"name"`
	Description    string            `json:"description,omitempty" bson:"description,omitempty"`
	Category       string            `json:"category" bson:"category"`
	Brand          string            `json:"brand" bson:"brand"`
	Price          float64           `json:"price" bson:"price"`
	OriginalPrice  float64           `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Currency       string            `json:"currency,omitempty" bson:"currency,omitempty"`
	Stock          int               `json:"stock" bson:"stock"`
	SKU            string            `json:"sku,omitempty" bson:"sku,omitempty"`
	Images         []string          `json:"images,omitempty" bson:"images,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`
	Variants       []Variant         `json:"variants,omitempty" bson:"variants,omitempty"`
	VariantConfig  *VariantConfig    `json:"variantConfig,omitempty" bson:"variantConfig,omitempty"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}

type VariantConfig struct {
	Type              string              `json:"type" bson:"type"`
	PrimaryAttribute  string              `json:"primaryAttribute,omitempty" bson:"primaryAttribute,omitempty"`
	PrimaryAttributes []string            `json:"primaryAttributes,omitempty" bson:"primaryAttributes,omitempty"`
	AttributeOrder    []string            `json:"attributeOrder,omitempty" bson:"attributeOrder,omitempty"`
	// Dependencies is carried through saves but not interpreted yet.
	Dependencies map[string][]string `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
}

// PrimaryValue is one pricing-bearing attribute value. Price and Quantity
// arrive as strings or numbers depending on which admin client wrote them.
type PrimaryValue struct {
	Attribute string    `json:"attribute,omitempty" bson:"attribute,omitempty"`
	Value     string    `json:"value" bson:"value"`
	Price     FlexFloat `json:"price,omitempty" bson:"price,omitempty"`
	Quantity  *FlexInt  `json:"quantity,omitempty" bson:"quantity,omitempty"`
}

type Variant struct {
	VariantID     string              `json:"id" bson:"variantid"`
	Price         FlexFloat           `json:"price,omitempty" bson:"price,omitempty"`
	SKU           string              `json:"sku,omitempty" bson:"sku,omitempty"`
	Model         string              `json:"model,omitempty" bson:"model,omitempty"`
	Image         string              `json:"image,omitempty" bson:"image,omitempty"`
	StockQuantity *FlexInt            `json:"stockQuantity,omitempty" bson:"stockQuantity,omitempty"`
	Attributes    map[string]string   `json:"attributes,omitempty" bson:"attributes,omitempty"`
	PrimaryValues []PrimaryValue      `json:"primaryValues,omitempty" bson:"primaryValues,omitempty"`
	MultiValues   map[string][]string `json:"multiValues,omitempty" bson:"multiValues,omitempty"`
}

// AttributeRef names one attribute/value criterion on a variant image.
type AttributeRef struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// VariantImage links an image to an attribute combination. Many images may
// reference the same variant or attribute set; this is lookup data, not
// ownership.
type VariantImage struct {
	ImageID   string `json:"id" bson:"imageid"`
	ProductID string `json:"productId" bson:"productid"`
	ImageURL  string `json:"imageUrl" bson:"imageUrl"`
	VariantID string `json:"variantId,omitempty" bson:"variantId,omitempty"`
	// Attribute is the legacy single-criterion form, Attributes the current
	// multi-criteria one. Readers must accept both.
	Attribute  *AttributeRef  `json:"attribute,omitempty" bson:"attribute,omitempty"`
	Attributes []AttributeRef `json:"attributes,omitempty" bson:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
}

type Pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
