// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// MaxProductImages is the upper bound on the number of images a product may carry.
const MaxProductImages = 5

// ProductImage is a single hosted asset referenced by a product.
// PublicID identifies the asset on the media host; URL is the serving URL.
type ProductImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// ProductVariant is a named option group, e.g. {Name: "Size", Options: ["S", "M", "L"]}.
// Option order is significant and preserved as submitted.
type ProductVariant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product represents a catalog entry.
//
// Thumbnail is derived state: it always equals ProductImages[0] and is never
// set independently. Discount is a pointer because an absent discount is
// distinct from a discount of zero.
type Product struct {
	ProductID           string           `json:"product_id"`           // Opaque unique identifier, assigned at creation, immutable.
	ProductName         string           `json:"product_name"`         // Unique across the whole catalog.
	ProductType         string           `json:"product_type"`         // Category label, free-form.
	ProductPrice        float64          `json:"product_price"`        // Non-negative.
	ProductDiscount     *float64         `json:"product_discount,omitempty"` // Percentage in [0, 100]; nil when no discount is set.
	ProductDescriptions string           `json:"product_descriptions"` // Free text.
	ProductTags         []string         `json:"product_tags"`         // Order preserved as submitted.
	ProductSKU          string           `json:"product_sku"`
	ProductStock        int              `json:"product_stock"` // Non-negative.
	ProductVariants     []ProductVariant `json:"product_variants"`
	ProductImages       []ProductImage   `json:"product_images"` // Length always in [1, MaxProductImages].
	Thumbnail           ProductImage     `json:"thumbnail"`      // Always ProductImages[0].
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"` // Refreshed on every successful mutation.
}
