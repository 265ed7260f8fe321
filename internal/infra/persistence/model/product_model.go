// Package model contains the bson document structs for the persistence layer.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImageModel is the stored form of a hosted image reference.
type ProductImageModel struct {
	URL      string `bson:"url"`
	PublicID string `bson:"public_id"`
}

// ProductVariantModel is the stored form of a variant option group.
type ProductVariantModel struct {
	Name    string   `bson:"name"`
	Options []string `bson:"options"`
}

// ProductModel is the mongo-specific document for the 'products' collection.
// Records are keyed by product_id; the driver-assigned _id is carried but
// never exposed to the domain.
type ProductModel struct {
	ID                  primitive.ObjectID    `bson:"_id,omitempty"`
	ProductID           string                `bson:"product_id"`
	ProductName         string                `bson:"product_name"`
	ProductType         string                `bson:"product_type"`
	ProductPrice        float64               `bson:"product_price"`
	ProductDiscount     *float64              `bson:"product_discount,omitempty"`
	ProductDescriptions string                `bson:"product_descriptions"`
	ProductTags         []string              `bson:"product_tags"`
	ProductSKU          string                `bson:"product_sku"`
	ProductStock        int                   `bson:"product_stock"`
	ProductVariants     []ProductVariantModel `bson:"product_variants"`
	ProductImages       []ProductImageModel   `bson:"product_images"`
	Thumbnail           ProductImageModel     `bson:"thumbnail"`
	CreatedAt           time.Time             `bson:"created_at"`
	UpdatedAt           time.Time             `bson:"updated_at"`
}

// CollectionName returns the mongo collection for products.
func (ProductModel) CollectionName() string {
	return "products"
}
