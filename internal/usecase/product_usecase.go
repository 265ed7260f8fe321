package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// CreateProductInput carries the full payload for creating a product.
// Images are source URLs (or inline data) that still need to be uploaded to
// the media store.
type CreateProductInput struct {
	ProductName         string                  `json:"product_name"`
	ProductType         string                  `json:"product_type"`
	ProductPrice        float64                 `json:"product_price"`
	ProductDiscount     *float64                `json:"product_discount"`
	ProductDescriptions string                  `json:"product_descriptions"`
	ProductTags         []string                `json:"product_tags"`
	ProductSKU          string                  `json:"product_sku"`
	ProductStock        int                     `json:"product_stock"`
	ProductVariants     []entity.ProductVariant `json:"product_variants"`
	ProductImages       []string                `json:"product_images"`
}

// UpdateProductInput carries a sparse update payload. A nil field was not
// supplied and leaves the stored value untouched; a non-nil field is merged.
// This presence rule is uniform across all fields, so zero values such as
// discount 0 or stock 0 are valid, meaningful updates.
type UpdateProductInput struct {
	ProductName         *string                 `json:"product_name"`
	ProductType         *string                 `json:"product_type"`
	ProductPrice        *float64                `json:"product_price"`
	ProductDiscount     *float64                `json:"product_discount"`
	ProductDescriptions *string                 `json:"product_descriptions"`
	ProductTags         []string                `json:"product_tags"`
	ProductSKU          *string                 `json:"product_sku"`
	ProductStock        *int                    `json:"product_stock"`
	ProductVariants     []entity.ProductVariant `json:"product_variants"`
	ProductImages       []string                `json:"product_images"`
}

// ProductUsecase defines the interface for catalog management use cases
type ProductUsecase interface {
	// CreateProduct validates a full payload, uploads every image and
	// persists a new record.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct merges a sparse payload onto an existing record,
	// reconciling the hosted image set when new images are supplied, and
	// returns the record as re-read from storage.
	UpdateProduct(ctx context.Context, productID string, input *UpdateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product by its product_id.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
