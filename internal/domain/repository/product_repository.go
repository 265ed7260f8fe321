// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"dashboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProductName is returned when a write would violate the
	// unique constraint on product_name.
	ErrDuplicateProductName = errors.New("product name already exists")
)

// ProductPatch describes a targeted partial update of a stored product.
// A nil field is left untouched; a non-nil field is written. UpdatedAt is
// always written.
type ProductPatch struct {
	ProductName         *string
	ProductType         *string
	ProductPrice        *float64
	ProductDiscount     *float64
	ProductDescriptions *string
	ProductTags         []string
	ProductSKU          *string
	ProductStock        *int
	ProductVariants     []entity.ProductVariant
	ProductImages       []entity.ProductImage
	Thumbnail           *entity.ProductImage
	UpdatedAt           time.Time
}

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// CreateProduct persists a new product record.
	// Returns ErrDuplicateProductName when the name is already taken.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its opaque product_id.
	FindProductByID(ctx context.Context, productID string) (*entity.Product, error)

	// FindProductByName retrieves a product by its unique name.
	FindProductByName(ctx context.Context, name string) (*entity.Product, error)

	// UpdateProduct applies a partial field update keyed by product_id.
	// Returns ErrProductNotFound when no record matched at write time and
	// ErrDuplicateProductName when a rename collides with another record.
	UpdateProduct(ctx context.Context, productID string, patch *ProductPatch) error

	// ListProducts retrieves the whole catalog in insertion order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
