package repository

import (
	"context"

	"dashboard/internal/domain/entity"
)

// OrderRepository defines the interface for order database operations.
// Orders are append-only; there is no update or delete surface.
type OrderRepository interface {
	// CreateOrder persists a new order document.
	CreateOrder(ctx context.Context, order *entity.Order) error
}
