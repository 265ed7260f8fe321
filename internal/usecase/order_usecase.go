package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// OrderUsecase defines the interface for order intake use cases
type OrderUsecase interface {
	// CreateOrder validates the raw order payload, computes the final price
	// and persists a new order document. The payload is kept free-form so
	// client-side attributes pass through to storage verbatim.
	CreateOrder(ctx context.Context, payload map[string]any) (*entity.Order, error)
}
