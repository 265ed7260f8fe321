package impl

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"github.com/google/uuid"
)

// Fields that must be absent from an order payload. Order intake is
// intentionally anonymous; identity or contact data is rejected, not stored.
var forbiddenOrderFields = []string{"username", "userid", "email", "phone"}

type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService creates a new order intake service instance
func NewOrderService(orderRepo repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// CreateOrder validates the raw payload, computes the final price and
// persists the order. The payload passes through to storage verbatim plus
// the computed order_id and final_price; no catalog existence check is
// performed against the referenced product.
func (s *orderService) CreateOrder(ctx context.Context, payload map[string]any) (*entity.Order, error) {
	productID, ok := stringField(payload, "product_id")
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_id is required")
	}
	productName, ok := stringField(payload, "product_name")
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_name is required")
	}
	quantity, ok := numberField(payload, "product_quantity")
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_quantity is required")
	}
	price, ok := numberField(payload, "product_price")
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_price is required")
	}
	discount, ok := numberField(payload, "product_discount")
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_discount is required")
	}

	variants, ok := payload["product_variant"].([]any)
	if !ok || len(variants) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_variant must be a non-empty list")
	}
	if _, ok := stringField(payload, "product_image"); !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_image is required")
	}

	for _, field := range forbiddenOrderFields {
		if _, present := payload[field]; present {
			return nil, errors.Wrapf(domainerrors.ErrInvalidOrderInput, "field %s must not be provided", field)
		}
	}

	order := &entity.Order{
		OrderID:         uuid.NewString(),
		ProductID:       productID,
		ProductName:     productName,
		ProductQuantity: quantity,
		ProductPrice:    price,
		ProductDiscount: discount,
		FinalPrice:      price * quantity * (1 - discount/100),
		Fields:          payload,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(domainerrors.ErrOrderPersistenceFailed, err.Error())
	}

	s.logger.Info("order created",
		slog.String("order_id", order.OrderID),
		slog.String("product_id", order.ProductID),
	)

	return order, nil
}

func stringField(payload map[string]any, key string) (string, bool) {
	value, ok := payload[key].(string)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

func numberField(payload map[string]any, key string) (float64, bool) {
	// encoding/json decodes every JSON number in a map[string]any as float64.
	value, ok := payload[key].(float64)

	return value, ok
}
