package handler

import (
	"log/slog"
	"net/http"

	"dashboard/internal/delivery/http/response"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrder handles POST /orders. The body is kept free-form so that
// client attributes beyond the validated core pass through to storage.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_ORDER_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"order_id": order.OrderID}, "Order created successfully")
}
