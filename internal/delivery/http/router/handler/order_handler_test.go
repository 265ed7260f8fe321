package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/errors"
	mockUsecase "dashboard/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := &OrderHandler{
		orderUC: uc,
		logger:  slog.New(slog.DiscardHandler),
	}

	return h, uc
}

func TestOrderHandler_CreateOrder_Success(t *testing.T) {
	h, uc := newTestOrderHandler(t)

	body := `{
		"product_id": "prod-1",
		"product_name": "Trail Jacket",
		"product_quantity": 2,
		"product_price": 120,
		"product_discount": 10,
		"product_variant": [{"name": "Size", "option": "M"}],
		"product_image": "https://cdn/a.jpg",
		"gift_wrap": true
	}`
	c, rec := newJSONContext(http.MethodPost, "/orders", body)

	uc.EXPECT().
		CreateOrder(mock.Anything, mock.AnythingOfType("map[string]interface {}")).
		Run(func(_ context.Context, payload map[string]interface{}) {
			// The free-form extras reach the use case untouched.
			assert.Equal(t, true, payload["gift_wrap"])
		}).
		Return(&entity.Order{OrderID: "order-1"}, nil)

	err := h.CreateOrder(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "order-1")

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)
}

func TestOrderHandler_CreateOrder_InvalidPayload(t *testing.T) {
	h, uc := newTestOrderHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/orders", `{"product_id": "prod-1"}`)

	uc.EXPECT().
		CreateOrder(mock.Anything, mock.AnythingOfType("map[string]interface {}")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidOrderInput, "product_name is required"))

	err := h.CreateOrder(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ORDER_INPUT", resp.Error.Code)
}

func TestOrderHandler_CreateOrder_MalformedJSON(t *testing.T) {
	h, uc := newTestOrderHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/orders", `{not json`)

	err := h.CreateOrder(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}
