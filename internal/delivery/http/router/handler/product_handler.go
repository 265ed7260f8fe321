package handler

import (
	"log/slog"
	"net/http"

	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
// Numeric required fields are pointers so that a supplied zero is
// distinguishable from an omitted field.
type CreateProductRequest struct {
	ProductName         string                  `json:"product_name" validate:"required"`
	ProductType         string                  `json:"product_type" validate:"required"`
	ProductPrice        *float64                `json:"product_price" validate:"required"`
	ProductDiscount     *float64                `json:"product_discount"`
	ProductDescriptions string                  `json:"product_descriptions" validate:"required"`
	ProductTags         []string                `json:"product_tags"`
	ProductSKU          string                  `json:"product_sku" validate:"required"`
	ProductStock        *int                    `json:"product_stock" validate:"required"`
	ProductVariants     []entity.ProductVariant `json:"product_variants"`
	ProductImages       []string                `json:"product_images" validate:"required,min=1,max=5"`
}

// UpdateProductRequest represents a sparse update payload. Every field is
// optional; absent JSON keys stay nil and are never merged.
type UpdateProductRequest struct {
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

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_PRODUCT_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateProductInput{
		ProductName:         req.ProductName,
		ProductType:         req.ProductType,
		ProductPrice:        *req.ProductPrice,
		ProductDiscount:     req.ProductDiscount,
		ProductDescriptions: req.ProductDescriptions,
		ProductTags:         req.ProductTags,
		ProductSKU:          req.ProductSKU,
		ProductStock:        *req.ProductStock,
		ProductVariants:     req.ProductVariants,
		ProductImages:       req.ProductImages,
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles PUT /products/:product_id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID := c.Param("product_id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_PRODUCT_INPUT", "Invalid product input")
	}

	input := &usecase.UpdateProductInput{
		ProductName:         req.ProductName,
		ProductType:         req.ProductType,
		ProductPrice:        req.ProductPrice,
		ProductDiscount:     req.ProductDiscount,
		ProductDescriptions: req.ProductDescriptions,
		ProductTags:         req.ProductTags,
		ProductSKU:          req.ProductSKU,
		ProductStock:        req.ProductStock,
		ProductVariants:     req.ProductVariants,
		ProductImages:       req.ProductImages,
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// GetProduct handles GET /products/:product_id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID := c.Param("product_id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
