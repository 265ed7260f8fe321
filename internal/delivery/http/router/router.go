// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dashboard/internal/delivery/http/router/handler"
	"dashboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:product_id", r.productHandler.GetProduct)
		productGroup.PUT("/:product_id", r.productHandler.UpdateProduct)
	}

	// Order intake
	e.POST("/orders", r.orderHandler.CreateOrder)
}
