// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealzpark/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	ShopHandler     *handler.ShopHandler
	OfferHandler    *handler.OfferHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler *handler.CategoryHandler
	shopHandler     *handler.ShopHandler
	offerHandler    *handler.OfferHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler: params.CategoryHandler,
		shopHandler:     params.ShopHandler,
		offerHandler:    params.OfferHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	categoriesGroup := e.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
	}

	shopsGroup := e.Group("/shops")
	{
		shopsGroup.POST("/register", r.shopHandler.RegisterShop)
		shopsGroup.GET("", r.shopHandler.ListShops)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
	}

	offersGroup := e.Group("/offers")
	{
		offersGroup.POST("", r.offerHandler.CreateOffer)
		offersGroup.GET("", r.offerHandler.ListOffers)
		offersGroup.GET("/:id", r.offerHandler.GetOffer)
	}
}
