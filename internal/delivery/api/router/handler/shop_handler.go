package handler

import (
	"net/http"
	"strconv"

	"dealzpark/internal/delivery/api/response"
	"dealzpark/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
	}
}

// RegisterShopRequest represents the request body for registering a shop.
// Field rules are enforced by the shop use case so every failing field is reported together.
type RegisterShopRequest struct {
	ShopName       string `json:"shopName"`
	NID            string `json:"nid"`
	TradeLicense   string `json:"tradeLicense"`
	ProductDetails string `json:"productDetails"`
	Location       string `json:"location"`
	Address        string `json:"address"`
	ShopType       string `json:"shopType"`
}

// RegisterShop handles POST /shops/register
func (h *ShopHandler) RegisterShop(c echo.Context) error {
	var req RegisterShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid shop input")
	}

	shop, err := h.shopUC.RegisterShop(c.Request().Context(), &usecase.RegisterShopInput{
		ShopName:       req.ShopName,
		NID:            req.NID,
		TradeLicense:   req.TradeLicense,
		ProductDetails: req.ProductDetails,
		Location:       req.Location,
		Address:        req.Address,
		ShopType:       req.ShopType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "/shops/"+strconv.FormatInt(shop.ID, 10), shop)
}

// GetShop handles GET /shops/:id
func (h *ShopHandler) GetShop(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ListShops handles GET /shops
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}
