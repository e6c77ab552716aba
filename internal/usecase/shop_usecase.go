package usecase

import (
	"context"

	"dealzpark/internal/domain/entity"
)

// RegisterShopInput defines the data required to register a shop.
type RegisterShopInput struct {
	ShopName       string `json:"shopName" validate:"required,notblank,max=100"`
	NID            string `json:"nid" validate:"required,notblank,max=50"`
	TradeLicense   string `json:"tradeLicense" validate:"required,notblank,max=100"`
	ProductDetails string `json:"productDetails" validate:"max=500"`
	Location       string `json:"location" validate:"max=100"`
	Address        string `json:"address" validate:"required,notblank,max=200"`
	ShopType       string `json:"shopType" validate:"required,notblank,max=50"`
}

// ShopUsecase defines the interface for shop use cases
type ShopUsecase interface {
	// RegisterShop validates and persists a new shop
	RegisterShop(ctx context.Context, input *RegisterShopInput) (*entity.Shop, error)

	// GetShop returns a shop without its offers
	GetShop(ctx context.Context, id int64) (*entity.Shop, error)

	// ListShops returns every shop
	ListShops(ctx context.Context) ([]*entity.Shop, error)
}
