package usecase

import (
	"context"
	"time"

	"dealzpark/internal/domain/entity"
)

// CreateOfferInput defines the data required to post an offer.
type CreateOfferInput struct {
	PromotionalTitle    string    `json:"promotionalTitle" validate:"required,notblank,max=200"`
	PromotionalImageURL *string   `json:"promotionalImageUrl"`
	DiscountPercentage  int       `json:"discountPercentage" validate:"min=0,max=100"`
	ProductImageURL     *string   `json:"productImageUrl"`
	ValidFrom           time.Time `json:"validFrom" validate:"required"`
	ValidTo             time.Time `json:"validTo" validate:"required"`
	Category            string    `json:"category" validate:"required,notblank,max=100"`
	ShopID              int64     `json:"shopId" validate:"gt=0"`
}

// OfferUsecase defines the interface for offer use cases
type OfferUsecase interface {
	// CreateOffer validates and persists an offer, returning it with its shop name
	CreateOffer(ctx context.Context, input *CreateOfferInput) (*entity.OfferView, error)

	// GetOffer returns an offer with its shop name
	GetOffer(ctx context.Context, id int64) (*entity.OfferView, error)

	// ListOffers returns offers newest first, then largest discount first.
	// An empty category or "all" lists every category.
	ListOffers(ctx context.Context, category string) ([]*entity.OfferView, error)
}
