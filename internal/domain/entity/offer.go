package entity

import (
	"strings"
	"time"
)

// AllCategories is the category filter token that disables filtering.
const AllCategories = "all"

// UnknownShopName is reported for an offer whose shop cannot be resolved.
const UnknownShopName = "N/A"

// Offer is a time-bounded promotional discount posted by a shop under a category.
type Offer struct {
	ID                  int64     `json:"id"`
	PromotionalTitle    string    `json:"promotionalTitle"`
	PromotionalImageURL *string   `json:"promotionalImageUrl"`
	DiscountPercentage  int       `json:"discountPercentage"`
	ProductImageURL     *string   `json:"productImageUrl"`
	ValidFrom           time.Time `json:"validFrom"`
	ValidTo             time.Time `json:"validTo"`
	CreatedAt           time.Time `json:"createdAt"`
	Category            string    `json:"category"` // Canonical category name at creation time.
	ShopID              int64     `json:"shopId"`
	Shop                *Shop     `json:"-"` // Owning shop, nil when not loaded or missing.
}

// OfferView is the enriched offer representation carrying the owning shop's name.
type OfferView struct {
	ID                  int64     `json:"id"`
	PromotionalTitle    string    `json:"promotionalTitle"`
	PromotionalImageURL *string   `json:"promotionalImageUrl"`
	DiscountPercentage  int       `json:"discountPercentage"`
	ProductImageURL     *string   `json:"productImageUrl"`
	ValidFrom           time.Time `json:"validFrom"`
	ValidTo             time.Time `json:"validTo"`
	CreatedAt           time.Time `json:"createdAt"`
	Category            string    `json:"category"`
	ShopID              int64     `json:"shopId"`
	ShopName            string    `json:"shopName"`
}

// NewOfferView projects an offer and its shop into the enriched representation.
// A nil shop yields UnknownShopName.
func NewOfferView(offer *Offer, shop *Shop) *OfferView {
	shopName := UnknownShopName
	if shop != nil {
		shopName = shop.ShopName
	}

	return &OfferView{
		ID:                  offer.ID,
		PromotionalTitle:    offer.PromotionalTitle,
		PromotionalImageURL: offer.PromotionalImageURL,
		DiscountPercentage:  offer.DiscountPercentage,
		ProductImageURL:     offer.ProductImageURL,
		ValidFrom:           offer.ValidFrom,
		ValidTo:             offer.ValidTo,
		CreatedAt:           offer.CreatedAt,
		Category:            offer.Category,
		ShopID:              offer.ShopID,
		ShopName:            shopName,
	}
}

// NormalizeCategoryFilter trims the filter and reports whether it selects a single category.
// Empty input and the "all" token (any casing) select every category.
func NormalizeCategoryFilter(filter string) (string, bool) {
	trimmed := strings.TrimSpace(filter)
	if trimmed == "" || strings.EqualFold(trimmed, AllCategories) {
		return "", false
	}

	return trimmed, true
}
