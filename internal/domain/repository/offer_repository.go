package repository

import (
	"context"

	"dealzpark/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for offer persistence.
var (
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("offer not found")
)

// OfferFilter narrows an offer listing.
type OfferFilter struct {
	// Category, when non-empty, keeps offers whose category equals it ignoring case.
	Category string
}

// OfferRepository defines the interface for offer-related database operations.
type OfferRepository interface {
	// Create persists a new offer and fills in its generated ID.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByIDWithShop retrieves an offer with its shop loaded; Shop is nil when it cannot be resolved.
	FindByIDWithShop(ctx context.Context, id int64) (*entity.Offer, error)

	// ListWithShop retrieves offers with their shops loaded, newest first and then largest discount first.
	ListWithShop(ctx context.Context, filter OfferFilter) ([]*entity.Offer, error)
}
