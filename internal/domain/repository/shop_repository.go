// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealzpark/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
)

// ShopRepository defines the interface for shop-related database operations.
type ShopRepository interface {
	// Create persists a new shop and fills in its generated ID.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its ID without its offers.
	FindByID(ctx context.Context, id int64) (*entity.Shop, error)

	// List retrieves every shop in storage order.
	List(ctx context.Context) ([]*entity.Shop, error)

	// Delete removes a shop; the store cascades the deletion to its offers.
	Delete(ctx context.Context, id int64) error
}
