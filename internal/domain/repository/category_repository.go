package repository

import (
	"context"

	"dealzpark/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category and fills in its generated ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindByName retrieves a category whose name equals name, ignoring case.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List retrieves every category ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
}
