package usecase

import (
	"context"

	"dealzpark/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryUsecase defines the interface for category use cases
type CategoryUsecase interface {
	// ListCategories returns every category ordered by name
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory returns a single category
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)

	// CreateCategory creates a category whose name is unique ignoring case
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
}
