// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "dealzpark/internal/delivery/context"
	"dealzpark/internal/domain/entity"
	domainerrors "dealzpark/internal/domain/errors"
	"dealzpark/internal/domain/repository"
	"dealzpark/internal/errors"
	"dealzpark/internal/usecase"

	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns a single category.
func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return category, nil
}

// CreateCategory trims the name, rejects case-insensitive duplicates, and persists the category.
// The lookup and the insert share a transaction at the store's default isolation, so two
// concurrent creates of the same new name can both succeed.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	normalized := &usecase.CreateCategoryInput{Name: strings.TrimSpace(input.Name)}
	if err := usecase.ValidateInput(normalized); err != nil {
		return nil, err
	}

	var created *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		existing, err := categoryRepo.FindByName(ctx, normalized.Name)
		if err == nil {
			return domainerrors.ErrCategoryAlreadyExists.WithDetails(
				fmt.Sprintf("category %q already exists", existing.Name))
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to find category by name")
		}

		category := &entity.Category{
			Name:      normalized.Name,
			CreatedAt: storedTime(time.Now()),
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}
		created = category

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created",
		slog.Int64("category_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}
