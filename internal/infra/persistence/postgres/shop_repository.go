// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dealzpark/internal/domain/entity"
	domainerrors "dealzpark/internal/domain/errors"
	"dealzpark/internal/domain/repository"
	"dealzpark/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID

	return nil
}

// FindByID retrieves a shop by its ID.
func (repo *shopRepository) FindByID(ctx context.Context, id int64) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// List retrieves every shop in storage order.
func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Delete removes a shop by its ID. Offers are removed by the ON DELETE CASCADE constraint.
func (repo *shopRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShopModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:             data.ID,
		ShopName:       data.ShopName,
		NID:            data.NID,
		TradeLicense:   data.TradeLicense,
		ProductDetails: data.ProductDetails,
		Location:       data.Location,
		Address:        data.Address,
		ShopType:       data.ShopType,
		Offers:         []*entity.Offer{},
	}
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:             data.ID,
		ShopName:       data.ShopName,
		NID:            data.NID,
		TradeLicense:   data.TradeLicense,
		ProductDetails: data.ProductDetails,
		Location:       data.Location,
		Address:        data.Address,
		ShopType:       data.ShopType,
	}
}
