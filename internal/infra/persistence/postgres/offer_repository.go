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

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Omit("Shop").Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID

	return nil
}

// FindByIDWithShop retrieves an offer by ID with its shop preloaded.
func (repo *offerRepository) FindByIDWithShop(ctx context.Context, id int64) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Shop").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// ListWithShop retrieves offers ordered by creation time, then discount, both descending.
// Expired offers are included.
func (repo *offerRepository) ListWithShop(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	query := repo.db.WithContext(ctx).Preload("Shop")
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}

	if err := query.
		Order("created_at DESC").
		Order("discount_percentage DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:                  data.ID,
		PromotionalTitle:    data.PromotionalTitle,
		PromotionalImageURL: data.PromotionalImageURL,
		DiscountPercentage:  data.DiscountPercentage,
		ProductImageURL:     data.ProductImageURL,
		ValidFrom:           data.ValidFrom.UTC(),
		ValidTo:             data.ValidTo.UTC(),
		CreatedAt:           data.CreatedAt.UTC(),
		Category:            data.Category,
		ShopID:              data.ShopID,
		Shop:                toShopDomain(data.Shop),
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:                  data.ID,
		PromotionalTitle:    data.PromotionalTitle,
		PromotionalImageURL: data.PromotionalImageURL,
		DiscountPercentage:  data.DiscountPercentage,
		ProductImageURL:     data.ProductImageURL,
		ValidFrom:           data.ValidFrom,
		ValidTo:             data.ValidTo,
		CreatedAt:           data.CreatedAt,
		Category:            data.Category,
		ShopID:              data.ShopID,
	}
}
