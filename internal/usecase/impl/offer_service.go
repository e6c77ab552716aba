package impl

import (
	"context"
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

type offerService struct {
	txManager repository.TransactionManager
	offerRepo repository.OfferRepository
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OfferRepo repository.OfferRepository
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager: params.TxManager,
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer validates the offer, resolves its category and shop, and persists it.
// The offer keeps the category's canonical casing.
func (srv *offerService) CreateOffer(ctx context.Context, input *usecase.CreateOfferInput) (*entity.OfferView, error) {
	normalized := *input
	normalized.Category = strings.TrimSpace(input.Category)
	if err := usecase.ValidateInput(&normalized); err != nil {
		return nil, err
	}

	var view *entity.OfferView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.CategoryRepo().FindByName(ctx, normalized.Category)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.NewFieldError("category", "exists", "category does not exist")
			}

			return errors.Wrap(err, "failed to find category by name")
		}

		shop, err := repoFactory.ShopRepo().FindByID(ctx, normalized.ShopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to find shop by ID")
		}

		offer := &entity.Offer{
			PromotionalTitle:    normalized.PromotionalTitle,
			PromotionalImageURL: normalized.PromotionalImageURL,
			DiscountPercentage:  normalized.DiscountPercentage,
			ProductImageURL:     normalized.ProductImageURL,
			ValidFrom:           storedTime(normalized.ValidFrom),
			ValidTo:             storedTime(normalized.ValidTo),
			CreatedAt:           storedTime(time.Now()),
			Category:            category.Name,
			ShopID:              shop.ID,
		}
		if err := repoFactory.OfferRepo().Create(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		view = entity.NewOfferView(offer, shop)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Offer created",
		slog.Int64("offer_id", view.ID),
		slog.Int64("shop_id", view.ShopID),
		slog.String("category", view.Category),
	)

	return view, nil
}

// GetOffer returns an offer with its shop name. An offer whose shop is gone is not found.
func (srv *offerService) GetOffer(ctx context.Context, id int64) (*entity.OfferView, error) {
	offer, err := srv.offerRepo.FindByIDWithShop(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	if offer.Shop == nil {
		return nil, domainerrors.ErrOfferNotFound
	}

	return entity.NewOfferView(offer, offer.Shop), nil
}

// ListOffers returns offers newest first, then largest discount first, expired ones included.
func (srv *offerService) ListOffers(ctx context.Context, category string) ([]*entity.OfferView, error) {
	var filter repository.OfferFilter
	if name, ok := entity.NormalizeCategoryFilter(category); ok {
		filter.Category = name
	}

	offers, err := srv.offerRepo.ListWithShop(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	views := make([]*entity.OfferView, 0, len(offers))
	for _, offer := range offers {
		if offer.Shop == nil {
			srv.log(ctx).Warn("Offer shop could not be resolved",
				slog.Int64("offer_id", offer.ID),
				slog.Int64("shop_id", offer.ShopID),
			)
		}
		views = append(views, entity.NewOfferView(offer, offer.Shop))
	}

	return views, nil
}
