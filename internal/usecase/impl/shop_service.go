package impl

import (
	"context"
	"log/slog"

	deliverycontext "dealzpark/internal/delivery/context"
	"dealzpark/internal/domain/entity"
	domainerrors "dealzpark/internal/domain/errors"
	"dealzpark/internal/domain/repository"
	"dealzpark/internal/errors"
	"dealzpark/internal/usecase"

	"go.uber.org/fx"
)

type shopService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Logger   *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo: params.ShopRepo,
		logger:   params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterShop validates the registration and persists the shop.
func (srv *shopService) RegisterShop(ctx context.Context, input *usecase.RegisterShopInput) (*entity.Shop, error) {
	if err := usecase.ValidateInput(input); err != nil {
		return nil, err
	}

	shop := &entity.Shop{
		ShopName:       input.ShopName,
		NID:            input.NID,
		TradeLicense:   input.TradeLicense,
		ProductDetails: input.ProductDetails,
		Location:       input.Location,
		Address:        input.Address,
		ShopType:       input.ShopType,
		Offers:         []*entity.Offer{},
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop registered",
		slog.Int64("shop_id", shop.ID),
		slog.String("shop_name", shop.ShopName),
	)

	return shop, nil
}

// GetShop returns a shop without its offers.
func (srv *shopService) GetShop(ctx context.Context, id int64) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return shop, nil
}

// ListShops returns every shop.
func (srv *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}
