package impl

import (
	"context"
	"testing"
	"time"

	"dealzpark/internal/domain/entity"
	domainerrors "dealzpark/internal/domain/errors"
	"dealzpark/internal/domain/repository"
	mockRepo "dealzpark/internal/mocks/repository"
	"dealzpark/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service   usecase.OfferUsecase
	txManager *mockRepo.MockTransactionManager
	offerRepo *mockRepo.MockOfferRepository
}

// offerTxRepos are the repositories handed out inside a CreateOffer transaction.
type offerTxRepos struct {
	categoryRepo *mockRepo.MockCategoryRepository
	shopRepo     *mockRepo.MockShopRepository
	offerRepo    *mockRepo.MockOfferRepository
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)

	service := NewOfferService(OfferServiceParams{
		TxManager: txManager,
		OfferRepo: offerRepo,
		Logger:    newDiscardLogger(),
	})

	return offerServiceFixtures{
		service:   service,
		txManager: txManager,
		offerRepo: offerRepo,
	}
}

func expectOfferTx(t *testing.T, fx offerServiceFixtures, ctx context.Context) offerTxRepos {
	repos := offerTxRepos{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		offerRepo:    mockRepo.NewMockOfferRepository(t),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().CategoryRepo().Return(repos.categoryRepo).Maybe()
			factory.EXPECT().ShopRepo().Return(repos.shopRepo).Maybe()
			factory.EXPECT().OfferRepo().Return(repos.offerRepo).Maybe()

			return fn(factory)
		})

	return repos
}

func validOfferInput() *usecase.CreateOfferInput {
	dhaka := time.FixedZone("BDT", 6*60*60)

	return &usecase.CreateOfferInput{
		PromotionalTitle:   "Eid Sale",
		DiscountPercentage: 25,
		ValidFrom:          time.Date(2025, 6, 1, 9, 0, 0, 0, dhaka),
		ValidTo:            time.Date(2025, 6, 10, 21, 0, 0, 0, dhaka),
		Category:           "electronics",
		ShopID:             1,
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	repos := expectOfferTx(t, fx, ctx)
	input := validOfferInput()
	input.ValidFrom = input.ValidFrom.Add(1500 * time.Nanosecond)

	repos.categoryRepo.EXPECT().
		FindByName(ctx, "electronics").
		Return(&entity.Category{ID: 2, Name: "Electronics"}, nil)
	repos.shopRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Shop{ID: 1, ShopName: "Gadget World"}, nil)

	var stored *entity.Offer
	repos.offerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(ctx context.Context, offer *entity.Offer) {
			offer.ID = 11
			stored = offer
		}).
		Return(nil)

	before := time.Now().UTC().Truncate(time.Microsecond)
	view, err := fx.service.CreateOffer(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, int64(11), view.ID)
	assert.Equal(t, "Electronics", view.Category)
	assert.Equal(t, "Electronics", stored.Category)
	assert.Equal(t, "Gadget World", view.ShopName)
	assert.Equal(t, time.UTC, view.ValidFrom.Location())
	assert.True(t, input.ValidFrom.Add(-500*time.Nanosecond).Equal(view.ValidFrom))
	assert.Equal(t, time.UTC, view.ValidTo.Location())
	assert.Equal(t, time.UTC, view.CreatedAt.Location())
	assert.False(t, view.CreatedAt.Before(before))
	assert.Zero(t, view.CreatedAt.Nanosecond()%int(time.Microsecond))
	assert.Equal(t, stored.CreatedAt, view.CreatedAt)
}

func TestOfferService_CreateOffer_UnknownCategory(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	repos := expectOfferTx(t, fx, ctx)

	repos.categoryRepo.EXPECT().
		FindByName(ctx, "electronics").
		Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateOffer(ctx, validOfferInput())
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "category", validationErr.Fields()[0].Field)
	assert.Equal(t, "category does not exist", validationErr.Fields()[0].Message)
}

func TestOfferService_CreateOffer_UnknownShop(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	repos := expectOfferTx(t, fx, ctx)

	repos.categoryRepo.EXPECT().
		FindByName(ctx, "electronics").
		Return(&entity.Category{ID: 2, Name: "Electronics"}, nil)
	repos.shopRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.CreateOffer(ctx, validOfferInput())
	assert.Equal(t, domainerrors.ErrShopNotFound, err)
}

func TestOfferService_CreateOffer_DiscountBounds(t *testing.T) {
	for _, discount := range []int{-1, 101} {
		t.Run("rejects", func(t *testing.T) {
			fx := createTestOfferService(t)
			input := validOfferInput()
			input.DiscountPercentage = discount

			_, err := fx.service.CreateOffer(context.Background(), input)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "discount %d", discount)
			assert.Equal(t, "discountPercentage", validationErr.Fields()[0].Field)
		})
	}

	for _, discount := range []int{0, 100} {
		t.Run("accepts", func(t *testing.T) {
			fx := createTestOfferService(t)
			ctx := context.Background()
			repos := expectOfferTx(t, fx, ctx)
			input := validOfferInput()
			input.DiscountPercentage = discount

			repos.categoryRepo.EXPECT().FindByName(ctx, "electronics").Return(&entity.Category{Name: "Electronics"}, nil)
			repos.shopRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Shop{ID: 1, ShopName: "Gadget World"}, nil)
			repos.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

			view, err := fx.service.CreateOffer(ctx, input)
			require.NoError(t, err)
			assert.Equal(t, discount, view.DiscountPercentage)
		})
	}
}

func TestOfferService_CreateOffer_MissingFields(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.CreateOffer(context.Background(), &usecase.CreateOfferInput{Category: "   "})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"promotionalTitle", "validFrom", "validTo", "category", "shopId"}, fields)
}

func TestOfferService_CreateOffer_BlankTitle(t *testing.T) {
	fx := createTestOfferService(t)

	input := validOfferInput()
	input.PromotionalTitle = "   "

	_, err := fx.service.CreateOffer(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "promotionalTitle", validationErr.Fields()[0].Field)
	assert.Equal(t, "notblank", validationErr.Fields()[0].Rule)
}

func TestOfferService_GetOffer(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().FindByIDWithShop(ctx, int64(1)).Return(&entity.Offer{
		ID:       1,
		Category: "Food",
		ShopID:   3,
		Shop:     &entity.Shop{ID: 3, ShopName: "Biryani House"},
	}, nil)

	view, err := fx.service.GetOffer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Biryani House", view.ShopName)
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().FindByIDWithShop(ctx, int64(1)).Return(nil, repository.ErrOfferNotFound)
	fx.offerRepo.EXPECT().FindByIDWithShop(ctx, int64(2)).Return(&entity.Offer{ID: 2, ShopID: 99}, nil)

	_, err := fx.service.GetOffer(ctx, 1)
	assert.Equal(t, domainerrors.ErrOfferNotFound, err)

	_, err = fx.service.GetOffer(ctx, 2)
	assert.Equal(t, domainerrors.ErrOfferNotFound, err)
}

func TestOfferService_ListOffers_AllTokens(t *testing.T) {
	for _, category := range []string{"", "   ", "all", "ALL", " All "} {
		t.Run(category, func(t *testing.T) {
			fx := createTestOfferService(t)
			ctx := context.Background()

			fx.offerRepo.EXPECT().
				ListWithShop(ctx, repository.OfferFilter{}).
				Return([]*entity.Offer{}, nil)

			views, err := fx.service.ListOffers(ctx, category)
			require.NoError(t, err)
			assert.Empty(t, views)
		})
	}
}

func TestOfferService_ListOffers_FilterAndSentinel(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().
		ListWithShop(ctx, repository.OfferFilter{Category: "electronics"}).
		Return([]*entity.Offer{
			{ID: 2, Category: "Electronics", ShopID: 1, Shop: &entity.Shop{ID: 1, ShopName: "Gadget World"}},
			{ID: 1, Category: "Electronics", ShopID: 9},
		}, nil)

	views, err := fx.service.ListOffers(ctx, " electronics ")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Gadget World", views[0].ShopName)
	assert.Equal(t, entity.UnknownShopName, views[1].ShopName)
}

func TestOfferService_ListOffers_RepositoryError(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().
		ListWithShop(ctx, repository.OfferFilter{}).
		Return(nil, errors.New("database error"))

	_, err := fx.service.ListOffers(ctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list offers")
}
