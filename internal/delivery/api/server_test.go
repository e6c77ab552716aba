package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealzpark/config"
	"dealzpark/internal/delivery/api/router"
	"dealzpark/internal/delivery/api/router/handler"
	"dealzpark/internal/domain/entity"
	domainerrors "dealzpark/internal/domain/errors"
	mockUsecase "dealzpark/internal/mocks/usecase"
	"dealzpark/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type apiFixtures struct {
	echo       *echo.Echo
	categoryUC *mockUsecase.MockCategoryUsecase
	shopUC     *mockUsecase.MockShopUsecase
	offerUC    *mockUsecase.MockOfferUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.CORS.AllowOrigins = []string{"http://localhost:3000"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := newEcho(cfg, logger, noop.NewTracerProvider())

	categoryUC := mockUsecase.NewMockCategoryUsecase(t)
	shopUC := mockUsecase.NewMockShopUsecase(t)
	offerUC := mockUsecase.NewMockOfferUsecase(t)

	router.NewRouter(router.RouterParams{
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: categoryUC}),
		ShopHandler:     handler.NewShopHandler(handler.ShopHandlerParams{ShopUC: shopUC}),
		OfferHandler:    handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: offerUC}),
	}).RegisterRoutes(e)

	return apiFixtures{
		echo:       e,
		categoryUC: categoryUC,
		shopUC:     shopUC,
		offerUC:    offerUC,
	}
}

func (fx apiFixtures) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_HealthCheck(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), env.Meta.RequestID)
}

func TestAPI_RequestIDIsPropagated(t *testing.T) {
	fx := createTestAPI(t)
	fx.categoryUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{}, nil)

	rec := fx.do(http.MethodGet, "/categories", "", echo.HeaderXRequestID, "req-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "req-123", decode(t, rec).Meta.RequestID)
}

func TestAPI_ListCategories(t *testing.T) {
	fx := createTestAPI(t)
	seededAt := time.Date(2025, 5, 28, 11, 44, 1, 0, time.UTC)

	fx.categoryUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{
		{ID: 2, Name: "Electronics", CreatedAt: seededAt},
		{ID: 1, Name: "Fashion", CreatedAt: seededAt},
	}, nil)

	rec := fx.do(http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.JSONEq(t, `[
		{"id":2,"name":"Electronics","createdAt":"2025-05-28T11:44:01Z"},
		{"id":1,"name":"Fashion","createdAt":"2025-05-28T11:44:01Z"}
	]`, string(env.Data))
}

func TestAPI_GetCategory(t *testing.T) {
	fx := createTestAPI(t)

	fx.categoryUC.EXPECT().GetCategory(mock.Anything, int64(4)).Return(&entity.Category{ID: 4, Name: "Sports"}, nil)
	fx.categoryUC.EXPECT().GetCategory(mock.Anything, int64(9)).Return(nil, domainerrors.ErrCategoryNotFound)

	rec := fx.do(http.MethodGet, "/categories/4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var category map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &category))
	assert.Equal(t, "Sports", category["name"])

	rec = fx.do(http.MethodGet, "/categories/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/categories/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_CreateCategory(t *testing.T) {
	fx := createTestAPI(t)
	createdAt := time.Date(2025, 5, 28, 11, 44, 1, 0, time.UTC)

	fx.categoryUC.EXPECT().
		CreateCategory(mock.Anything, &usecase.CreateCategoryInput{Name: "Toys"}).
		Return(&entity.Category{ID: 5, Name: "Toys", CreatedAt: createdAt}, nil)

	rec := fx.do(http.MethodPost, "/categories", `{"name":"Toys"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/categories/5", rec.Header().Get(echo.HeaderLocation))
	assert.JSONEq(t, `{"id":5,"name":"Toys","createdAt":"2025-05-28T11:44:01Z"}`, string(decode(t, rec).Data))
}

func TestAPI_CreateCategory_Duplicate(t *testing.T) {
	fx := createTestAPI(t)

	fx.categoryUC.EXPECT().
		CreateCategory(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCategoryAlreadyExists.WithDetails(`category "Fashion" already exists`))

	rec := fx.do(http.MethodPost, "/categories", `{"name":"fashion"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CATEGORY_ALREADY_EXISTS", env.Error.Code)
	assert.JSONEq(t, `"category \"Fashion\" already exists"`, string(env.Error.Details))
}

func TestAPI_CreateCategory_MalformedBody(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/categories", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestAPI_RegisterShop_ValidationDetails(t *testing.T) {
	fx := createTestAPI(t)

	fx.shopUC.EXPECT().
		RegisterShop(mock.Anything, mock.AnythingOfType("*usecase.RegisterShopInput")).
		Return(nil, domainerrors.NewValidationError(
			domainerrors.FieldError{Field: "shopName", Rule: "required", Message: "shopName is required"},
			domainerrors.FieldError{Field: "nid", Rule: "required", Message: "nid is required"},
		))

	rec := fx.do(http.MethodPost, "/shops/register", `{"address":"Road 2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `[
		{"field":"shopName","rule":"required","message":"shopName is required"},
		{"field":"nid","rule":"required","message":"nid is required"}
	]`, string(env.Error.Details))
}

func TestAPI_RegisterShop(t *testing.T) {
	fx := createTestAPI(t)

	fx.shopUC.EXPECT().
		RegisterShop(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterShopInput) bool {
			return in.ShopName == "Fashion Hub" && in.NID == "123" && in.ShopType == "Retail"
		})).
		Return(&entity.Shop{ID: 3, ShopName: "Fashion Hub", NID: "123", ShopType: "Retail", Offers: []*entity.Offer{}}, nil)

	rec := fx.do(http.MethodPost, "/shops/register",
		`{"shopName":"Fashion Hub","nid":"123","tradeLicense":"TL","address":"Road 2","shopType":"Retail"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/shops/3", rec.Header().Get(echo.HeaderLocation))

	var shop map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &shop))
	assert.Equal(t, []any{}, shop["offers"])
}

func TestAPI_GetShop(t *testing.T) {
	fx := createTestAPI(t)

	fx.shopUC.EXPECT().GetShop(mock.Anything, int64(7)).Return(nil, domainerrors.ErrShopNotFound)

	rec := fx.do(http.MethodGet, "/shops/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SHOP_NOT_FOUND", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/shops/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_ListShops(t *testing.T) {
	fx := createTestAPI(t)

	fx.shopUC.EXPECT().ListShops(mock.Anything).Return([]*entity.Shop{
		{ID: 1, ShopName: "Fashion Hub"},
		{ID: 2, ShopName: "Gadget World"},
	}, nil)

	rec := fx.do(http.MethodGet, "/shops", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var shops []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &shops))
	require.Len(t, shops, 2)
	assert.Equal(t, "Fashion Hub", shops[0]["shopName"])
	assert.Equal(t, "Gadget World", shops[1]["shopName"])
}

func TestAPI_GetOffer(t *testing.T) {
	fx := createTestAPI(t)

	fx.offerUC.EXPECT().GetOffer(mock.Anything, int64(5)).Return(&entity.OfferView{
		ID:       5,
		Category: "Food",
		ShopID:   3,
		ShopName: "Biryani House",
	}, nil)
	fx.offerUC.EXPECT().GetOffer(mock.Anything, int64(6)).Return(nil, domainerrors.ErrOfferNotFound)

	rec := fx.do(http.MethodGet, "/offers/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var offer map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &offer))
	assert.Equal(t, "Biryani House", offer["shopName"])
	assert.EqualValues(t, 3, offer["shopId"])

	rec = fx.do(http.MethodGet, "/offers/6", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "OFFER_NOT_FOUND", env.Error.Code)
	assert.Empty(t, env.Data)
}

func TestAPI_CreateOffer_MissingDates(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/offers", `{"promotionalTitle":"Eid Sale","category":"Fashion","shopId":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var fields []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, "validFrom", fields[0].Field)
	assert.Equal(t, "validTo", fields[1].Field)
}

func TestAPI_CreateOffer_MalformedDates(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/offers",
		`{"promotionalTitle":"Eid Sale","category":"Fashion","shopId":1,"validFrom":"2025-06-01T00:00:00","validTo":"next week"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var fields []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, domainerrors.FieldError{
		Field:   "validFrom",
		Rule:    "datetime",
		Message: "validFrom must be an RFC 3339 timestamp",
	}, fields[0])
	assert.Equal(t, "validTo", fields[1].Field)
	assert.Equal(t, "datetime", fields[1].Rule)
}

func TestAPI_CreateOffer(t *testing.T) {
	fx := createTestAPI(t)
	validFrom := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

	fx.offerUC.EXPECT().
		CreateOffer(mock.Anything, mock.MatchedBy(func(in *usecase.CreateOfferInput) bool {
			return in.ValidFrom.Equal(validFrom) && in.DiscountPercentage == 25 && in.ProductImageURL == nil
		})).
		Return(&entity.OfferView{ID: 9, PromotionalTitle: "Eid Sale", Category: "Fashion", ShopID: 1, ShopName: "Fashion Hub"}, nil)

	rec := fx.do(http.MethodPost, "/offers", `{
		"promotionalTitle":"Eid Sale",
		"discountPercentage":25,
		"validFrom":"2025-06-01T09:00:00+06:00",
		"validTo":"2025-06-10T21:00:00+06:00",
		"category":"fashion",
		"shopId":1
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/offers/9", rec.Header().Get(echo.HeaderLocation))

	var offer map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &offer))
	assert.Equal(t, "Fashion Hub", offer["shopName"])
	assert.Contains(t, offer, "promotionalImageUrl")
	assert.Nil(t, offer["promotionalImageUrl"])
}

func TestAPI_ListOffers_PassesCategory(t *testing.T) {
	fx := createTestAPI(t)

	fx.offerUC.EXPECT().
		ListOffers(mock.Anything, "ALL").
		Return([]*entity.OfferView{{ID: 1, ShopName: entity.UnknownShopName}}, nil)

	rec := fx.do(http.MethodGet, "/offers?category=ALL", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var offers []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &offers))
	require.Len(t, offers, 1)
	assert.Equal(t, "N/A", offers[0]["shopName"])
}

func TestAPI_ListOffers_NoCategory(t *testing.T) {
	fx := createTestAPI(t)

	fx.offerUC.EXPECT().ListOffers(mock.Anything, "").Return([]*entity.OfferView{}, nil)

	rec := fx.do(http.MethodGet, "/offers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestAPI_ServerErrorsHideDetails(t *testing.T) {
	fx := createTestAPI(t)

	fx.offerUC.EXPECT().
		GetOffer(mock.Anything, int64(1)).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find offer"))
	fx.offerUC.EXPECT().
		GetOffer(mock.Anything, int64(2)).
		Return(nil, errors.New("unexpected"))

	rec := fx.do(http.MethodGet, "/offers/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	rec = fx.do(http.MethodGet, "/offers/2", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env = decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Equal(t, "Internal server error, please try again later", env.Error.Message)
	assert.NotContains(t, rec.Body.String(), "unexpected")
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/coupons", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}

func TestAPI_CORS(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodOptions, "/offers", "",
		echo.HeaderOrigin, "http://localhost:3000",
		echo.HeaderAccessControlRequestMethod, http.MethodPost,
	)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	fx.offerUC.EXPECT().ListOffers(mock.Anything, "").Return([]*entity.OfferView{}, nil)
	rec = fx.do(http.MethodGet, "/offers", "", echo.HeaderOrigin, "http://evil.example")
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
