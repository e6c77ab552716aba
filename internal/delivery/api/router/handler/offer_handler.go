package handler

import (
	"net/http"
	"strconv"

	"dealzpark/internal/delivery/api/response"
	"dealzpark/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
}

// OfferHandler holds dependencies for offer-related handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
	}
}

// CreateOfferRequest represents the request body for posting an offer.
// Dates arrive as RFC 3339 strings so a malformed one is reported against its field.
type CreateOfferRequest struct {
	PromotionalTitle    string  `json:"promotionalTitle"`
	PromotionalImageURL *string `json:"promotionalImageUrl"`
	DiscountPercentage  int     `json:"discountPercentage"`
	ProductImageURL     *string `json:"productImageUrl"`
	ValidFrom           string  `json:"validFrom" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ValidTo             string  `json:"validTo" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Category            string  `json:"category"`
	ShopID              int64   `json:"shopId"`
}

// ListOffersQuery holds the optional listing filter
type ListOffersQuery struct {
	Category string `query:"category"`
}

// CreateOffer handles POST /offers
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	validFrom, err := parseTimestamp("validFrom", req.ValidFrom)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	validTo, err := parseTimestamp("validTo", req.ValidTo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), &usecase.CreateOfferInput{
		PromotionalTitle:    req.PromotionalTitle,
		PromotionalImageURL: req.PromotionalImageURL,
		DiscountPercentage:  req.DiscountPercentage,
		ProductImageURL:     req.ProductImageURL,
		ValidFrom:           validFrom,
		ValidTo:             validTo,
		Category:            req.Category,
		ShopID:              req.ShopID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "/offers/"+strconv.FormatInt(offer.ID, 10), offer)
}

// GetOffer handles GET /offers/:id
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// ListOffers handles GET /offers?category=
func (h *OfferHandler) ListOffers(c echo.Context) error {
	var query ListOffersQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid offer query")
	}

	offers, err := h.offerUC.ListOffers(c.Request().Context(), query.Category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers)
}
