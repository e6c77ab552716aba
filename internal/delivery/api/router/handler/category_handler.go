package handler

import (
	"net/http"
	"strconv"

	"dealzpark/internal/delivery/api/response"
	"dealzpark/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler holds dependencies for category-related handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetCategory handles GET /categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "/categories/"+strconv.FormatInt(category.ID, 10), category)
}
