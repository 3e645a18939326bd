package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// CategoryHandler handles Category CRUD operations.
type CategoryHandler struct {
	store store.Store
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(s store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

type categoryForm struct {
	Name        string `json:"name"         form:"name"         validate:"required,max=64"`
	Status      string `json:"status"       form:"status"       validate:"max=32"`
	Offer       string `json:"offer"        form:"offer"        validate:"omitempty,numeric"`
	MinAmount   string `json:"min_amount"   form:"min_amount"   validate:"omitempty,numeric"`
	MaxDiscount string `json:"max_discount" form:"max_discount" validate:"omitempty,numeric"`
	Expiry      string `json:"expiry"       form:"expiry"       validate:"omitempty,datetime=2006-01-02"`
}

// promotion returns the form's promotion, or nil when none of its fields
// were supplied.
func (f *categoryForm) promotion() *domain.Promotion {
	if f.Offer == "" && f.MinAmount == "" && f.MaxDiscount == "" && f.Expiry == "" {
		return nil
	}
	return &domain.Promotion{
		Offer:       parseAmount(f.Offer),
		MinAmount:   parseAmount(f.MinAmount),
		MaxDiscount: parseAmount(f.MaxDiscount),
		Expiry:      f.Expiry,
	}
}

// parseAmount parses a validated numeric field; blanks are 0.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// List handles GET /api/v1/admin/categories.
//
// @Summary List categories
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	cats, err := h.store.ListCategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing categories: " + err.Error(),
		})
	}

	if cats == nil {
		cats = []domain.Category{}
	}

	return c.JSON(http.StatusOK, cats)
}

// Get handles GET /api/v1/admin/categories/:id.
//
// @Summary Get a category by ID
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	cat, err := h.store.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting category", "category not found")
	}
	return c.JSON(http.StatusOK, cat)
}

// Create handles POST /api/v1/admin/categories.
//
// A promotion is attached only when at least one of offer, min_amount,
// max_discount or expiry is given.
//
// @Summary Create a category
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Param status formData string false "Active to enable the category"
// @Param offer formData number false "Promotion offer percentage"
// @Param min_amount formData number false "Minimum order amount"
// @Param max_discount formData number false "Maximum discount"
// @Param expiry formData string false "Promotion expiry (YYYY-MM-DD)"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} conflictResponse
// @Router /api/v1/admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var form categoryForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	ctx := c.Request().Context()

	name := catalog.NormalizeName(form.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name must contain letters",
		})
	}

	if existing, err := h.store.GetCategoryByName(ctx, name); err == nil {
		return c.JSON(http.StatusConflict, conflictResponse{Error: "category already exists", Category: existing})
	} else if !errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "checking category name: " + err.Error(),
		})
	}

	cat := domain.Category{
		Name:      name,
		Active:    form.Status == domain.StatusActive,
		Promotion: form.promotion(),
	}

	if err := h.store.CreateCategory(ctx, &cat); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			existing, _ := h.store.GetCategoryByName(ctx, name)
			return c.JSON(http.StatusConflict, conflictResponse{Error: "category already exists", Category: existing})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating category: " + err.Error(),
		})
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusCreated, cat)
}

// Update handles PUT /api/v1/admin/categories/:id.
//
// Omitting every promotion field clears the category's promotion.
//
// @Summary Update a category
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} conflictResponse
// @Router /api/v1/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var form categoryForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	ctx := c.Request().Context()

	cat, err := h.store.GetCategory(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting category", "category not found")
	}

	name := catalog.NormalizeName(form.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name must contain letters",
		})
	}

	if other, err := h.store.GetCategoryByName(ctx, name); err == nil && other.ID != cat.ID {
		return c.JSON(http.StatusConflict, conflictResponse{Error: "category already exists", Category: cat})
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "checking category name: " + err.Error(),
		})
	}

	cat.Name = name
	cat.Active = form.Status == domain.StatusActive
	cat.Promotion = form.promotion()

	if err := h.store.UpdateCategory(ctx, cat); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, conflictResponse{Error: "category already exists", Category: cat})
		}
		return storeErrorJSON(c, err, "updating category", "category not found")
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, cat)
}

// Delete handles DELETE /api/v1/admin/categories/:id.
//
// @Summary Delete a category
// @Tags admin
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.store.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return storeErrorJSON(c, err, "deleting category", "category not found")
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// RegisterCategoryRoutes registers admin category endpoints on g.
func RegisterCategoryRoutes(g *echo.Group, h *CategoryHandler) {
	g.GET("/categories", h.List)
	g.POST("/categories", h.Create)
	g.GET("/categories/:id", h.Get)
	g.PUT("/categories/:id", h.Update)
	g.DELETE("/categories/:id", h.Delete)
}
