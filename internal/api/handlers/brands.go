package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-catalog/internal/images"
	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// BrandHandler handles Brand CRUD operations.
type BrandHandler struct {
	store    store.Store
	uploader *ImageUploader
	log      *slog.Logger
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(s store.Store, u *ImageUploader, log *slog.Logger) *BrandHandler {
	return &BrandHandler{store: s, uploader: u, log: log}
}

type brandForm struct {
	Name   string `json:"name"   form:"name"   validate:"required,max=64"`
	Status string `json:"status" form:"status" validate:"max=32"`
}

// conflictResponse is returned with 409 when a name is taken.
type conflictResponse struct {
	Error    string           `json:"error"`
	Brand    *domain.Brand    `json:"brand,omitempty"`
	Category *domain.Category `json:"category,omitempty"`
}

// List handles GET /api/v1/admin/brands.
//
// @Summary List brands
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Brand
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/brands [get]
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.store.ListBrands(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing brands: " + err.Error(),
		})
	}

	if brands == nil {
		brands = []domain.Brand{}
	}

	return c.JSON(http.StatusOK, brands)
}

// Get handles GET /api/v1/admin/brands/:id.
//
// @Summary Get a brand by ID
// @Tags admin
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} domain.Brand
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/brands/{id} [get]
func (h *BrandHandler) Get(c echo.Context) error {
	b, err := h.store.GetBrand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting brand", "brand not found")
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /api/v1/admin/brands.
//
// The name is normalized before the duplicate check. An optional "image"
// file is resized to 300x300.
//
// @Summary Create a brand
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Brand name"
// @Param status formData string false "Active to enable the brand"
// @Param image formData file false "Brand logo"
// @Success 201 {object} domain.Brand
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} conflictResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/brands [post]
func (h *BrandHandler) Create(c echo.Context) error {
	var form brandForm
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

	if existing, err := h.store.GetBrandByName(ctx, name); err == nil {
		return c.JSON(http.StatusConflict, conflictResponse{Error: "brand already exists", Brand: existing})
	} else if !errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "checking brand name: " + err.Error(),
		})
	}

	b := domain.Brand{
		Name:   name,
		Active: form.Status == domain.StatusActive,
	}

	if fh := formFile(c, "image"); fh != nil {
		img, err := h.uploader.save(fh, images.BrandSize)
		if err != nil {
			return c.JSON(uploadStatus(err), map[string]string{
				"error": "saving image: " + err.Error(),
			})
		}
		b.Image = img.URL
	}

	if err := h.store.CreateBrand(ctx, &b); err != nil {
		h.discardURL(b.Image)
		if errors.Is(err, store.ErrDuplicate) {
			existing, _ := h.store.GetBrandByName(ctx, name)
			return c.JSON(http.StatusConflict, conflictResponse{Error: "brand already exists", Brand: existing})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating brand: " + err.Error(),
		})
	}

	metrics.CatalogWritesTotal.WithLabelValues("brand", "create").Inc()
	return c.JSON(http.StatusCreated, b)
}

// Update handles PUT /api/v1/admin/brands/:id.
//
// A new "image" file replaces the current one; without it the image is
// kept.
//
// @Summary Update a brand
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Brand ID"
// @Param name formData string true "Brand name"
// @Param status formData string false "Active to enable the brand"
// @Param image formData file false "Replacement logo"
// @Success 200 {object} domain.Brand
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} conflictResponse
// @Router /api/v1/admin/brands/{id} [put]
func (h *BrandHandler) Update(c echo.Context) error {
	var form brandForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	ctx := c.Request().Context()

	b, err := h.store.GetBrand(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting brand", "brand not found")
	}

	name := catalog.NormalizeName(form.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name must contain letters",
		})
	}

	if other, err := h.store.GetBrandByName(ctx, name); err == nil && other.ID != b.ID {
		return c.JSON(http.StatusConflict, conflictResponse{Error: "brand already exists", Brand: b})
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "checking brand name: " + err.Error(),
		})
	}

	oldImage := b.Image
	b.Name = name
	b.Active = form.Status == domain.StatusActive

	if fh := formFile(c, "image"); fh != nil {
		img, err := h.uploader.save(fh, images.BrandSize)
		if err != nil {
			return c.JSON(uploadStatus(err), map[string]string{
				"error": "saving image: " + err.Error(),
			})
		}
		b.Image = img.URL
	}

	if err := h.store.UpdateBrand(ctx, b); err != nil {
		if b.Image != oldImage {
			h.discardURL(b.Image)
		}
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, conflictResponse{Error: "brand already exists", Brand: b})
		}
		return storeErrorJSON(c, err, "updating brand", "brand not found")
	}

	if b.Image != oldImage {
		h.discardURL(oldImage)
	}

	metrics.CatalogWritesTotal.WithLabelValues("brand", "update").Inc()
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/v1/admin/brands/:id.
//
// @Summary Delete a brand
// @Tags admin
// @Param id path string true "Brand ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/brands/{id} [delete]
func (h *BrandHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	b, err := h.store.GetBrand(ctx, id)
	if err != nil {
		return storeErrorJSON(c, err, "getting brand", "brand not found")
	}

	if err := h.store.DeleteBrand(ctx, id); err != nil {
		return storeErrorJSON(c, err, "deleting brand", "brand not found")
	}

	h.discardURL(b.Image)
	metrics.CatalogWritesTotal.WithLabelValues("brand", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// DeleteImage handles DELETE /api/v1/admin/brands/:id/image.
//
// @Summary Remove a brand's image
// @Tags admin
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} domain.Brand
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/brands/{id}/image [delete]
func (h *BrandHandler) DeleteImage(c echo.Context) error {
	ctx := c.Request().Context()

	b, err := h.store.GetBrand(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting brand", "brand not found")
	}

	oldImage := b.Image
	b.Image = ""
	if err := h.store.UpdateBrand(ctx, b); err != nil {
		return storeErrorJSON(c, err, "updating brand", "brand not found")
	}

	h.discardURL(oldImage)
	metrics.CatalogWritesTotal.WithLabelValues("brand", "update").Inc()
	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) discardURL(url string) {
	if err := h.uploader.remove(url); err != nil {
		h.log.Warn("removing brand image", "url", url, "error", err)
	}
}

// RegisterBrandRoutes registers admin brand endpoints on g.
func RegisterBrandRoutes(g *echo.Group, h *BrandHandler) {
	g.GET("/brands", h.List)
	g.POST("/brands", h.Create)
	g.GET("/brands/:id", h.Get)
	g.PUT("/brands/:id", h.Update)
	g.DELETE("/brands/:id", h.Delete)
	g.DELETE("/brands/:id/image", h.DeleteImage)
}
