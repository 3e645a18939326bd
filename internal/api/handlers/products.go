package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/storefront-catalog/internal/images"
	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// ProductHandler handles admin product operations.
type ProductHandler struct {
	store    store.Store
	uploader *ImageUploader
	pageSize int
	log      *slog.Logger
}

// NewProductHandler creates a new ProductHandler. The admin product list
// is paged by pageSize.
func NewProductHandler(s store.Store, u *ImageUploader, pageSize int, log *slog.Logger) *ProductHandler {
	return &ProductHandler{store: s, uploader: u, pageSize: pageSize, log: log}
}

type productForm struct {
	Name         string   `json:"name"          form:"name"          validate:"required,max=200"`
	Description  string   `json:"description"   form:"description"   validate:"max=5000"`
	Colors       string   `json:"colors"        form:"colors"`
	Sizes        []string `json:"sizes"         form:"sizes"         validate:"dive,max=16"`
	Stocks       []string `json:"stocks"        form:"stocks"`
	Brand        string   `json:"brand"         form:"brand"         validate:"required"`
	Category     string   `json:"category"      form:"category"      validate:"required"`
	RegularPrice int64    `json:"regular_price" form:"regular_price" validate:"gte=0"`
	SalePrice    int64    `json:"sale_price"    form:"sale_price"    validate:"gte=0,ltefield=RegularPrice"`
	Gender       string   `json:"gender"        form:"gender"        validate:"omitempty,oneof=Male Female male female men women"`
}

// apply copies the form onto p. Images are left untouched.
func (f *productForm) apply(p *domain.Product) {
	p.Name = strings.TrimSpace(f.Name)
	p.Description = f.Description
	p.Colors = splitColors(f.Colors)
	p.Sizes = sizeStocks(f.Sizes, f.Stocks)
	p.Brand = f.Brand
	p.Category = f.Category
	p.RegularPrice = f.RegularPrice
	p.SalePrice = f.SalePrice
	p.OfferPrice = f.RegularPrice - f.SalePrice
	p.Gender = domain.ParseGender(f.Gender)
}

// splitColors parses a comma-separated color list.
func splitColors(s string) []string {
	out := []string{}
	for c := range strings.SplitSeq(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// sizeStocks pairs sizes with the stock at the same index. Missing or
// unparseable stocks are 0.
func sizeStocks(sizes, stocks []string) []domain.SizeStock {
	out := make([]domain.SizeStock, 0, len(sizes))
	for i, size := range sizes {
		size = strings.TrimSpace(size)
		if size == "" {
			continue
		}
		var stock int
		if i < len(stocks) {
			if n, err := strconv.Atoi(strings.TrimSpace(stocks[i])); err == nil && n > 0 {
				stock = n
			}
		}
		out = append(out, domain.SizeStock{Size: size, Stock: stock})
	}
	return out
}

// ProductPage is one page of the admin product list.
type ProductPage struct {
	Products    []domain.Product `json:"products"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	Count       int              `json:"count"`
}

// FormOptions are the choices offered by the product form.
type FormOptions struct {
	Brands     []domain.Brand    `json:"brands"`
	Categories []domain.Category `json:"categories"`
}

// ToggleResponse reports a product's active flag after a toggle.
type ToggleResponse struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// List handles GET /api/v1/admin/products.
//
// @Summary List products
// @Tags admin
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {object} ProductPage
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page := catalog.ParsePage(c.QueryParam("page"))
	skip := (page - 1) * h.pageSize

	products, total, err := h.store.ListProducts(c.Request().Context(), skip, h.pageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing products: " + err.Error(),
		})
	}

	if products == nil {
		products = []domain.Product{}
	}

	w := catalog.Window(page, h.pageSize, total)
	return c.JSON(http.StatusOK, ProductPage{
		Products:    products,
		CurrentPage: w.Page,
		TotalPages:  w.TotalPages,
		Count:       total,
	})
}

// Get handles GET /api/v1/admin/products/:id.
//
// @Summary Get a product by ID
// @Tags admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.store.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting product", "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/v1/admin/products.
//
// Uploaded "images" files are resized to 780x1000.
//
// @Summary Create a product
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param colors formData string false "Comma-separated colors"
// @Param sizes formData []string false "Sizes"
// @Param stocks formData []string false "Stock per size"
// @Param brand formData string true "Brand name"
// @Param category formData string true "Category name"
// @Param regular_price formData int true "Regular price"
// @Param sale_price formData int true "Sale price"
// @Param gender formData string false "Male or Female"
// @Param images formData file false "Product images"
// @Success 201 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var form productForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	p := domain.Product{Active: true}
	form.apply(&p)

	imgs, err := h.uploader.saveAll(formFiles(c, "images"), images.ProductSize)
	if err != nil {
		return c.JSON(uploadStatus(err), map[string]string{
			"error": "saving images: " + err.Error(),
		})
	}
	p.Images = imgs

	if err := h.store.CreateProduct(c.Request().Context(), &p); err != nil {
		h.uploader.discard(imgs...)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating product: " + err.Error(),
		})
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/admin/products/:id.
//
// New "images" files are appended to the existing images.
//
// @Summary Update a product
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var form productForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	ctx := c.Request().Context()

	p, err := h.store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting product", "product not found")
	}

	form.apply(p)

	imgs, err := h.uploader.saveAll(formFiles(c, "images"), images.ProductSize)
	if err != nil {
		return c.JSON(uploadStatus(err), map[string]string{
			"error": "saving images: " + err.Error(),
		})
	}
	p.Images = append(p.Images, imgs...)

	if err := h.store.UpdateProduct(ctx, p); err != nil {
		h.uploader.discard(imgs...)
		return storeErrorJSON(c, err, "updating product", "product not found")
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, p)
}

// ToggleActive handles POST /api/v1/admin/products/:id/toggle-active.
// Products are never hard-deleted; this is the admin "delete".
//
// @Summary Toggle a product's active flag
// @Tags admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ToggleResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/products/{id}/toggle-active [post]
func (h *ProductHandler) ToggleActive(c echo.Context) error {
	id := c.Param("id")

	active, err := h.store.ToggleProductActive(c.Request().Context(), id)
	if err != nil {
		return storeErrorJSON(c, err, "toggling product", "product not found")
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "toggle").Inc()
	return c.JSON(http.StatusOK, ToggleResponse{ID: id, Active: active})
}

// DeleteImage handles DELETE /api/v1/admin/products/:id/images/:imageId.
//
// @Summary Remove a product image
// @Tags admin
// @Param id path string true "Product ID"
// @Param imageId path string true "Image ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/products/{id}/images/{imageId} [delete]
func (h *ProductHandler) DeleteImage(c echo.Context) error {
	ctx := c.Request().Context()
	imageID := c.Param("imageId")

	p, err := h.store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "getting product", "product not found")
	}

	var url string
	for _, img := range p.Images {
		if img.ID == imageID {
			url = img.URL
			break
		}
	}
	if url == "" {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "image not found"})
	}

	if err := h.store.RemoveProductImage(ctx, p.ID, imageID); err != nil {
		return storeErrorJSON(c, err, "removing image", "image not found")
	}

	if err := h.uploader.remove(url); err != nil {
		h.log.Warn("removing product image", "url", url, "error", err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// FormOptions handles GET /api/v1/admin/products/form-options.
//
// @Summary Product form options
// @Description Returns every brand and category for the product form.
// @Tags admin
// @Produce json
// @Success 200 {object} FormOptions
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/products/form-options [get]
func (h *ProductHandler) FormOptions(c echo.Context) error {
	var opts FormOptions

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		brands, err := h.store.ListBrands(ctx)
		opts.Brands = brands
		return err
	})
	g.Go(func() error {
		cats, err := h.store.ListCategories(ctx)
		opts.Categories = cats
		return err
	})
	if err := g.Wait(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading form options: " + err.Error(),
		})
	}

	if opts.Brands == nil {
		opts.Brands = []domain.Brand{}
	}
	if opts.Categories == nil {
		opts.Categories = []domain.Category{}
	}

	return c.JSON(http.StatusOK, opts)
}

// RegisterProductRoutes registers admin product endpoints on g.
func RegisterProductRoutes(g *echo.Group, h *ProductHandler) {
	g.GET("/products", h.List)
	g.POST("/products", h.Create)
	g.GET("/products/form-options", h.FormOptions)
	g.GET("/products/:id", h.Get)
	g.PUT("/products/:id", h.Update)
	g.POST("/products/:id/toggle-active", h.ToggleActive)
	g.DELETE("/products/:id/images/:imageId", h.DeleteImage)
}
