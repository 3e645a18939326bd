package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// StorefrontConfig holds the page sizes used by the storefront endpoints.
type StorefrontConfig struct {
	PageSize        int
	SearchPageSize  int
	RelatedProducts int
}

// StorefrontHandler serves the shopper-facing listing and product endpoints.
type StorefrontHandler struct {
	store    store.Store
	pipeline *catalog.Pipeline
	cfg      StorefrontConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewStorefrontHandler creates a new StorefrontHandler. Listings are read
// through pipeline; product reads and reviews go to s.
func NewStorefrontHandler(
	s store.Store,
	pipeline *catalog.Pipeline,
	cfg StorefrontConfig,
	log *slog.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		store:    s,
		pipeline: pipeline,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// --- Input/Output types ---

// ListingInput is the query string of a storefront listing. The facet
// selections accept a single value, repeated keys, "key[]" keys or a
// comma-separated list.
type ListingInput struct {
	Page       string   `query:"page"       doc:"1-based page number; missing or invalid values mean 1"`
	Sort       string   `query:"sort"       doc:"Sort option"                                            example:"priceLowToHigh"`
	Search     string   `query:"search"     doc:"Case-insensitive substring of name, brand or category"`
	Brands     []string `query:"brands"     doc:"Brand names to include"`
	Categories []string `query:"categories" doc:"Category names to include"`
	Colors     []string `query:"colors"     doc:"Colors to include"`
	Sizes      []string `query:"sizes"      doc:"Sizes to include"`
}

// Resolve re-reads the facet selections from the raw query so that every
// accepted query shape yields the same selection.
func (in *ListingInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	q := u.Query()
	in.Brands = multiValue(q, "brands")
	in.Categories = multiValue(q, "categories")
	in.Colors = multiValue(q, "colors")
	in.Sizes = multiValue(q, "sizes")
	return nil
}

func (in *ListingInput) request(gender domain.Gender, pageSize int) *catalog.ListingRequest {
	return &catalog.ListingRequest{
		Selections: catalog.Selections{
			Brands:     in.Brands,
			Categories: in.Categories,
			Colors:     in.Colors,
			Sizes:      in.Sizes,
			Gender:     gender,
			Search:     strings.TrimSpace(in.Search),
		},
		Sort:     in.Sort,
		Page:     catalog.ParsePage(in.Page),
		PageSize: pageSize,
	}
}

// multiValue collects key and key[] values, splitting comma-separated
// entries and dropping blanks.
func multiValue(q url.Values, key string) []string {
	var out []string
	for _, k := range []string{key, key + "[]"} {
		for _, v := range q[k] {
			for part := range strings.SplitSeq(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}

// ListingOutput is one page of a storefront listing.
type ListingOutput struct {
	Body *catalog.ListingResult
}

// SearchFilterInput is the body of a search refinement request.
type SearchFilterInput struct {
	Body struct {
		Search     string   `json:"search,omitempty"     doc:"Case-insensitive substring of name, brand or category"`
		Brands     []string `json:"brands,omitempty"     doc:"Brand names to include"`
		Categories []string `json:"categories,omitempty" doc:"Category names to include"`
		Colors     []string `json:"colors,omitempty"     doc:"Colors to include"`
		Sizes      []string `json:"sizes,omitempty"      doc:"Sizes to include"`
	}
}

// SearchFilterOutput is every product matching a search refinement.
type SearchFilterOutput struct {
	Body struct {
		Products []domain.ProductSummary `json:"products"`
	}
}

// GetProductInput is the input for getting a product detail page.
type GetProductInput struct {
	ID string `path:"id" doc:"Product ID"`
}

// GetProductOutput is a product together with related products.
type GetProductOutput struct {
	Body domain.ProductDetail
}

// AddReviewInput is the input for submitting a review.
type AddReviewInput struct {
	ID   string `path:"id" doc:"Product ID"`
	Body struct {
		Name    string  `json:"name"    doc:"Reviewer name"       minLength:"1" maxLength:"100"`
		Rating  float64 `json:"rating"  doc:"Star rating, 0 to 5" minimum:"0"   maximum:"5"`
		Comment string  `json:"comment" doc:"Review text"                       maxLength:"2000" required:"false"`
	}
}

// AddReviewOutput is the stored review.
type AddReviewOutput struct {
	Body domain.Review
}

// --- Handlers ---

// ListProducts returns the storefront listing of all products.
func (h *StorefrontHandler) ListProducts(ctx context.Context, in *ListingInput) (*ListingOutput, error) {
	return h.list(ctx, "products", in.request(domain.GenderAny, h.cfg.PageSize))
}

// ListMen returns the listing restricted to men's products.
func (h *StorefrontHandler) ListMen(ctx context.Context, in *ListingInput) (*ListingOutput, error) {
	return h.list(ctx, "men", in.request(domain.GenderMale, h.cfg.PageSize))
}

// ListWomen returns the listing restricted to women's products.
func (h *StorefrontHandler) ListWomen(ctx context.Context, in *ListingInput) (*ListingOutput, error) {
	return h.list(ctx, "women", in.request(domain.GenderFemale, h.cfg.PageSize))
}

// Search returns the search listing, paged by the search page size.
func (h *StorefrontHandler) Search(ctx context.Context, in *ListingInput) (*ListingOutput, error) {
	return h.list(ctx, "search", in.request(domain.GenderAny, h.cfg.SearchPageSize))
}

func (h *StorefrontHandler) list(
	ctx context.Context,
	endpoint string,
	req *catalog.ListingRequest,
) (*ListingOutput, error) {
	start := time.Now()
	res, err := h.pipeline.List(ctx, req)
	metrics.ListingDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ListingErrorsTotal.WithLabelValues(endpoint).Inc()
		h.log.ErrorContext(ctx, "listing failed", "endpoint", endpoint, "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	metrics.ListingResultCount.Observe(float64(res.Count))
	return &ListingOutput{Body: res}, nil
}

// SearchFilter returns every product matching the search term and facet
// selections, unpaged and in natural order.
func (h *StorefrontHandler) SearchFilter(
	ctx context.Context,
	in *SearchFilterInput,
) (*SearchFilterOutput, error) {
	pred := catalog.BuildFilter(catalog.Selections{
		Brands:     in.Body.Brands,
		Categories: in.Body.Categories,
		Colors:     in.Body.Colors,
		Sizes:      in.Body.Sizes,
		Search:     strings.TrimSpace(in.Body.Search),
	})

	products, err := h.store.FindProducts(ctx, pred, catalog.SortNone, 0, 0)
	if err != nil {
		metrics.ListingErrorsTotal.WithLabelValues("search_filter").Inc()
		h.log.ErrorContext(ctx, "search filter failed", "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	resp := &SearchFilterOutput{}
	resp.Body.Products = products
	if resp.Body.Products == nil {
		resp.Body.Products = []domain.ProductSummary{}
	}
	return resp, nil
}

// GetProduct returns a product with up to RelatedProducts products of the
// same category and gender.
func (h *StorefrontHandler) GetProduct(ctx context.Context, in *GetProductInput) (*GetProductOutput, error) {
	p, err := h.store.GetProduct(ctx, in.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("product not found")
	}
	if err != nil {
		h.log.ErrorContext(ctx, "getting product", "id", in.ID, "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	related, err := h.store.ListRelatedProducts(ctx, p, h.cfg.RelatedProducts)
	if err != nil {
		h.log.ErrorContext(ctx, "listing related products", "id", in.ID, "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}
	if related == nil {
		related = []domain.ProductSummary{}
	}

	return &GetProductOutput{Body: domain.ProductDetail{Product: *p, Related: related}}, nil
}

// AddReview stores a review on a product. The 0-5 star rating is stored
// as a percentage.
func (h *StorefrontHandler) AddReview(ctx context.Context, in *AddReviewInput) (*AddReviewOutput, error) {
	r := domain.Review{
		Name:    strings.TrimSpace(in.Body.Name),
		Rating:  in.Body.Rating / 5 * 100,
		Comment: in.Body.Comment,
		AddedOn: h.now().Format(domain.ReviewDateLayout),
	}
	if r.Name == "" {
		return nil, huma.Error400BadRequest("name is required")
	}

	err := h.store.AddReview(ctx, in.ID, &r)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("product not found")
	}
	if err != nil {
		h.log.ErrorContext(ctx, "adding review", "id", in.ID, "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	metrics.CatalogWritesTotal.WithLabelValues("review", "create").Inc()
	return &AddReviewOutput{Body: r}, nil
}

// RegisterStorefrontRoutes registers storefront endpoints with the Huma API.
func RegisterStorefrontRoutes(api huma.API, h *StorefrontHandler) {
	tags := []string{"storefront"}

	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/shop/products",
		Summary:     "List products",
		Description: "Returns one page of products with facets, filtered by the selected brands, categories, colors and sizes.",
		Tags:        tags,
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "list-men-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/shop/men",
		Summary:     "List men's products",
		Tags:        tags,
	}, h.ListMen)

	huma.Register(api, huma.Operation{
		OperationID: "list-women-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/shop/women",
		Summary:     "List women's products",
		Tags:        tags,
	}, h.ListWomen)

	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/shop/search",
		Summary:     "Search products",
		Description: "Returns one page of products whose name, brand or category contains the search term.",
		Tags:        tags,
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "filter-search",
		Method:      http.MethodPost,
		Path:        "/api/v1/shop/search/filter",
		Summary:     "Refine a search",
		Description: "Returns every product matching the search term and facet selections.",
		Tags:        tags,
	}, h.SearchFilter)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/shop/products/{id}",
		Summary:     "Get a product",
		Description: "Returns a product with related products of the same category and gender.",
		Tags:        tags,
		Errors:      []int{http.StatusNotFound},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID:   "add-review",
		Method:        http.MethodPost,
		Path:          "/api/v1/shop/products/{id}/reviews",
		Summary:       "Review a product",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.AddReview)
}
