package catalog

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/storefront-catalog/pkg/catalog"

// ListingRequest describes one storefront listing.
type ListingRequest struct {
	Selections

	// Sort is the raw sort token; see ResolveSort.
	Sort string
	// Page is 1-based. Values below 1 are treated as 1.
	Page int
	// PageSize of 0 returns every match on one page.
	PageSize int
}

// Facets are the filter options offered alongside a listing.
type Facets struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
}

// ListingResult is one page of a storefront listing together with its
// facets and an echo of the request.
type ListingResult struct {
	Products []domain.ProductSummary `json:"products"`
	Facets

	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Count       int `json:"count"`

	SearchQuery      string        `json:"search_query"`
	SortOption       string        `json:"sort_option"`
	Gender           domain.Gender `json:"gender,omitempty"`
	FilterBrands     []string      `json:"filter_brands"`
	FilterCategories []string      `json:"filter_categories"`
	FilterColors     []string      `json:"filter_colors"`
	FilterSizes      []string      `json:"filter_sizes"`
}

// Pipeline assembles storefront listings from a Repository.
type Pipeline struct {
	repo   Repository
	log    *slog.Logger
	tracer trace.Tracer
	counts metric.Int64Histogram
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = l
	}
}

// NewPipeline creates a Pipeline reading from repo. Spans and metrics go
// to the global OpenTelemetry providers.
func NewPipeline(repo Repository, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		repo:   repo,
		log:    slog.Default(),
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}

	counts, err := otel.Meter(instrumentationName).Int64Histogram(
		"catalog.listing.matches",
		metric.WithDescription("Number of products matching a storefront listing."),
		metric.WithUnit("{product}"),
	)
	if err != nil {
		p.log.Warn("creating listing histogram", "error", err)
	}
	p.counts = counts

	return p
}

// List runs a listing: the facet queries run concurrently with the
// count and fetch of the requested page. Any repository failure fails
// the whole listing with ErrRepositoryUnavailable.
func (p *Pipeline) List(ctx context.Context, req *ListingRequest) (*ListingResult, error) {
	start := time.Now()

	ctx, span := p.tracer.Start(ctx, "catalog.List", trace.WithAttributes(
		attribute.String("catalog.gender", string(req.Gender)),
		attribute.String("catalog.sort", req.Sort),
		attribute.Int("catalog.page", req.Page),
		attribute.Int("catalog.page_size", req.PageSize),
	))
	defer span.End()

	pred := BuildFilter(req.Selections)
	sort := ResolveSort(req.Sort)

	var (
		facets   Facets
		count    int
		window   PageWindow
		products []domain.ProductSummary
	)

	g, gctx := errgroup.WithContext(ctx)

	facetDests := []struct {
		field Field
		dest  *[]string
	}{
		{FieldBrand, &facets.Brands},
		{FieldCategory, &facets.Categories},
		{FieldColor, &facets.Colors},
		{FieldSize, &facets.Sizes},
	}
	for _, fd := range facetDests {
		g.Go(func() error {
			vals, err := p.repo.DistinctValues(gctx, fd.field)
			if err != nil {
				return unavailable("distinct "+string(fd.field), err)
			}
			*fd.dest = vals
			return nil
		})
	}

	g.Go(func() error {
		n, err := p.repo.CountProducts(gctx, pred)
		if err != nil {
			return unavailable("count products", err)
		}
		count = n
		window = Window(req.Page, req.PageSize, n)

		products, err = p.repo.FindProducts(gctx, pred, sort, window.Skip, window.Limit)
		if err != nil {
			return unavailable("find products", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if p.counts != nil {
		p.counts.Record(ctx, int64(count),
			metric.WithAttributes(attribute.String("catalog.gender", string(req.Gender))))
	}

	p.log.Debug("listing assembled",
		"count", count,
		"page", window.Page,
		"total_pages", window.TotalPages,
		"sort", sort.String(),
		"clauses", len(pred.Clauses),
		"duration", time.Since(start),
	)

	return p.assemble(req, facets, count, window, products), nil
}

func (p *Pipeline) assemble(
	req *ListingRequest,
	facets Facets,
	count int,
	window PageWindow,
	products []domain.ProductSummary,
) *ListingResult {
	if products == nil {
		products = []domain.ProductSummary{}
	}
	facets.Brands = nonNil(facets.Brands)
	facets.Categories = nonNil(facets.Categories)
	facets.Colors = nonNil(facets.Colors)
	facets.Sizes = OrderSizes(facets.Sizes)

	sortOption := req.Sort
	if sortOption == "" {
		sortOption = SortTokenDefault
	}

	return &ListingResult{
		Products:         products,
		Facets:           facets,
		CurrentPage:      window.Page,
		TotalPages:       window.TotalPages,
		Count:            count,
		SearchQuery:      req.Search,
		SortOption:       sortOption,
		Gender:           req.Gender,
		FilterBrands:     nonNil(NormalizeValues(req.Brands)),
		FilterCategories: nonNil(NormalizeValues(req.Categories)),
		FilterColors:     nonNil(NormalizeValues(req.Colors)),
		FilterSizes:      nonNil(NormalizeValues(req.Sizes)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
