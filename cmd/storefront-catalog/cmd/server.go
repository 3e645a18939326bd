package cmd

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/storefront-catalog/internal/api/handlers"
	"github.com/donaldgifford/storefront-catalog/internal/api/middleware"
	"github.com/donaldgifford/storefront-catalog/internal/config"
	"github.com/donaldgifford/storefront-catalog/internal/images"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
)

const adminPrefix = "/api/v1/admin"

// serverDeps are the collaborators the HTTP server is built from.
type serverDeps struct {
	cfg    *config.Config
	store  store.Store
	images *images.Store
	jobs   handlers.JobsProvider
	log    *slog.Logger
}

// newServer builds the echo instance with every route and middleware
// registered.
func newServer(d serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = d.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = d.cfg.Server.WriteTimeout

	e.Use(
		middleware.Recovery(d.log),
		middleware.RequestLog(d.log),
		middleware.Tracing(otel.GetTracerProvider()),
		middleware.Metrics(),
		middleware.RateLimit(d.cfg.RateLimit.PerSecond, d.cfg.RateLimit.Burst),
	)

	health := handlers.NewHealthHandler(d.store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	prefix := d.images.URLPrefix()
	e.GET(prefix+"/*", echo.WrapHandler(http.StripPrefix(prefix, d.images.Handler())))

	humaCfg := huma.DefaultConfig("Storefront Catalog API", Version)
	humaCfg.Info.Description = "Product listings, search and reviews for the storefront."
	api := humaecho.New(e, humaCfg)

	pipeline := catalog.NewPipeline(d.store, catalog.WithLogger(d.log))
	handlers.RegisterStorefrontRoutes(api, handlers.NewStorefrontHandler(
		d.store,
		pipeline,
		handlers.StorefrontConfig{
			PageSize:        d.cfg.Listing.PageSize,
			SearchPageSize:  d.cfg.Listing.SearchPageSize,
			RelatedProducts: d.cfg.Listing.RelatedProducts,
		},
		d.log,
	))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(d.jobs, d.log))

	uploader := handlers.NewImageUploader(d.images, d.cfg.Images.MaxUploadBytes)
	admin := e.Group(adminPrefix)
	handlers.RegisterBrandRoutes(admin, handlers.NewBrandHandler(d.store, uploader, d.log))
	handlers.RegisterCategoryRoutes(admin, handlers.NewCategoryHandler(d.store))
	handlers.RegisterProductRoutes(admin, handlers.NewProductHandler(
		d.store, uploader, d.cfg.Listing.AdminPageSize, d.log,
	))

	return e
}
