package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ListingLatency returns a timeseries panel showing p95 listing latency
// per storefront endpoint.
func ListingLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Latency p95").
		Description("Time to assemble a storefront listing, facets included").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			Quantile(0.95, "catalog_listing_duration_seconds", "endpoint"),
			"{{endpoint}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ListingErrors returns a timeseries panel showing failed listings.
func ListingErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Errors").
		Description("Listings that failed because the repository was unavailable").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`catalog:listing_errors:rate5m`, "{{endpoint}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ListingMatches returns a timeseries panel showing how many products a
// listing matches.
func ListingMatches() *timeseries.PanelBuilder {
	const metric = "catalog_listing_result_count"
	return timeseries.NewPanelBuilder().
		Title("Matches per Listing").
		Description("Products matching the filters of a listing").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		Unit("short").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FacetCacheTraffic returns a timeseries panel showing facet cache hits,
// misses and errors.
func FacetCacheTraffic() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Facet Cache").
		Description("Facet cache hits and misses by field, and Redis errors").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(rate(catalog_facet_cache_hits_total[5m])) by (field)`, "hit {{field}}", "A")).
		WithTarget(PromQuery(`sum(rate(catalog_facet_cache_misses_total[5m])) by (field)`, "miss {{field}}", "B")).
		WithTarget(PromQuery(`rate(catalog_facet_cache_errors_total[5m])`, "errors", "C")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
